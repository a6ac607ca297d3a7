package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/auction-settle/internal/domain"
)

type BalanceHandler struct {
	accountSvs AccountServicer
}

func NewBalanceHandler(accountSvs AccountServicer) *BalanceHandler {
	return &BalanceHandler{
		accountSvs: accountSvs,
	}
}

type BalanceResponse struct {
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

// Show GET RouteGroup + BalanceRoute.
func (b *BalanceHandler) Show(c *gin.Context) {
	userID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.accountSvs.GetBalance(reqCtx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		UserID:  userID,
		Balance: balance.InexactFloat64(),
	})
}
