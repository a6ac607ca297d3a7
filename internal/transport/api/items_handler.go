package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/auction-settle/internal/domain"
)

const (
	defaultItemsLimit = 50
	maxItemsLimit     = 500
)

type ItemsHandler struct {
	itemSvs ItemServicer
}

func NewItemsHandler(itemSvs ItemServicer) *ItemsHandler {
	return &ItemsHandler{
		itemSvs: itemSvs,
	}
}

type ItemResponse struct {
	ItemID       int64                 `json:"item_id"`
	SellerID     int64                 `json:"seller_id"`
	NumBids      int64                 `json:"num_bids"`
	CurrentPrice float64               `json:"current_price"`
	EndDate      time.Time             `json:"end_date"`
	Status       domain.ItemStatusType `json:"status"`
}

// WaitingForPurchase GET RouteGroup + WaitingItemsRoute.
func (i *ItemsHandler) WaitingForPurchase(c *gin.Context) {
	limit := defaultItemsLimit
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, parseErr := strconv.Atoi(rawLimit)
		if parseErr != nil || parsed <= 0 || parsed > maxItemsLimit {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := i.itemSvs.WaitingForPurchase(reqCtx, uint(limit))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(items) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]ItemResponse, len(items))
	for idx, item := range items {
		response[idx] = ItemResponse{
			ItemID:       item.ID,
			SellerID:     item.SellerID,
			NumBids:      item.NumBids,
			CurrentPrice: item.CurrentPrice.InexactFloat64(),
			EndDate:      item.EndDate,
			Status:       item.Status,
		}
	}

	c.JSON(http.StatusOK, response)
}
