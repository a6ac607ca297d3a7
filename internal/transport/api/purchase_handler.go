package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/service"
)

type PurchaseHandler struct {
	purchaseSvs PurchaseServicer
}

func NewPurchaseHandler(purchaseSvs PurchaseServicer) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseSvs: purchaseSvs,
	}
}

type PurchaseParams struct {
	ItemID      int64           `json:"item_id" binding:"required"`
	SellerID    int64           `json:"seller_id" binding:"required"`
	BuyerCredit decimal.Decimal `json:"buyer_credit"`
	// ReferenceTime начало прогона бенчмарка; опционально.
	ReferenceTime time.Time `json:"reference_ts"`
}

type PurchaseResponse struct {
	ItemID       int64                 `json:"item_id"`
	SellerID     int64                 `json:"seller_id"`
	NumBids      int64                 `json:"num_bids"`
	CurrentPrice float64               `json:"current_price"`
	EndDate      time.Time             `json:"end_date"`
	Status       domain.ItemStatusType `json:"status"`
	PurchaseID   int64                 `json:"purchase_id"`
	BidID        int64                 `json:"bid_id"`
	BuyerID      int64                 `json:"buyer_id"`
}

// Create POST RouteGroup + PurchaseRoute. Финализирует выкуп лота.
//
// Маппинг отказов ядра на статусы:
//   - domain.ErrNoPurchasableItem -> 409 (лот не найден либо уже выкуплен -
//     вызывающая сторона различает по своему контексту);
//   - *domain.InsufficientFundsError -> 402;
//   - domain.ErrIntegrityViolation -> 500 (повреждение данных, чинится не здесь).
func (p *PurchaseHandler) Create(c *gin.Context) {
	var params PurchaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if params.BuyerCredit.IsNegative() {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := p.purchaseSvs.Purchase(reqCtx, service.PurchaseArgs{
		ReferenceTime: params.ReferenceTime,
		ItemID:        params.ItemID,
		SellerID:      params.SellerID,
		BuyerCredit:   params.BuyerCredit,
	})
	if err != nil {
		var insufficientErr *domain.InsufficientFundsError
		switch {
		case errors.Is(err, domain.ErrNoPurchasableItem):
			c.AbortWithStatus(http.StatusConflict)
		case errors.As(err, &insufficientErr):
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":   "insufficient funds",
				"price":   insufficientErr.Price.InexactFloat64(),
				"balance": insufficientErr.Balance.InexactFloat64(),
				"credit":  insufficientErr.Credit.InexactFloat64(),
			})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &PurchaseResponse{
		ItemID:       summary.ItemID,
		SellerID:     summary.SellerID,
		NumBids:      summary.NumBids,
		CurrentPrice: summary.CurrentPrice.InexactFloat64(),
		EndDate:      summary.EndDate,
		Status:       summary.Status,
		PurchaseID:   summary.PurchaseID,
		BidID:        summary.BidID,
		BuyerID:      summary.BuyerID,
	})
}
