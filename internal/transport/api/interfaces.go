package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/service"
)

// PurchaseServicer интерфейс исключительно для моков.
type PurchaseServicer interface {
	Purchase(ctx context.Context, args service.PurchaseArgs) (*service.PurchaseSummary, error)
}

type ItemServicer interface {
	WaitingForPurchase(ctx context.Context, limit uint) ([]domain.Item, error)
}

type AccountServicer interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
}
