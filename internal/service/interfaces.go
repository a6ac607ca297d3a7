package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type ItemRepository interface {
	FindPurchasable(ctx context.Context, itemID int64, sellerID int64) (*repoargs.PurchasableItem, error)
	Close(ctx context.Context, args repoargs.CloseItem) error
	GetWaitingForPurchase(ctx context.Context, limit uint) ([]domain.Item, error)
}

type AccountRepository interface {
	AdjustBalance(ctx context.Context, args repoargs.AdjustBalance) error
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, args repoargs.PurchaseCreate) (*domain.Purchase, error)
}

type UserItemRepository interface {
	LinkPurchase(ctx context.Context, args repoargs.LinkPurchase) error
}
