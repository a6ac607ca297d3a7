package pgrepo

import (
	"context"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type PurchaseRepository struct {
	db uow.DBTX
}

func NewPurchaseRepository(db uow.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create вставляет запись о выкупе. Первичный ключ страхует инвариант "лот выкупается
// не более одного раза": повторная вставка с тем же детерминированным id вернет
// domain.ErrDuplicateKey.
func (r *PurchaseRepository) Create(
	ctx context.Context,
	args repoargs.PurchaseCreate,
) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO item_purchases (id, bid_id, item_id, seller_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, bid_id, item_id, seller_id, created_at`,
		args.ID,
		args.BidID,
		args.ItemID,
		args.SellerID,
		args.Date,
	).Scan(
		&purchase.ID,
		&purchase.BidID,
		&purchase.ItemID,
		&purchase.SellerID,
		&purchase.CreatedAt,
	)
	if err != nil {
		return nil, convertErr(err, "creating purchase %d", args.ID)
	}
	return &purchase, nil
}
