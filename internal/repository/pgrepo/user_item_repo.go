package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type UserItemRepository struct {
	db uow.DBTX
}

func NewUserItemRepository(db uow.DBTX) *UserItemRepository {
	return &UserItemRepository{db: db}
}

// LinkPurchase привязывает запись user_items покупателя к созданной записи о выкупе.
func (r *UserItemRepository) LinkPurchase(ctx context.Context, args repoargs.LinkPurchase) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_items
		    SET purchase_id = $1, bid_id = $2
		  WHERE user_id = $3 AND item_id = $4 AND seller_id = $5`,
		args.PurchaseID,
		args.BidID,
		args.UserID,
		args.ItemID,
		args.SellerID,
	)
	if err != nil {
		return convertErr(err, "linking purchase %d to user item %d/%d", args.PurchaseID, args.UserID, args.ItemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(
			"[repository/linking purchase %d to user item %d/%d] %w",
			args.PurchaseID, args.UserID, args.ItemID, domain.ErrRecordNotFound,
		)
	}
	return nil
}
