package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type ItemRepository struct {
	db uow.DBTX
}

func NewItemRepository(db uow.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const findPurchasableQuery = `
SELECT i.num_bids, i.current_price, i.end_date,
       wb.bid_id, wb.buyer_id,
       a.balance
  FROM items i
  JOIN winning_bids wb ON wb.item_id = i.id AND wb.seller_id = i.seller_id
  JOIN accounts a ON a.id = wb.buyer_id
 WHERE i.id = $1 AND i.seller_id = $2 AND i.status = $3`

// FindPurchasable возвращает объединенную строку лот + победившая ставка + баланс
// покупателя для лота в статусе WAITING_FOR_PURCHASE. Ровно одна строка - норма.
// Ноль строк - domain.ErrRecordNotFound (фильтр по статусу заодно отсеивает уже
// выкупленные лоты). Больше одной - domain.ErrIntegrityViolation.
func (r *ItemRepository) FindPurchasable(
	ctx context.Context,
	itemID int64,
	sellerID int64,
) (*repoargs.PurchasableItem, error) {
	rows, queryErr := r.db.Query(ctx, findPurchasableQuery, itemID, sellerID, domain.ItemStatusWaitingForPurchase)
	if queryErr != nil {
		return nil, convertErr(queryErr, "finding purchasable item %d/%d", itemID, sellerID)
	}
	defer rows.Close()

	var result *repoargs.PurchasableItem
	for rows.Next() {
		if result != nil {
			return nil, fmt.Errorf(
				"[repository/finding purchasable item %d/%d] %w",
				itemID, sellerID, domain.ErrIntegrityViolation,
			)
		}
		var row repoargs.PurchasableItem
		if scanErr := rows.Scan(
			&row.NumBids,
			&row.CurrentPrice,
			&row.EndDate,
			&row.BidID,
			&row.BuyerID,
			&row.BuyerBalance,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning purchasable item %d/%d", itemID, sellerID)
		}
		result = &row
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding purchasable item %d/%d", itemID, sellerID)
	}

	if result == nil {
		return nil, fmt.Errorf(
			"[repository/finding purchasable item %d/%d] %w",
			itemID, sellerID, domain.ErrRecordNotFound,
		)
	}
	return result, nil
}

// Close переводит лот в статус CLOSED и обновляет отметку времени. Единственный
// переход статуса, который выполняет данный сервис.
func (r *ItemRepository) Close(ctx context.Context, args repoargs.CloseItem) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE items SET status = $1, updated_at = $2 WHERE id = $3 AND seller_id = $4`,
		domain.ItemStatusClosed,
		args.UpdatedAt,
		args.ItemID,
		args.SellerID,
	)
	if err != nil {
		return convertErr(err, "closing item %d/%d", args.ItemID, args.SellerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/closing item %d/%d] %w", args.ItemID, args.SellerID, domain.ErrRecordNotFound)
	}
	return nil
}

// GetWaitingForPurchase возвращает лоты, ожидающие выкупа, по возрастанию даты окончания
// торгов. Из этого набора драйвер нагрузки выбирает лоты для финализации.
func (r *ItemRepository) GetWaitingForPurchase(ctx context.Context, limit uint) ([]domain.Item, error) {
	rows, queryErr := r.db.Query(
		ctx,
		`SELECT id, seller_id, num_bids, current_price, end_date, status, created_at, updated_at
		   FROM items
		  WHERE status = $1
		  ORDER BY end_date ASC
		  LIMIT $2`,
		domain.ItemStatusWaitingForPurchase,
		int64(limit),
	)
	if queryErr != nil {
		return nil, convertErr(queryErr, "getting items waiting for purchase")
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if scanErr := rows.Scan(
			&item.ID,
			&item.SellerID,
			&item.NumBids,
			&item.CurrentPrice,
			&item.EndDate,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning item waiting for purchase")
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting items waiting for purchase")
	}
	return items, nil
}
