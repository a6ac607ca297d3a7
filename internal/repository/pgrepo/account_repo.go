package pgrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// AdjustBalance изменяет баланс счета на args.Delta относительно текущего значения.
// Выкуп вызывает метод дважды: списание покупателя и зачисление продавцу.
func (r *AccountRepository) AdjustBalance(ctx context.Context, args repoargs.AdjustBalance) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE accounts SET balance = balance + $1, updated_at = now() WHERE id = $2`,
		args.Delta,
		args.UserID,
	)
	if err != nil {
		return convertErr(err, "adjusting balance of account %d", args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/adjusting balance of account %d] %w", args.UserID, domain.ErrRecordNotFound)
	}
	return nil
}

func (r *AccountRepository) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "getting balance of account %d", userID)
	}
	return balance, nil
}
