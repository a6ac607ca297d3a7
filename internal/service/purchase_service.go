package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/ident"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type PurchaseService struct {
	uow   uow.UOW
	clock *BenchmarkClock
}

func NewPurchaseService(u uow.UOW, clock *BenchmarkClock) *PurchaseService {
	return &PurchaseService{
		uow:   u,
		clock: clock,
	}
}

type PurchaseArgs struct {
	// ReferenceTime начало прогона бенчмарка для масштабирования времени.
	// Нулевое значение - реальное время.
	ReferenceTime time.Time
	ItemID        int64
	SellerID      int64
	// BuyerCredit разовый внешний кредит покупателя. Участвует только в проверке
	// платежеспособности и в размере списания, на счете не сохраняется.
	BuyerCredit decimal.Decimal
}

// PurchaseSummary снимок состояния лота на момент чтения (до мутаций) плюс созданные
// идентификаторы. Повторного чтения после мутаций не делается.
type PurchaseSummary struct {
	ItemID       int64
	SellerID     int64
	NumBids      int64
	CurrentPrice decimal.Decimal
	EndDate      time.Time
	Status       domain.ItemStatusType
	PurchaseID   int64
	BidID        int64
	BuyerID      int64
}

// Purchase финализирует выкуп лота, по которому завершились торги.
//
// Алгоритм работы (целиком внутри одной транзакции БД):
//  1. Одним объединенным чтением получает лот в статусе WAITING_FOR_PURCHASE,
//     победившую ставку и баланс покупателя. Ноль строк - domain.ErrNoPurchasableItem,
//     больше одной - domain.ErrIntegrityViolation.
//  2. Проверяет платежеспособность: цена не должна превышать баланс + кредит.
//     При нехватке возвращает *domain.InsufficientFundsError; к этому моменту
//     никаких мутаций еще не было.
//  3. Применяет пять мутаций: вставка записи о выкупе (id детерминирован через
//     ident.PurchaseID), перевод лота в CLOSED, привязка user_items к выкупу,
//     списание с покупателя (цена за вычетом кредита), зачисление продавцу.
//     Откат любой из них откатывает все - частичного применения не бывает.
//
// Повторных попыток внутри сервиса нет: детерминированный id выкупа позволяет
// вызывающей стороне самой распознать повтор (domain.ErrDuplicateKey).
func (p *PurchaseService) Purchase(ctx context.Context, args PurchaseArgs) (*PurchaseSummary, error) {
	if args.BuyerCredit.IsNegative() {
		return nil, fmt.Errorf("purchasing item %d/%d: negative buyer credit %s",
			args.ItemID, args.SellerID, args.BuyerCredit)
	}

	purchaseID, idErr := ident.PurchaseID(args.ItemID)
	if idErr != nil {
		return nil, fmt.Errorf("purchasing item %d/%d: %w", args.ItemID, args.SellerID, idErr)
	}

	effectiveTime := p.clock.EffectiveTime(args.ReferenceTime)

	var summary *PurchaseSummary
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		row, findErr := p.findPurchasable(c, tx, args)
		if findErr != nil {
			return findErr
		}

		available := args.BuyerCredit.Add(row.BuyerBalance)
		if row.CurrentPrice.GreaterThan(available) {
			return &domain.InsufficientFundsError{
				Price:   row.CurrentPrice,
				Balance: row.BuyerBalance,
				Credit:  args.BuyerCredit,
			}
		}

		if mutErr := p.applyPurchase(c, tx, args, row, purchaseID, effectiveTime); mutErr != nil {
			return mutErr
		}

		summary = &PurchaseSummary{
			ItemID:       args.ItemID,
			SellerID:     args.SellerID,
			NumBids:      row.NumBids,
			CurrentPrice: row.CurrentPrice,
			EndDate:      row.EndDate,
			Status:       domain.ItemStatusWaitingForPurchase,
			PurchaseID:   purchaseID,
			BidID:        row.BidID,
			BuyerID:      row.BuyerID,
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("purchasing item %d/%d: %w", args.ItemID, args.SellerID, txErr)
	}
	return summary, nil
}

func (p *PurchaseService) findPurchasable(
	ctx context.Context,
	tx uow.TX,
	args PurchaseArgs,
) (*repoargs.PurchasableItem, error) {
	itemRepo, repoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	row, findErr := itemRepo.FindPurchasable(ctx, args.ItemID, args.SellerID)
	if findErr != nil {
		// "Не найден", "чужой продавец", "не тот статус" и "нет победителя"
		// не различаются - один отказ предусловия на всех.
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrNoPurchasableItem
		}
		return nil, findErr //nolint:wrapcheck
	}
	return row, nil
}

// applyPurchase пять мутаций выкупа. Выполняется строго внутри транзакции tx.
func (p *PurchaseService) applyPurchase(
	ctx context.Context,
	tx uow.TX,
	args PurchaseArgs,
	row *repoargs.PurchasableItem,
	purchaseID int64,
	effectiveTime time.Time,
) error {
	purchaseRepo, pRepoErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
	if pRepoErr != nil {
		return pRepoErr //nolint:wrapcheck
	}
	itemRepo, iRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
	if iRepoErr != nil {
		return iRepoErr //nolint:wrapcheck
	}
	userItemRepo, uiRepoErr := uow.GetAs[UserItemRepository](tx, uow.RepositoryName(repoargs.UserItemRepoName))
	if uiRepoErr != nil {
		return uiRepoErr //nolint:wrapcheck
	}
	accountRepo, aRepoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if aRepoErr != nil {
		return aRepoErr //nolint:wrapcheck
	}

	if _, createErr := purchaseRepo.Create(ctx, repoargs.PurchaseCreate{
		ID:       purchaseID,
		BidID:    row.BidID,
		ItemID:   args.ItemID,
		SellerID: args.SellerID,
		Date:     effectiveTime,
	}); createErr != nil {
		return createErr //nolint:wrapcheck
	}

	if closeErr := itemRepo.Close(ctx, repoargs.CloseItem{
		ItemID:    args.ItemID,
		SellerID:  args.SellerID,
		UpdatedAt: effectiveTime,
	}); closeErr != nil {
		return closeErr //nolint:wrapcheck
	}

	if linkErr := userItemRepo.LinkPurchase(ctx, repoargs.LinkPurchase{
		UserID:     row.BuyerID,
		ItemID:     args.ItemID,
		SellerID:   args.SellerID,
		PurchaseID: purchaseID,
		BidID:      row.BidID,
	}); linkErr != nil {
		return linkErr //nolint:wrapcheck
	}

	// Кредит применяется как смещение к списанию, поэтому суммарно по двум счетам
	// денег становится больше ровно на величину кредита.
	buyerDelta := args.BuyerCredit.Sub(row.CurrentPrice)
	if debitErr := accountRepo.AdjustBalance(ctx, repoargs.AdjustBalance{
		UserID: row.BuyerID,
		Delta:  buyerDelta,
	}); debitErr != nil {
		return debitErr //nolint:wrapcheck
	}

	if creditErr := accountRepo.AdjustBalance(ctx, repoargs.AdjustBalance{
		UserID: args.SellerID,
		Delta:  row.CurrentPrice,
	}); creditErr != nil {
		return creditErr //nolint:wrapcheck
	}

	return nil
}
