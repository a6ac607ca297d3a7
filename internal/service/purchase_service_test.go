package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/ident"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/internal/service/mocks"
	"github.com/fsdevblog/auction-settle/pkg/uow"
	uowmocks "github.com/fsdevblog/auction-settle/pkg/uow/mocks"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockItemRepo     *mocks.MockItemRepository
	mockAccountRepo  *mocks.MockAccountRepository
	mockPurchaseRepo *mocks.MockPurchaseRepository
	mockUserItemRepo *mocks.MockUserItemRepository
	service          *PurchaseService
}

func TestPurchaseServiceSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockPurchaseRepo = mocks.NewMockPurchaseRepository(s.mockCtrl)
	s.mockUserItemRepo = mocks.NewMockUserItemRepository(s.mockCtrl)

	// Репозитории отдаются из транзакции по именам.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PurchaseRepoName)).
		Return(s.mockPurchaseRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserItemRepoName)).
		Return(s.mockUserItemRepo, nil).AnyTimes()

	s.service = NewPurchaseService(s.mockUOW, NewBenchmarkClock(1))
}

func (s *PurchaseServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo прокидывает функцию транзакции в mockTX: мутации выполняются "внутри"
// замоканной транзакции, ее ошибка возвращается как результат Do.
func (s *PurchaseServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *PurchaseServiceTestSuite) TestPurchase_Success() {
	args := PurchaseArgs{
		ItemID:      4242,
		SellerID:    77,
		BuyerCredit: decimal.RequireFromString("60.00"),
	}
	row := repoargs.PurchasableItem{
		NumBids:      5,
		CurrentPrice: decimal.RequireFromString("100.00"),
		EndDate:      time.Now().Add(-time.Hour),
		BidID:        9001,
		BuyerID:      501,
		BuyerBalance: decimal.RequireFromString("40.00"),
	}
	wantPurchaseID, idErr := ident.PurchaseID(args.ItemID)
	s.Require().NoError(idErr)

	s.expectDo()

	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(&row, nil)

	var createArgs repoargs.PurchaseCreate
	s.mockPurchaseRepo.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(repoargs.PurchaseCreate{})).
		DoAndReturn(func(_ context.Context, a repoargs.PurchaseCreate) (*domain.Purchase, error) {
			createArgs = a
			return &domain.Purchase{
				ID:        a.ID,
				BidID:     a.BidID,
				ItemID:    a.ItemID,
				SellerID:  a.SellerID,
				CreatedAt: a.Date,
			}, nil
		})

	var closeArgs repoargs.CloseItem
	s.mockItemRepo.EXPECT().
		Close(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CloseItem{})).
		DoAndReturn(func(_ context.Context, a repoargs.CloseItem) error {
			closeArgs = a
			return nil
		})

	s.mockUserItemRepo.EXPECT().
		LinkPurchase(gomock.Any(), repoargs.LinkPurchase{
			UserID:     row.BuyerID,
			ItemID:     args.ItemID,
			SellerID:   args.SellerID,
			PurchaseID: wantPurchaseID,
			BidID:      row.BidID,
		}).
		Return(nil)

	// Собираем дельты балансов для проверки сохранения денег.
	var deltas = make(map[int64]decimal.Decimal)
	s.mockAccountRepo.EXPECT().
		AdjustBalance(gomock.Any(), gomock.AssignableToTypeOf(repoargs.AdjustBalance{})).
		DoAndReturn(func(_ context.Context, a repoargs.AdjustBalance) error {
			deltas[a.UserID] = a.Delta
			return nil
		}).Times(2)

	summary, err := s.service.Purchase(s.T().Context(), args)
	s.Require().NoError(err)

	// Сводка - снимок состояния на момент чтения плюс новые идентификаторы.
	s.Equal(args.ItemID, summary.ItemID)
	s.Equal(args.SellerID, summary.SellerID)
	s.Equal(row.NumBids, summary.NumBids)
	s.True(row.CurrentPrice.Equal(summary.CurrentPrice))
	s.Equal(row.EndDate, summary.EndDate)
	s.Equal(domain.ItemStatusWaitingForPurchase, summary.Status)
	s.Equal(wantPurchaseID, summary.PurchaseID)
	s.Equal(row.BidID, summary.BidID)
	s.Equal(row.BuyerID, summary.BuyerID)

	// Запись о выкупе ссылается на победившую ставку и лот.
	s.Equal(wantPurchaseID, createArgs.ID)
	s.Equal(row.BidID, createArgs.BidID)
	s.Equal(args.ItemID, createArgs.ItemID)
	s.Equal(args.SellerID, createArgs.SellerID)

	// Обе мутации проштампованы одним эффективным временем.
	s.Equal(createArgs.Date, closeArgs.UpdatedAt)

	// Покупатель: баланс 40 при цене 100 и кредите 60 уходит ровно в ноль.
	buyerDelta := deltas[row.BuyerID]
	s.True(row.BuyerBalance.Add(buyerDelta).IsZero(),
		"buyer balance after purchase: %s", row.BuyerBalance.Add(buyerDelta))
	// Продавец получает полную цену.
	s.True(deltas[args.SellerID].Equal(row.CurrentPrice))
	// Сохранение денег: суммарное изменение двух счетов равно внешнему кредиту.
	s.True(buyerDelta.Add(deltas[args.SellerID]).Equal(args.BuyerCredit))
}

func (s *PurchaseServiceTestSuite) TestPurchase_ExactAffordabilityBoundary() {
	// price == balance + credit: выкуп должен пройти, отказ только при строгом "больше".
	args := PurchaseArgs{
		ItemID:      100,
		SellerID:    1,
		BuyerCredit: decimal.RequireFromString("0.01"),
	}
	row := repoargs.PurchasableItem{
		NumBids:      1,
		CurrentPrice: decimal.RequireFromString("55.56"),
		EndDate:      time.Now(),
		BidID:        2,
		BuyerID:      3,
		BuyerBalance: decimal.RequireFromString("55.55"),
	}

	s.expectDo()
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(&row, nil)
	s.mockPurchaseRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Purchase{}, nil)
	s.mockItemRepo.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil)
	s.mockUserItemRepo.EXPECT().LinkPurchase(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.service.Purchase(s.T().Context(), args)
	s.Require().NoError(err)
}

func (s *PurchaseServiceTestSuite) TestPurchase_InsufficientFunds() {
	// Цена на одну минимальную денежную единицу выше доступных средств.
	args := PurchaseArgs{
		ItemID:      100,
		SellerID:    1,
		BuyerCredit: decimal.RequireFromString("60.00"),
	}
	row := repoargs.PurchasableItem{
		NumBids:      3,
		CurrentPrice: decimal.RequireFromString("100.01"),
		EndDate:      time.Now(),
		BidID:        2,
		BuyerID:      3,
		BuyerBalance: decimal.RequireFromString("40.00"),
	}

	s.expectDo()
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(&row, nil)
	// Никаких мутаций: проверка платежеспособности - чистый гейт предусловия.

	summary, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.Nil(summary)

	var insufficientErr *domain.InsufficientFundsError
	s.Require().ErrorAs(err, &insufficientErr)
	s.True(insufficientErr.Price.Equal(row.CurrentPrice))
	s.True(insufficientErr.Balance.Equal(row.BuyerBalance))
	s.True(insufficientErr.Credit.Equal(args.BuyerCredit))
}

func (s *PurchaseServiceTestSuite) TestPurchase_NoPurchasableItem() {
	args := PurchaseArgs{ItemID: 100, SellerID: 1, BuyerCredit: decimal.Zero}

	s.expectDo()
	// Лот не найден / чужой продавец / не тот статус / нет победителя - репозиторий
	// во всех случаях отдает ErrRecordNotFound.
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(nil, fmt.Errorf("[repository/finding purchasable item] %w", domain.ErrRecordNotFound))

	summary, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.Nil(summary)
	s.ErrorIs(err, domain.ErrNoPurchasableItem)
}

func (s *PurchaseServiceTestSuite) TestPurchase_IntegrityViolation() {
	args := PurchaseArgs{ItemID: 100, SellerID: 1, BuyerCredit: decimal.Zero}

	s.expectDo()
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(nil, fmt.Errorf("[repository/finding purchasable item] %w", domain.ErrIntegrityViolation))

	_, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *PurchaseServiceTestSuite) TestPurchase_MutationFailureAbortsBatch() {
	args := PurchaseArgs{ItemID: 100, SellerID: 1, BuyerCredit: decimal.Zero}
	row := repoargs.PurchasableItem{
		NumBids:      1,
		CurrentPrice: decimal.RequireFromString("10.00"),
		EndDate:      time.Now(),
		BidID:        2,
		BuyerID:      3,
		BuyerBalance: decimal.RequireFromString("10.00"),
	}
	wantErr := errors.New("insert failed")

	s.expectDo()
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(&row, nil)
	// Первая же мутация падает - дальше батч не продолжается, ошибка уходит в uow.Do
	// и транзакция откатывается целиком.
	s.mockPurchaseRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	summary, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.Nil(summary)
	s.ErrorIs(err, wantErr)
}

func (s *PurchaseServiceTestSuite) TestPurchase_DuplicateRetryDetectable() {
	// Повторная попытка выкупа того же лота: детерминированный id дает конфликт
	// первичного ключа, который вызывающая сторона распознает как повтор.
	args := PurchaseArgs{ItemID: 100, SellerID: 1, BuyerCredit: decimal.Zero}
	row := repoargs.PurchasableItem{
		NumBids:      1,
		CurrentPrice: decimal.RequireFromString("10.00"),
		EndDate:      time.Now(),
		BidID:        2,
		BuyerID:      3,
		BuyerBalance: decimal.RequireFromString("10.00"),
	}

	s.expectDo()
	s.mockItemRepo.EXPECT().
		FindPurchasable(gomock.Any(), args.ItemID, args.SellerID).
		Return(&row, nil)
	s.mockPurchaseRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("[repository/creating purchase] %w", domain.ErrDuplicateKey))

	_, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *PurchaseServiceTestSuite) TestPurchase_NegativeCreditRejected() {
	args := PurchaseArgs{
		ItemID:      100,
		SellerID:    1,
		BuyerCredit: decimal.RequireFromString("-0.01"),
	}
	// До транзакции дело не доходит.
	summary, err := s.service.Purchase(s.T().Context(), args)
	s.Require().Error(err)
	s.Nil(summary)
}
