package service

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/internal/service/mocks"
	"github.com/fsdevblog/auction-settle/pkg/uow"
	uowmocks "github.com/fsdevblog/auction-settle/pkg/uow/mocks"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockItemRepo *mocks.MockItemRepository
	service      *ItemService
}

func TestItemServiceSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}

func (s *ItemServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()

	var err error
	s.service, err = NewItemService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *ItemServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ItemServiceTestSuite) TestWaitingForPurchase() {
	items := []domain.Item{
		{
			ID:           gofakeit.Int64(),
			SellerID:     gofakeit.Int64(),
			NumBids:      3,
			CurrentPrice: decimal.NewFromFloat(gofakeit.Price(1, 1000)),
			EndDate:      time.Now().Add(-time.Hour),
			Status:       domain.ItemStatusWaitingForPurchase,
		},
	}

	s.mockItemRepo.EXPECT().
		GetWaitingForPurchase(gomock.Any(), uint(50)).
		Return(items, nil)

	got, err := s.service.WaitingForPurchase(s.T().Context(), 50)
	s.Require().NoError(err)
	s.Equal(items, got)
}

func (s *ItemServiceTestSuite) TestWaitingForPurchase_RepoError() {
	wantErr := errors.New("query failed")

	s.mockItemRepo.EXPECT().
		GetWaitingForPurchase(gomock.Any(), uint(10)).
		Return(nil, wantErr)

	_, err := s.service.WaitingForPurchase(s.T().Context(), 10)
	s.ErrorIs(err, wantErr)
}
