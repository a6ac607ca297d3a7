package service

import (
	"testing"

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

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockAccountRepo *mocks.MockAccountRepository
	service         *AccountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()

	var err error
	s.service, err = NewAccountService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountServiceTestSuite) TestGetBalance() {
	userID := gofakeit.Int64()
	want := decimal.NewFromFloat(gofakeit.Price(0, 10000))

	s.mockAccountRepo.EXPECT().
		GetBalance(gomock.Any(), userID).
		Return(want, nil)

	got, err := s.service.GetBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	s.True(want.Equal(got))
}

func (s *AccountServiceTestSuite) TestGetBalance_NotFound() {
	userID := gofakeit.Int64()

	s.mockAccountRepo.EXPECT().
		GetBalance(gomock.Any(), userID).
		Return(decimal.Zero, domain.ErrRecordNotFound)

	_, err := s.service.GetBalance(s.T().Context(), userID)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}
