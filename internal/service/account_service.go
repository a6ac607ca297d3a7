package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type AccountService struct {
	uow         uow.UOW
	accountRepo AccountRepository
}

func NewAccountService(u uow.UOW) (*AccountService, error) {
	accountRepo, err := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err
	}
	return &AccountService{
		uow:         u,
		accountRepo: accountRepo,
	}, nil
}

func (a *AccountService) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	balance, err := a.accountRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	return balance, nil
}
