package service

import (
	"context"

	"github.com/fsdevblog/auction-settle/internal/domain"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type ItemService struct {
	uow      uow.UOW
	itemRepo ItemRepository
}

func NewItemService(u uow.UOW) (*ItemService, error) {
	itemRepo, err := uow.GetRepositoryAs[ItemRepository](u, uow.RepositoryName(repoargs.ItemRepoName))
	if err != nil {
		return nil, err
	}
	return &ItemService{
		uow:      u,
		itemRepo: itemRepo,
	}, nil
}

// WaitingForPurchase возвращает лоты, доступные для финализации выкупа.
func (i *ItemService) WaitingForPurchase(ctx context.Context, limit uint) ([]domain.Item, error) {
	items, err := i.itemRepo.GetWaitingForPurchase(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}
