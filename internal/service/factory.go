package service

import (
	"fmt"

	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type AppServices struct {
	PurchaseService *PurchaseService
	ItemService     *ItemService
	AccountService  *AccountService
}

func Factory(unitOfWork uow.UOW, clock *BenchmarkClock) (*AppServices, error) {
	itemService, itemServiceErr := NewItemService(unitOfWork)
	if itemServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", itemServiceErr.Error())
	}

	accountService, accountServiceErr := NewAccountService(unitOfWork)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	return &AppServices{
		PurchaseService: NewPurchaseService(unitOfWork, clock),
		ItemService:     itemService,
		AccountService:  accountService,
	}, nil
}
