package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/auction-settle/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	PurchaseRoute     = "/purchase"
	WaitingItemsRoute = "/items/waiting-for-purchase"
	BalanceRoute      = "/accounts/:id/balance"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	PurchaseService PurchaseServicer
	ItemService     ItemServicer
	AccountService  AccountServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	purchaseHandler := NewPurchaseHandler(args.PurchaseService)
	itemsHandler := NewItemsHandler(args.ItemService)
	balanceHandler := NewBalanceHandler(args.AccountService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// все роуты группы требуют авторизованного клиента.
	api.POST(PurchaseRoute, purchaseHandler.Create)
	api.GET(WaitingItemsRoute, itemsHandler.WaitingForPurchase)
	api.GET(BalanceRoute, balanceHandler.Show)
	return r
}
