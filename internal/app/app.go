package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/fsdevblog/auction-settle/internal/config"
	"github.com/fsdevblog/auction-settle/internal/repository/pgrepo"
	"github.com/fsdevblog/auction-settle/internal/repository/repoargs"
	"github.com/fsdevblog/auction-settle/internal/service"
	"github.com/fsdevblog/auction-settle/internal/transport/api"
	"github.com/fsdevblog/auction-settle/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	clock := service.NewBenchmarkClock(a.Config.TimeScaleFactor)
	services, sErr := service.Factory(unitOfWork, clock)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		PurchaseService: services.PurchaseService,
		ItemService:     services.ItemService,
		AccountService:  services.AccountService,
		JWTSecretKey:    []byte(a.Config.JWTClientSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	// Чтение и все пять мутаций выкупа должны видеть согласованный снимок:
	// конфликтующие транзакции по одному лоту/счету сериализует база.
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithTxOptions(pgx.TxOptions{
		IsoLevel: pgx.RepeatableRead,
	}))

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.ItemRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewItemRepository(dbtx) },
		repoargs.AccountRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAccountRepository(dbtx) },
		repoargs.PurchaseRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPurchaseRepository(dbtx) },
		repoargs.UserItemRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserItemRepository(dbtx) },
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
