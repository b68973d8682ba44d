package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/matjar-tech/catalog-backend/internal/cfg"
	v1Http "github.com/matjar-tech/catalog-backend/internal/delivery/v1/http"
	"github.com/matjar-tech/catalog-backend/internal/infrastructure/catalog"
	"github.com/matjar-tech/catalog-backend/internal/infrastructure/kafka"
	"github.com/matjar-tech/catalog-backend/internal/infrastructure/promotions"
	"github.com/matjar-tech/catalog-backend/internal/infrastructure/rates"
	"github.com/matjar-tech/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/matjar-tech/catalog-backend/internal/repository/pgdb/converter/generated"
	"github.com/matjar-tech/catalog-backend/internal/repository/redis"
	redisConv "github.com/matjar-tech/catalog-backend/internal/repository/redis/converter/generated"
	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/matjar-tech/catalog-backend/pkg/clients"
	"github.com/matjar-tech/catalog-backend/pkg/closer"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/matjar-tech/catalog-backend/pkg/postgres"
)

// App собирает зависимости ценового движка и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	variantConv := pgdbConv.NewVariantConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	ratesConv := redisConv.NewRatesConverterImpl()
	attrConv := redisConv.NewAttributeConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	variantRepo := pgdb.NewVariantRepo(db.Pool, variantConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, ratesConv, attrConv, cfg.Redis, log)

	ratesInfra := rates.NewRatesService(cfg.Rates, log)
	catalogInfra := catalog.NewCatalogService(cfg.Catalog, log)

	// При выключенных промо usecase получает nil и пропускает оценку правил.
	var promotionsInfra usecase.PromotionsInfra
	if cfg.Promotions.Enabled {
		promotionsInfra = promotions.NewPromotionsService(cfg.Promotions, log)
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	pricingUC := usecase.NewPricingUC(
		productRepo,
		variantRepo,
		outboxRepo,
		db.Pool,
		ratesInfra,
		promotionsInfra,
		cacheRepo,
		log,
	)

	variantUC := usecase.NewVariantUC(
		productRepo,
		variantRepo,
		outboxRepo,
		db.Pool,
		catalogInfra,
		cacheRepo,
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(pricingUC, variantUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  cl,
		httpSrv: httpSrv,
		worker:  worker,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.worker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
