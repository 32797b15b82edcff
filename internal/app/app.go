package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/cache"
	"github.com/fsdevblog/jalsa-khata/internal/config"
	"github.com/fsdevblog/jalsa-khata/internal/handoff"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/fsdevblog/jalsa-khata/internal/phone"
	"github.com/fsdevblog/jalsa-khata/internal/realtime"
	"github.com/fsdevblog/jalsa-khata/internal/repository/pgrepo"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

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

	if err := a.Config.RequireJWTSecret(); err != nil {
		return fmt.Errorf("app run: %s", err.Error())
	}

	l := a.Logger.WithField("component", "app")
	l.WithFields(logrus.Fields{
		"address": a.Config.RunAddress,
		"redis":   a.Config.RedisAddr != "",
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, l)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := InitUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	shopMetrics := metrics.New(registry)

	hub := realtime.NewHub(realtime.DefaultSubscriberBuffer, a.Logger.WithField("component", "realtime"), shopMetrics)
	var publisher service.Publisher = hub
	var catalog service.CatalogCache = cache.NoopCatalogCache{}

	if a.Config.RedisAddr != "" {
		rdb, redisErr := a.connectRedis(notifyCtx)
		if redisErr != nil {
			return fmt.Errorf("app run: %s", redisErr.Error())
		}
		defer rdb.Close()

		entry := a.Logger.WithField("component", "realtime")
		publisher = realtime.NewRedisPublisher(rdb, a.Config.RedisEventsChannel, hub, entry, shopMetrics)
		catalog = cache.NewRedisCatalogCache(rdb, a.Config.CatalogCacheTTL, a.Logger.WithField("component", "cache"))

		relay := realtime.NewRedisRelay(rdb, a.Config.RedisEventsChannel, hub, entry)
		go func() {
			if err := relay.Run(notifyCtx); err != nil && !errors.Is(err, context.Canceled) {
				entry.WithError(err).Error("redis relay stopped")
			}
		}()
	}

	phones := phone.New(a.Config.PhoneRegion)
	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret: []byte(a.Config.JWTSecret),
		JWTTTL:    a.Config.JWTTTL,
		Phones:    phones,
		Publisher: publisher,
		Catalog:   catalog,
		Metrics:   shopMetrics,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		LedgerService:      services.LedgerService,
		OrderService:       services.OrderService,
		ProductService:     services.ProductService,
		ApplicationService: services.ApplicationService,
		Hub:                hub,
		WhatsApp:           handoff.NewWhatsApp(a.Config.WhatsAppNumber),
		Phones:             phones,
		Metrics:            shopMetrics,
		Gatherer:           registry,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		AllowedOrigins:     a.Config.AllowedOrigins,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// SSE соединения держат сервер, Shutdown их не ждет дольше таймаута.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.WithError(err).Warn("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func (a *App) connectRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", a.Config.RedisAddr, err)
	}
	return rdb, nil
}

// InitUOW регистрирует все репозитории в unit of work.
func InitUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.DealerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDealerRepository(dbtx)
		},
		repoargs.LedgerEntryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLedgerEntryRepository(dbtx)
		},
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.ApplicationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewApplicationRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
