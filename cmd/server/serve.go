package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/villa-booking/internal/auth"
	"github.com/iliyamo/villa-booking/internal/config"
	"github.com/iliyamo/villa-booking/internal/database"
	"github.com/iliyamo/villa-booking/internal/handler"
	"github.com/iliyamo/villa-booking/internal/middleware"
	"github.com/iliyamo/villa-booking/internal/model"
	"github.com/iliyamo/villa-booking/internal/repository"
	"github.com/iliyamo/villa-booking/internal/router"
	"github.com/iliyamo/villa-booking/internal/service"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger, err := newLogger(cfg.Dev())
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reservations, blocages, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer closeStore()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTTL, nil)
	if err != nil {
		return err
	}
	authn := auth.NewAuthenticator(model.Admin{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash}, tokens)

	var opts []service.Option
	if cfg.RabbitMQURL != "" {
		opts = append(opts, service.WithPublisher(&service.AMQPPublisher{URL: cfg.RabbitMQURL, Logger: logger}))
	} else {
		logger.Info("RABBITMQ_URL not set, reservation events disabled")
	}
	bookings := service.NewBookingService(reservations, blocages, logger, opts...)

	rdb := config.NewRedisClient(ctx, cfg.Redis)
	if rdb == nil {
		logger.Warn("redis unavailable, caching and rate limiting disabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		defer func() { _ = rdb.Close() }()
	}

	e := router.New(router.Deps{
		Auth:        handler.NewAuthHandler(authn, logger),
		Bookings:    handler.NewBookingHandler(bookings, logger),
		Tokens:      tokens,
		Owner:       authn.Owner(),
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		RateLimit:   middleware.NewTokenBucket(cfg.RateLimit, rdb, logger),
		Cache:       middleware.NewRedisCache(cfg.Cache, rdb),
		Invalidate:  middleware.InvalidateOnWrite(middleware.NewCacheInvalidator(cfg.Cache, rdb, logger)),
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openStores connects the configured backend and prepares its schema.
func openStores(ctx context.Context, cfg config.Config) (repository.ReservationStore, repository.BlocageStore, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, db, err := database.OpenMongo(ctx, cfg.DBURL, cfg.DBName)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return repository.NewMongoReservationStore(db), repository.NewMongoBlocageStore(db), closeFn, nil
	case config.DriverMySQL, config.DriverSQLite:
		open, dialect := database.OpenMySQL, database.DialectMySQL
		if cfg.DBDriver == config.DriverSQLite {
			dialect = database.DialectSQLite
			open = func(ctx context.Context, path, _ string) (*sql.DB, error) { return database.OpenSQLite(ctx, path) }
		}
		db, err := open(ctx, cfg.DBURL, cfg.DBName)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() { _ = db.Close() }
		if err := database.Migrate(ctx, db, dialect); err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return repository.NewReservationRepo(db), repository.NewBlocageRepo(db), closeFn, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
