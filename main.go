package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kickshop/internal/config"
	"kickshop/internal/database"
	"kickshop/internal/logger"
	"kickshop/internal/repositories"
	"kickshop/internal/server"
	"kickshop/internal/services"
	"kickshop/pkg/password"
	"kickshop/pkg/rabbitmq"
	"kickshop/pkg/redisstore"
	"kickshop/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const appName = "kickshop"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(appName, cfg.AppEnv, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.WithField("error", err.Error()).Fatal("server stopped with error")
	}
	log.Info("server gracefully stopped")
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.LogError(log, "failed to close store", err, nil)
		}
	}()
	log.WithField("driver", cfg.StoreDriver).Info("store connected")

	// --- Events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeOrderEvents(ctx, rabbitmq.OrderEventLogger(log)); err != nil {
			logger.LogError(log, "failed to start order event consumer", err, nil)
		}
	} else {
		log.Info("RABBITMQ_URL not set, domain events disabled")
	}

	// --- Limiter storage ---
	var limiterStorage fiber.Storage
	if cfg.RedisAddr != "" {
		rs, err := redisstore.New(redisstore.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return err
		}
		defer rs.Close()
		limiterStorage = rs
	}

	// --- Services ---
	authService := services.NewAuthService(
		store.Users,
		password.NewHasher(cfg.BcryptCost),
		token.NewManager(cfg.JWTSecret),
		services.AuthConfig{AccessTokenTTL: cfg.AccessTokenTTL},
		log,
	)
	productService := services.NewProductService(store.Products, log)
	cartService := services.NewCartService(store.Carts, store.Products, publisher, log)
	orderService := services.NewOrderService(store.Orders, store.Carts, store.Products, publisher, log)

	if cfg.SeedOnStart {
		n, err := productService.SeedCatalog(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.WithField("count", n).Info("catalog seeded on start")
	}

	app := server.NewApp(server.Options{
		AppName:        appName,
		APIPrefix:      cfg.APIPrefix,
		CORSOrigins:    cfg.AllowedOrigins(),
		AdminToken:     cfg.AdminToken,
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
		LimiterStorage: limiterStorage,
	}, server.Deps{
		Auth:     authService,
		Products: productService,
		Carts:    cartService,
		Orders:   orderService,
		Store:    store,
		Log:      log,
	})

	// --- Start HTTP Server ---
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.AppPort).Info("starting server")
		errCh <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.LogError(log, "error during fiber shutdown", err, nil)
	}
	return nil
}

// openStore connects the backend selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (*repositories.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return repositories.NewMemoryStore(), nil
	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := repositories.Migrate(db); err != nil {
			return nil, err
		}
		return repositories.NewGORMStore(db), nil
	case config.DriverMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		store, err := repositories.NewMongoStore(ctx, client, db)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
