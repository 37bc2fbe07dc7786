package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sales/cmd"
	httpin "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/postgres"
	salespubsub "sales/internal/adapters/out/pubsub"
	"sales/internal/core/ports"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	publisher, closePublisher := newEventPublisher(ctx, configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		AdminRole:            envOrDefault("ADMIN_ROLE", "admin"),
		PubSubProjectID:      os.Getenv("PUBSUB_PROJECT_ID"),
		DisparityJobSchedule: envOrDefault("DISPARITY_JOB_SCHEDULE", "0 0 * * * *"),
	}

	cacheSize, err := strconv.Atoi(envOrDefault("CACHE_SIZE", "1024"))
	if err != nil || cacheSize <= 0 {
		log.Fatalf("CACHE_SIZE must be a positive integer")
	}
	config.CacheSize = cacheSize

	cacheTTL, err := time.ParseDuration(envOrDefault("CACHE_TTL", "10m"))
	if err != nil {
		log.Fatalf("CACHE_TTL is invalid: %v", err)
	}
	config.CacheTTL = cacheTTL

	return config
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func dsn(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func newEventPublisher(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.PubSubProjectID == "" {
		logger.WarnContext(ctx, "PUBSUB_PROJECT_ID is empty, events are only logged")
		return salespubsub.NewLogEventPublisher(logger), func() {}
	}

	client, err := pubsub.NewClient(ctx, configs.PubSubProjectID)
	if err != nil {
		log.Fatalf("Failed to create pubsub client: %v", err)
	}
	publisher, err := salespubsub.NewPubSubEventPublisher(client)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}

	return publisher, func() {
		publisher.Close()
		_ = client.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("Failed to load openapi document: %v", err)
	}

	server := httpin.NewServer(httpin.Handlers{
		UpsertOrderSale:     app.CreateUpsertOrderSaleCommandHandler(),
		DeleteOrderSale:     app.CreateDeleteOrderSaleCommandHandler(),
		OrderSaleTotals:     app.CreateGetOrderSaleTotalsQueryHandler(),
		OrderSaleLifecycle:  app.CreateGetOrderSaleLifecycleQueryHandler(),
		PaymentDisparities:  app.CreateGetSalesWithPaymentDisparitiesQueryHandler(),
		MaxOrderCode:        app.CreateGetOrderSaleMaxOrderCodeQueryHandler(),
		RemainingProducts:   app.CreateGetOrderRequestRemainingProductsQueryHandler(),
		ProductSoldQuantity: app.CreateGetProductSoldQuantityQueryHandler(),
	}, logger)

	e := httpin.NewEcho(logger)
	httpin.RegisterHandlers(e, server, doc)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
}
