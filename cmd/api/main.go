package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	reportCacheRedis "order-analytics-service/internal/analytics/adapters/cache/redis"
	"order-analytics-service/internal/analytics/adapters/export"
	dashboardHttp "order-analytics-service/internal/analytics/adapters/http/fiber"
	"order-analytics-service/internal/analytics/core/ports"
	"order-analytics-service/internal/analytics/core/usecase"
	datasetCsv "order-analytics-service/internal/dataset/adapters/csv"
	datasetPg "order-analytics-service/internal/dataset/adapters/postgres"
	datasetPorts "order-analytics-service/internal/dataset/core/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "order-analytics-service/docs"
)

func main() {
	// Config (.env is optional)
	_ = godotenv.Load()

	reader, cleanup := buildOrderReader()
	defer cleanup()

	// Fail fast on schema/availability problems before serving anything.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	orders, err := reader.LoadOrders(startupCtx)
	cancelStartup()
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	log.Printf("dataset loaded: %d order rows", len(orders))

	cache := buildReportCache()

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}
	exporter := export.NewJSONExporter(exportDir)

	// Usecases
	dashboardUC := usecase.NewGetDashboardUseCase(reader, cache)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardUC, exporter)
	app.Get("/dashboard", dashboardHandler.GetDashboard)
	app.Get("/dashboard/bounds", dashboardHandler.GetBounds)
	app.Get("/dashboard/export", dashboardHandler.ExportDashboard)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Println("server started on :" + port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

// buildOrderReader picks the dataset source: a CSV file when
// DATASET_CSV is set, otherwise an orders table via POSTGRES_DSN.
func buildOrderReader() (datasetPorts.OrderReaderPort, func()) {
	if path := os.Getenv("DATASET_CSV"); path != "" {
		return datasetCsv.NewOrderReader(path), func() {}
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("either DATASET_CSV or POSTGRES_DSN must be set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	return datasetPg.NewOrderRepository(datasetPg.NewSQLDB(db)), func() { _ = db.Close() }
}

// buildReportCache returns nil when REDIS_URL is unset; the usecase
// treats a nil cache as no memoization.
func buildReportCache() ports.ReportCachePort {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := goredis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return reportCacheRedis.NewReportCache(client)
}
