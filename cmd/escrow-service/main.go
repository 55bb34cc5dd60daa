package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sogolo/sogolo-escrow-service/internal/config"
	"github.com/sogolo/sogolo-escrow-service/internal/delivery/http/handlers"
	authmw "github.com/sogolo/sogolo-escrow-service/internal/delivery/http/middleware"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/blobstore"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/kafka"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/metrics"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/migrate"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/postgres"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sogolo/sogolo-escrow-service/internal/usecase/escrow"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init change-notification publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer publisher.Close()

	// Init object store
	files, err := blobstore.New(cfg.BlobStore.Path, cfg.BlobStore.PublicBaseURL)
	if err != nil {
		log.Fatalf("failed to init blob store: %v", err)
	}
	defer files.Close()

	// Init transaction repo
	txRepo := repository.NewDefaultTransactionRepository(db)

	// Init metrics
	escrowMetrics := metrics.NewEscrowMetrics()

	// Init escrow usecase
	uc := escrow.NewDefaultEscrowUsecase(txRepo, files, publisher, escrowMetrics)

	// HTTP server
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.NewEscrowHandler(e, uc, authmw.JWTAuth(cfg.Auth.JWTSecret))
	handlers.NewFilesHandler(e, files)

	// Stuck transactions monitor
	go uc.StartStuckTransactionsMonitor(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("escrow service started on %s\n", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
