package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"static-page/internal/config"
	"static-page/internal/handler"
	"static-page/internal/metrics"
	"static-page/internal/repository"
	"static-page/internal/server"
	"static-page/internal/service"
	"syscall"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize repository
	repo, err := repository.NewFileRepository(cfg.StaticDir)
	if err != nil {
		log.Fatalf("failed to initialize repository: %v", err)
	}
	defer repo.Close()
	log.Printf("serving static files from %s, index document %s", repo.Dir(), cfg.IndexPath)

	// Initialize metrics
	metricsInstance := metrics.NewMetrics()

	// Initialize services
	assetService := service.NewAssetService(repo, metricsInstance)
	pageService := service.NewPageService(cfg.IndexPath, metricsInstance)

	// Initialize handlers: static first, root second
	assetHandler := handler.NewAssetHandler(assetService, pageService, metricsInstance)

	srv := server.New(cfg, assetHandler.Routes())

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		repo.Close()
		log.Fatal(err)
	}

	log.Printf("metrics: %v", metricsInstance.GetSnapshot())
}
