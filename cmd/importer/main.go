package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"dancehub/internal/adapters/facebook"
	"dancehub/internal/adapters/googlemaps"
	"dancehub/internal/adapters/search"
	"dancehub/internal/api"
	"dancehub/internal/application"
	"dancehub/internal/config"
	"dancehub/internal/infrastructure/database"
	"dancehub/internal/observability"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if cfg.Server.Mode == gin.DebugMode {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		logger.Fatalf("migrations: %v", err)
	}

	profileRepo := database.NewProfileRepository(pool)
	eventRepo := database.NewEventRepository(pool)

	geocoder, err := googlemaps.NewGeocoder(cfg.Maps.APIKey, logger)
	if err != nil {
		logger.Fatalf("geocoder: %v", err)
	}
	cities := googlemaps.NewCityDirectory(geocoder, profileRepo, logger)
	scraper := facebook.NewScraper(&cfg.Scraper, logger)
	index := search.NewClient(&cfg.Search, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)

	importer := application.NewImportService(
		scraper, geocoder, cities, index, profileRepo,
		logger, metrics, cfg.ImportTimeout(),
	)
	catalog := application.NewCatalogService(eventRepo)

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(
		api.NewImportHandler(importer, logger),
		api.NewEventHandler(catalog, logger),
		registry,
	)

	logger.WithField("addr", cfg.Server.Addr).Info("dancehub import service listening")
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
