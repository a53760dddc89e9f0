package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrisense/farm-backend/internal/api"
	analysisapi "github.com/agrisense/farm-backend/internal/api/analysis"
	weatherapi "github.com/agrisense/farm-backend/internal/api/weather"
	"github.com/agrisense/farm-backend/internal/config"
	"github.com/agrisense/farm-backend/internal/integration/groq"
	weatherconn "github.com/agrisense/farm-backend/internal/integration/weatherapi"
	"github.com/agrisense/farm-backend/internal/pkg/validator"
	"github.com/agrisense/farm-backend/internal/usecase/analysis"
	"github.com/agrisense/farm-backend/internal/usecase/weather"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connectors (with mock support)
	var generationConnector analysis.GenerationConnector
	var forecastConnector weather.ForecastConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		generationConnector = groq.NewMockConnector(logger)
		forecastConnector = weatherconn.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		generationConnector = groq.NewConnector(cfg.GroqConnectorCfg, logger)
		forecastConnector = weatherconn.NewConnector(cfg.WeatherConnectorCfg, logger)
	}

	// Initialize validators
	requestValidator := validator.New()
	logger.Info("Validators initialized")

	// Initialize use cases
	weatherUC := weather.NewUsecase(forecastConnector, cfg.WeatherConnectorCfg.ForecastCacheTTL, logger)
	analysisUC := analysis.NewUsecase(generationConnector, weatherUC, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	analysisHandler := analysisapi.NewHandler(analysisUC, requestValidator)
	weatherHandler := weatherapi.NewHandler(weatherUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(analysisHandler, weatherHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
