package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FereolKpavode/CHURN/internal/application/usecase"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/config"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/messaging"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/ml"
	grpcpresentation "github.com/FereolKpavode/CHURN/internal/presentation/grpc"
	"github.com/FereolKpavode/CHURN/internal/presentation/rest"
	"github.com/FereolKpavode/CHURN/pkg/auth"
	"github.com/FereolKpavode/CHURN/pkg/kafka"
	"github.com/FereolKpavode/CHURN/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Service: "churn-service",
		Level:   cfg.LogLevel,
		Format:  "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting churn-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"model_path", cfg.ModelPath,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "churn-service",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdown(ctx)
	}

	// Metrics endpoint handler.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "churn-service",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// JWT service for the gRPC surface.
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Expiration: cfg.JWTExpiration,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Wire infrastructure adapters.
	modelLoader := ml.NewLoader(cfg.ModelPath, logger)

	producer := kafka.NewProducer(kafka.Config{Brokers: []string{cfg.KafkaBroker}})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, cfg.EventsTopic, logger)

	// Wire domain services.
	validator := service.NewValidator()
	thresholds := valueobject.TierThresholds{
		MediumAt: cfg.MediumRiskAt,
		HighAt:   cfg.HighRiskAt,
	}
	explainer := service.NewExplainer(modelLoader, service.ExplainerConfig{
		Enabled:        cfg.ExplainerEnabled,
		BackgroundSize: cfg.BackgroundSize,
		Permutations:   cfg.Permutations,
		Seed:           cfg.ExplainerSeed,
		SampleSize:     cfg.ImportanceSampleSize,
	}, logger)

	// Wire use cases.
	predictUC := usecase.NewPredictChurn(modelLoader, eventPublisher, validator, thresholds, logger)
	explainUC := usecase.NewExplainPrediction(modelLoader, explainer, validator, cfg.TopInterpretations, cfg.StrongImpactAt, logger)
	batchUC := usecase.NewRunBatch(predictUC, logger)
	modelInfoUC := usecase.NewGetModelInfo(modelLoader)

	// gRPC server.
	grpcHandler := grpcpresentation.NewChurnServiceHandler(predictUC, explainUC, batchUC, modelInfoUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger, jwtService)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(modelLoader, logger)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("churn-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down churn-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("churn-service stopped")
}
