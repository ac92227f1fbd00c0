// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the churn service.
type Config struct {
	GRPCPort    string
	HTTPPort    string
	ModelPath   string
	KafkaBroker string
	EventsTopic string
	Environment string
	LogLevel    string

	// OTLPEndpoint is the collector address for trace export.
	OTLPEndpoint string

	// Risk tier cutoffs over the churn probability. A probability at or above
	// HighRiskAt is HIGH, at or above MediumRiskAt is MEDIUM, below is LOW.
	MediumRiskAt float64
	HighRiskAt   float64

	// StrongImpactAt separates "fortement" from "modérément" in the
	// explanation wording.
	StrongImpactAt float64

	// Explainer settings.
	ExplainerEnabled     bool
	BackgroundSize       int
	Permutations         int
	ExplainerSeed        int64
	ImportanceSampleSize int
	TopInterpretations   int

	// JWT settings for the gRPC surface.
	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is merged in first, if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GRPCPort:    getEnv("GRPC_PORT", "8094"),
		HTTPPort:    getEnv("HTTP_PORT", "9094"),
		ModelPath:   getEnv("MODEL_PATH", "models/churn_model.json"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		EventsTopic: getEnv("EVENTS_TOPIC", "churn.predictions"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		MediumRiskAt:   getEnvFloat("RISK_MEDIUM_AT", 0.30),
		HighRiskAt:     getEnvFloat("RISK_HIGH_AT", 0.70),
		StrongImpactAt: getEnvFloat("STRONG_IMPACT_AT", 0.10),

		ExplainerEnabled:     getEnvBool("EXPLAINER_ENABLED", true),
		BackgroundSize:       getEnvInt("EXPLAINER_BACKGROUND_SIZE", 100),
		Permutations:         getEnvInt("EXPLAINER_PERMUTATIONS", 8),
		ExplainerSeed:        int64(getEnvInt("EXPLAINER_SEED", 42)),
		ImportanceSampleSize: getEnvInt("EXPLAINER_IMPORTANCE_SAMPLE", 20),
		TopInterpretations:   getEnvInt("EXPLAINER_TOP_N", 5),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTIssuer:     getEnv("JWT_ISSUER", "churn-service"),
		JWTExpiration: getEnvDuration("JWT_EXPIRATION", 15*time.Minute),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
