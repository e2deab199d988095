package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Artifacts ArtifactConfig
	Dashboard DashboardConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type ArtifactConfig struct {
	VectorizerPath string
	ModelPath      string
	DatasetPath    string
}

type DashboardConfig struct {
	PreviewRows       int
	ResultPreviewRows int
	ResultColumn      string
	SessionTTL        time.Duration
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8501"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "dashboard.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Artifacts: ArtifactConfig{
			VectorizerPath: getEnv("VECTORIZER_PATH", "TF-IDF.json"),
			ModelPath:      getEnv("MODEL_PATH", "LinearSVC.json"),
			DatasetPath:    getEnv("DATASET_PATH", "final_sample_dataset.csv"),
		},
		Dashboard: DashboardConfig{
			PreviewRows:       getEnvAsInt("PREVIEW_ROWS", 10),
			ResultPreviewRows: getEnvAsInt("RESULT_PREVIEW_ROWS", 20),
			ResultColumn:      getEnv("RESULT_COLUMN", "Sentiment"),
			SessionTTL:        time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
