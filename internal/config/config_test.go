package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFallsBackOnBadNumbers(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("PREVIEW_ROWS", "not-a-number")
	t.Setenv("RESULT_PREVIEW_ROWS", "0")
	t.Setenv("SESSION_TTL_MINUTES", "-5")

	cfg := Load()

	assert.Equal(t, 10, cfg.Dashboard.PreviewRows)
	assert.Equal(t, 20, cfg.Dashboard.ResultPreviewRows)
	assert.Equal(t, 60*time.Minute, cfg.Dashboard.SessionTTL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("GO_ENV", "production")
	t.Setenv("VECTORIZER_PATH", "/models/tfidf.yaml")
	t.Setenv("MODEL_PATH", "/models/svc.yaml")
	t.Setenv("DATASET_PATH", "/data/reviews.tsv")
	t.Setenv("PREVIEW_ROWS", "5")
	t.Setenv("RESULT_PREVIEW_ROWS", "50")
	t.Setenv("RESULT_COLUMN", "Label")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9000", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/models/tfidf.yaml", cfg.Artifacts.VectorizerPath)
	assert.Equal(t, "/models/svc.yaml", cfg.Artifacts.ModelPath)
	assert.Equal(t, "/data/reviews.tsv", cfg.Artifacts.DatasetPath)
	assert.Equal(t, 5, cfg.Dashboard.PreviewRows)
	assert.Equal(t, 50, cfg.Dashboard.ResultPreviewRows)
	assert.Equal(t, "Label", cfg.Dashboard.ResultColumn)
	assert.Equal(t, 15*time.Minute, cfg.Dashboard.SessionTTL)
	assert.True(t, cfg.Tracing.Enabled)
}
