package config_test

import (
	"call-staffing/config"
	"call-staffing/errors"
	"call-staffing/staffing"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		env   map[string]string
		check func(*testing.T, *config.Config)
	}{
		"DefaultValues": {
			env: map[string]string{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Empty(t, cfg.HTTPAddr)
				assert.Empty(t, cfg.ModelFile)
				assert.Equal(t, "pt-BR", cfg.Locale)
				assert.Equal(t, []string{"http://localhost:8501"}, cfg.AllowedOrigins)
			},
		},
		"CustomValues": {
			env: map[string]string{
				"LOG_LEVEL":       "debug",
				"HTTP_ADDR":       ":8080",
				"METRICS_ADDR":    ":9090",
				"PUSH_URL":        "http://localhost:9091",
				"ALLOWED_ORIGINS": "http://example.com, http://test.com",
				"MODEL_FILE":      "configs/model.yaml",
				"LOCALE":          "en",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, ":8080", cfg.HTTPAddr)
				assert.Equal(t, ":9090", cfg.MetricsAddr)
				assert.Equal(t, "http://localhost:9091", cfg.PushURL)
				assert.Equal(t, []string{"http://example.com", "http://test.com"}, cfg.AllowedOrigins)
				assert.Equal(t, "configs/model.yaml", cfg.ModelFile)
				assert.Equal(t, "en", cfg.Locale)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"LOG_LEVEL", "HTTP_ADDR", "METRICS_ADDR", "PUSH_URL", "ALLOWED_ORIGINS", "MODEL_FILE", "LOCALE"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadModel(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		cfg, err := config.LoadModel("")
		require.NoError(t, err)
		assert.Equal(t, staffing.DefaultAssumptions(), cfg.Assumptions)
		assert.Equal(t, staffing.DefaultParameters(), cfg.Defaults)
	})

	t.Run("PartialOverride", func(t *testing.T) {
		path := writeModel(t, `
assumptions:
  service_level_target: 0.8
operation:
  max_wait_time: 30
defaults:
  arrival_rate: 250
`)
		cfg, err := config.LoadModel(path)
		require.NoError(t, err)

		assert.Equal(t, 0.8, cfg.Assumptions.ServiceLevelTarget)
		assert.Equal(t, 0.2, cfg.Assumptions.ExceedThresholdFraction)
		assert.Equal(t, 0.8, cfg.Assumptions.AnsweredWithinTargetFraction)
		assert.Equal(t, 30.0, cfg.Defaults.MaxWaitTime)
		assert.Equal(t, 250.0, cfg.Defaults.ArrivalRate)
		assert.Equal(t, 300.0, cfg.Defaults.ServiceTime)
		assert.Equal(t, staffing.IntervalRate, cfg.Defaults.IntervalRate)
	})

	t.Run("ShippedFile", func(t *testing.T) {
		cfg, err := config.LoadModel(filepath.Join("..", "configs", "model.yaml"))
		require.NoError(t, err)
		assert.Equal(t, staffing.DefaultAssumptions(), cfg.Assumptions)
		assert.Equal(t, staffing.DefaultParameters(), cfg.Defaults)
	})

	t.Run("InvalidAssumption", func(t *testing.T) {
		path := writeModel(t, "assumptions:\n  exceed_threshold_fraction: 1.5\n")
		_, err := config.LoadModel(path)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
	})

	t.Run("InvalidDefaults", func(t *testing.T) {
		path := writeModel(t, "defaults:\n  abandonment_rate: 1\n")
		_, err := config.LoadModel(path)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
	})

	t.Run("ExplicitZeroKept", func(t *testing.T) {
		path := writeModel(t, "defaults:\n  abandonment_rate: 0\n  unavailability_percentage: 0\n")
		cfg, err := config.LoadModel(path)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cfg.Defaults.AbandonmentRate)
		assert.Equal(t, 0.0, cfg.Defaults.UnavailabilityPercentage)
		assert.Equal(t, 468.0, cfg.Defaults.ArrivalRate)
	})

	t.Run("ExplicitZeroValidated", func(t *testing.T) {
		path := writeModel(t, "operation:\n  max_wait_time: 0\n")
		_, err := config.LoadModel(path)
		assert.ErrorIs(t, err, errors.ErrInvalidParameter)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeModel(t, "assumptions: [unclosed\n")
		_, err := config.LoadModel(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadModel(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
