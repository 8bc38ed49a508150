package config

import (
	"call-staffing/models"
	"call-staffing/staffing"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration of the estimator.
type Config struct {
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	PushURL        string
	AllowedOrigins []string
	ModelFile      string
	Locale         string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPAddr:       getEnv("HTTP_ADDR", ""),
		MetricsAddr:    getEnv("METRICS_ADDR", ""),
		PushURL:        getEnv("PUSH_URL", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:8501"), ","),
		ModelFile:      getEnv("MODEL_FILE", ""),
		Locale:         getEnv("LOCALE", "pt-BR"),
	}

	// Trim spaces from allowed origins
	for i, origin := range config.AllowedOrigins {
		config.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ModelConfig is the resolved model setup: the assumptions behind the
// formulas and the parameters fixed by the operation.
type ModelConfig struct {
	Assumptions staffing.Assumptions
	Defaults    models.StaffingParameters
}

// modelFile mirrors the YAML schema of a model file.
// Absent keys leave the built-in default in place; an explicit zero is kept.
type modelFile struct {
	Assumptions struct {
		ExceedThresholdFraction      *float64 `yaml:"exceed_threshold_fraction"`
		AnsweredWithinTargetFraction *float64 `yaml:"answered_within_target_fraction"`
		ServiceLevelTarget           *float64 `yaml:"service_level_target"`
	} `yaml:"assumptions"`
	Operation struct {
		MaxWaitTime    *float64 `yaml:"max_wait_time"`
		PatienceTime   *float64 `yaml:"patience_time"`
		ProductiveTime *float64 `yaml:"productive_time"`
	} `yaml:"operation"`
	Defaults struct {
		ArrivalRate              *float64 `yaml:"arrival_rate"`
		ServiceTime              *float64 `yaml:"service_time"`
		AbandonmentRate          *float64 `yaml:"abandonment_rate"`
		UnavailabilityPercentage *float64 `yaml:"unavailability_percentage"`
	} `yaml:"defaults"`
}

// LoadModel resolves the model configuration in priority order:
// built-in defaults -> file. An empty path returns the defaults.
func LoadModel(path string) (ModelConfig, error) {
	cfg := ModelConfig{
		Assumptions: staffing.DefaultAssumptions(),
		Defaults:    staffing.DefaultParameters(),
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ModelConfig{}, fmt.Errorf("read model file: %w", err)
	}

	var file modelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return ModelConfig{}, fmt.Errorf("parse model file %s: %w", path, err)
	}

	a := &cfg.Assumptions
	override(&a.ExceedThresholdFraction, file.Assumptions.ExceedThresholdFraction)
	override(&a.AnsweredWithinTargetFraction, file.Assumptions.AnsweredWithinTargetFraction)
	override(&a.ServiceLevelTarget, file.Assumptions.ServiceLevelTarget)

	d := &cfg.Defaults
	override(&d.MaxWaitTime, file.Operation.MaxWaitTime)
	override(&d.PatienceTime, file.Operation.PatienceTime)
	override(&d.ProductiveTime, file.Operation.ProductiveTime)
	override(&d.ArrivalRate, file.Defaults.ArrivalRate)
	override(&d.ServiceTime, file.Defaults.ServiceTime)
	override(&d.AbandonmentRate, file.Defaults.AbandonmentRate)
	override(&d.UnavailabilityPercentage, file.Defaults.UnavailabilityPercentage)

	if err := cfg.Assumptions.Validate(); err != nil {
		return ModelConfig{}, fmt.Errorf("model file %s: %w", path, err)
	}
	if err := staffing.Validate(cfg.Defaults); err != nil {
		return ModelConfig{}, fmt.Errorf("model file %s: %w", path, err)
	}

	return cfg, nil
}

func override(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
