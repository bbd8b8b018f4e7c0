package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr               string
	Environment        string
	LogLevel           string
	LogFormat          string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	SessionTTL         time.Duration
	SessionSweep       time.Duration
	ShutdownTimeout    time.Duration
	MetricsEnabled     bool
}

// Load reads configuration from an optional .env file, an optional config
// file and the environment, in increasing order of precedence. An empty
// path searches ./config.yaml and ./configs/config.yaml.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Addr:               v.GetString("addr"),
		Environment:        v.GetString("environment"),
		LogLevel:           strings.ToLower(v.GetString("log.level")),
		LogFormat:          strings.ToLower(v.GetString("log.format")),
		MaxBodyBytes:       v.GetInt64("http.max_body_bytes"),
		RateLimitPerMinute: v.GetInt("http.rate_limit_per_minute"),
		SessionTTL:         v.GetDuration("session.ttl"),
		SessionSweep:       v.GetDuration("session.sweep_interval"),
		ShutdownTimeout:    v.GetDuration("http.shutdown_timeout"),
		MetricsEnabled:     v.GetBool("metrics.enabled"),
	}
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("http.max_body_bytes", 1048576)
	v.SetDefault("http.rate_limit_per_minute", 120)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.sweep_interval", 5*time.Minute)
	v.SetDefault("metrics.enabled", true)
}

func bindEnv(v *viper.Viper) {
	envs := map[string]string{
		"addr":                       "APP_ADDR",
		"environment":                "APP_ENV",
		"log.level":                  "LOG_LEVEL",
		"log.format":                 "LOG_FORMAT",
		"http.max_body_bytes":        "MAX_BODY_BYTES",
		"http.rate_limit_per_minute": "RATE_LIMIT_PER_MINUTE",
		"http.shutdown_timeout":      "SHUTDOWN_TIMEOUT",
		"session.ttl":                "SESSION_TTL",
		"session.sweep_interval":     "SESSION_SWEEP_INTERVAL",
		"metrics.enabled":            "METRICS_ENABLED",
	}
	for key, env := range envs {
		_ = v.BindEnv(key, env)
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}
	if c.SessionTTL > 0 && c.SessionSweep <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_TTL is set")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// ConfigFileFromEnv returns EMPLOYEEFORM_CONFIG if set.
func ConfigFileFromEnv() string {
	return os.Getenv("EMPLOYEEFORM_CONFIG")
}
