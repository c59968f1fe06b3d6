package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"drones/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const (
	defaultHTTPPort      = "8080"
	defaultAuditInterval = time.Minute
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	DatabaseURL           string
	AuditInterval         time.Duration
	AuditBatteryThreshold int
	LoadMinBattery        int
	LogLevel              slog.Level
}

// LoadConfig reads .env when present and then the process environment, which
// takes precedence. All invalid values are reported together.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := Config{
		HTTPPort:    getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "drones"),
		DBSslMode:   getEnv("DB_SSLMODE", "disable"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var intervalErr, thresholdErr, minBatteryErr, levelErr error
	config.AuditInterval, intervalErr = getDuration("AUDIT_INTERVAL", defaultAuditInterval)
	config.AuditBatteryThreshold, thresholdErr = getPercent("AUDIT_BATTERY_THRESHOLD", services.LowBatteryAlertThreshold)
	config.LoadMinBattery, minBatteryErr = getPercent("LOAD_MIN_BATTERY", services.MinLoadingBattery)
	levelErr = config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO")))
	if levelErr != nil {
		levelErr = fmt.Errorf("LOG_LEVEL: %w", levelErr)
	}

	if err := errors.Join(intervalErr, thresholdErr, minBatteryErr, levelErr); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN returns the PostgreSQL connection string. DATABASE_URL wins over the
// DB_* variables and is converted to key/value form.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}

func getPercent(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < 1 || v > 100 {
		return 0, fmt.Errorf("%s: must be within 1..100, got %d", key, v)
	}
	return v, nil
}
