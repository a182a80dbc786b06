package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "parts-inventory-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"` // postgres | sqlite
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Supplier aggregation
	SupplierConnectors     []string `mapstructure:"SUPPLIER_CONNECTORS"`
	SupplierTimeoutSec     int      `mapstructure:"SUPPLIER_TIMEOUT_SEC"`
	SupplierMaxConcurrency int      `mapstructure:"SUPPLIER_MAX_CONCURRENCY"`

	// TME configuration
	TMEBaseURL string `mapstructure:"TME_BASE_URL"`
	TMEToken   string `mapstructure:"TME_TOKEN"`
	TMESecret  string `mapstructure:"TME_SECRET"`
	TMECountry string `mapstructure:"TME_COUNTRY"`

	// Mouser configuration
	MouserBaseURL  string `mapstructure:"MOUSER_BASE_URL"`
	MouserAPIKey   string `mapstructure:"MOUSER_API_KEY"`
	MouserCurrency string `mapstructure:"MOUSER_CURRENCY"`

	// Local price list
	PriceListPath         string `mapstructure:"PRICELIST_PATH"`
	PriceListSupplierName string `mapstructure:"PRICELIST_SUPPLIER_NAME"`

	// Planning and export
	AllocationReserveAcrossProjects bool `mapstructure:"ALLOCATION_RESERVE_ACROSS_PROJECTS"`
	ExportCSVBOM                    bool `mapstructure:"EXPORT_CSV_BOM"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Environment variables arrive as a single comma separated string
	config.SupplierConnectors = splitList(config.SupplierConnectors)
	config.AllowedOrigins = splitList(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "parts_inventory")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("SQLITE_PATH", "inventory.db")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Supplier defaults
	viper.SetDefault("SUPPLIER_CONNECTORS", []string{"mock", "cheap-mock"})
	viper.SetDefault("SUPPLIER_TIMEOUT_SEC", 10)
	viper.SetDefault("SUPPLIER_MAX_CONCURRENCY", 8)

	viper.SetDefault("TME_BASE_URL", "https://api.tme.eu")
	viper.SetDefault("TME_TOKEN", "")
	viper.SetDefault("TME_SECRET", "")
	viper.SetDefault("TME_COUNTRY", "CZ")

	viper.SetDefault("MOUSER_BASE_URL", "https://api.mouser.com/api/v1")
	viper.SetDefault("MOUSER_API_KEY", "")
	viper.SetDefault("MOUSER_CURRENCY", "CZK")

	viper.SetDefault("PRICELIST_PATH", "config/pricelist.yaml")
	viper.SetDefault("PRICELIST_SUPPLIER_NAME", "PriceList")

	viper.SetDefault("ALLOCATION_RESERVE_ACROSS_PROJECTS", false)
	viper.SetDefault("EXPORT_CSV_BOM", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseURL == "" && config.DatabaseName == "" {
			return apperrors.NewConfigurationError("database name is required")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return apperrors.NewConfigurationError("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unsupported DB_DRIVER %q", config.DatabaseDriver))
	}

	if config.SupplierTimeoutSec <= 0 {
		return apperrors.NewConfigurationError("SUPPLIER_TIMEOUT_SEC must be positive")
	}
	if config.SupplierMaxConcurrency <= 0 {
		return apperrors.NewConfigurationError("SUPPLIER_MAX_CONCURRENCY must be positive")
	}

	return nil
}

// SupplierTimeout returns the per-connector call timeout
func (c *Config) SupplierTimeout() time.Duration {
	return time.Duration(c.SupplierTimeoutSec) * time.Second
}

// DSN returns the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DatabaseDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.DatabaseURL
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
