package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Generator GeneratorConfig
	Logger    LoggerConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DataConfig locates the dataset files and the rendered artifacts.
type DataConfig struct {
	Dir          string
	ProductsFile string
	SalesFile    string
	HTMLFile     string
	PNGFile      string
	GeoJSONURL   string
	GeoCacheDir  string
}

// GeneratorConfig parameterizes synthetic dataset generation.
type GeneratorConfig struct {
	Products     int
	Year         int
	Months       int
	States       int
	MaxSalesRows int
	Seed         int64
}

type LoggerConfig struct {
	Level  string
	Format string
}

type SecurityConfig struct {
	EnableRateLimit bool
	RateLimitRPS    int
	RateLimitBurst  int
	AllowedOrigins  []string
	TrustedProxies  []string
}

const defaultGeoJSONURL = "https://raw.githubusercontent.com/PublicaMundi/MappingAPI/master/data/geojson/us-states.json"

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnvString("SERVER_HOST", "localhost"),
			Port:            getEnvInt("SERVER_PORT", 8084),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Data: DataConfig{
			Dir:          getEnvString("DATA_DIR", "data"),
			ProductsFile: getEnvString("PRODUCTS_CSV", "products.csv"),
			SalesFile:    getEnvString("SALES_CSV", "sales_summary.csv"),
			HTMLFile:     getEnvString("DASHBOARD_HTML", "executive_sales_summary.html"),
			PNGFile:      getEnvString("MONTHLY_PNG", "monthly_sales.png"),
			GeoJSONURL:   getEnvString("GEOJSON_URL", defaultGeoJSONURL),
			GeoCacheDir:  getEnvString("GEO_CACHE_DIR", ".cache"),
		},
		Generator: GeneratorConfig{
			Products:     getEnvInt("GEN_PRODUCTS", 150),
			Year:         getEnvInt("GEN_YEAR", 2023),
			Months:       getEnvInt("GEN_MONTHS", 12),
			States:       getEnvInt("GEN_STATES", 20),
			MaxSalesRows: getEnvInt("GEN_MAX_SALES_ROWS", 100),
			Seed:         int64(getEnvInt("GEN_SEED", 42)),
		},
		Logger: LoggerConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "json"),
		},
		Security: SecurityConfig{
			EnableRateLimit: getEnvBool("SECURITY_RATE_LIMIT_ENABLED", true),
			RateLimitRPS:    getEnvInt("SECURITY_RATE_LIMIT_RPS", 100),
			RateLimitBurst:  getEnvInt("SECURITY_RATE_LIMIT_BURST", 10),
			AllowedOrigins:  getEnvStringSlice("SECURITY_ALLOWED_ORIGINS", []string{"http://localhost:8084"}),
			TrustedProxies:  getEnvStringSlice("SECURITY_TRUSTED_PROXIES", []string{"127.0.0.1"}),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// fileConfig mirrors Config for the optional YAML overlay; pointer
// fields distinguish "unset" from zero values.
type fileConfig struct {
	Data struct {
		Dir          *string `yaml:"dir"`
		ProductsFile *string `yaml:"products_file"`
		SalesFile    *string `yaml:"sales_file"`
		HTMLFile     *string `yaml:"html_file"`
		PNGFile      *string `yaml:"png_file"`
		GeoJSONURL   *string `yaml:"geojson_url"`
		GeoCacheDir  *string `yaml:"geo_cache_dir"`
	} `yaml:"data"`
	Generator struct {
		Products     *int   `yaml:"products"`
		Year         *int   `yaml:"year"`
		Months       *int   `yaml:"months"`
		States       *int   `yaml:"states"`
		MaxSalesRows *int   `yaml:"max_sales_rows"`
		Seed         *int64 `yaml:"seed"`
	} `yaml:"generator"`
	Server struct {
		Host *string `yaml:"host"`
		Port *int    `yaml:"port"`
	} `yaml:"server"`
	Logger struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"logger"`
}

// ApplyFile overlays settings from a YAML file on top of the
// environment-derived configuration.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&c.Data.Dir, fc.Data.Dir)
	setString(&c.Data.ProductsFile, fc.Data.ProductsFile)
	setString(&c.Data.SalesFile, fc.Data.SalesFile)
	setString(&c.Data.HTMLFile, fc.Data.HTMLFile)
	setString(&c.Data.PNGFile, fc.Data.PNGFile)
	setString(&c.Data.GeoJSONURL, fc.Data.GeoJSONURL)
	setString(&c.Data.GeoCacheDir, fc.Data.GeoCacheDir)

	setInt(&c.Generator.Products, fc.Generator.Products)
	setInt(&c.Generator.Year, fc.Generator.Year)
	setInt(&c.Generator.Months, fc.Generator.Months)
	setInt(&c.Generator.States, fc.Generator.States)
	setInt(&c.Generator.MaxSalesRows, fc.Generator.MaxSalesRows)
	if fc.Generator.Seed != nil {
		c.Generator.Seed = *fc.Generator.Seed
	}

	setString(&c.Server.Host, fc.Server.Host)
	setInt(&c.Server.Port, fc.Server.Port)
	setString(&c.Logger.Level, fc.Logger.Level)
	setString(&c.Logger.Format, fc.Logger.Format)

	return c.validate()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Data.ProductsFile == "" || c.Data.SalesFile == "" {
		return fmt.Errorf("dataset file names cannot be empty")
	}

	if c.Generator.Products <= 0 {
		return fmt.Errorf("generator product count must be positive, got %d", c.Generator.Products)
	}

	if c.Generator.Months < 1 || c.Generator.Months > 12 {
		return fmt.Errorf("generator months must be between 1 and 12, got %d", c.Generator.Months)
	}

	if c.Generator.States < 1 || c.Generator.States > 50 {
		return fmt.Errorf("generator state sample must be between 1 and 50, got %d", c.Generator.States)
	}

	if c.Generator.MaxSalesRows <= 0 {
		return fmt.Errorf("generator max sales rows must be positive, got %d", c.Generator.MaxSalesRows)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.Logger.Level) {
		return fmt.Errorf("invalid log level %q, must be one of: %s", c.Logger.Level, strings.Join(validLogLevels, ", "))
	}

	validLogFormats := []string{"json", "text"}
	if !contains(validLogFormats, c.Logger.Format) {
		return fmt.Errorf("invalid log format %q, must be one of: %s", c.Logger.Format, strings.Join(validLogFormats, ", "))
	}

	if c.Security.RateLimitRPS <= 0 || c.Security.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit RPS and burst must be positive")
	}

	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ProductsPath returns the full path of products.csv.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.ProductsFile)
}

// SalesPath returns the full path of sales_summary.csv.
func (c *Config) SalesPath() string {
	return filepath.Join(c.Data.Dir, c.Data.SalesFile)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
