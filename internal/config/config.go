package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Storage StorageConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Server  ServerConfig
	Legacy  LegacyConfig
}

// StorageConfig selects and configures the storage driver.
type StorageConfig struct {
	Driver     string // "sqlite" (default) or "postgres"
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string //nolint:gosec // G117: DB connection config
	DBName     string
	SSLMode    string
	MaxConns   int
}

// RedisConfig holds the session registry connection settings. An empty Addr
// selects the in-memory registry.
type RedisConfig struct {
	Addr     string
	Password string //nolint:gosec // G117: Redis connection config
	DB       int
}

// JWTConfig holds JWT authentication settings.
type JWTConfig struct {
	Secret     string //nolint:gosec // G117: JWT signing secret config
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

// LegacyConfig holds settings for the deprecated flat-file surface.
type LegacyConfig struct {
	Enabled bool
	DataDir string
}

// Load reads configuration from environment variables.
// Defaults are safe for local development only. In production,
// sensitive values (JWT secret, DB password) must be set explicitly.
func Load() (*Config, error) {
	dbPort, err := getEnvInt("RENTFOLIO_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	dbMaxConns, err := getEnvInt("RENTFOLIO_DB_MAX_CONNS", 25)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	redisDB, err := getEnvInt("RENTFOLIO_REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	accessTTL, err := getEnvDuration("RENTFOLIO_JWT_ACCESS_TTL", 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	refreshTTL, err := getEnvDuration("RENTFOLIO_JWT_REFRESH_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	readTimeout, err := getEnvDuration("RENTFOLIO_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("RENTFOLIO_SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	legacyEnabled, err := getEnvBool("RENTFOLIO_LEGACY_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	corsOrigins := getEnvList("RENTFOLIO_CORS_ORIGINS", []string{"http://localhost:5173"})

	cfg := &Config{
		Storage: StorageConfig{
			Driver:     getEnv("RENTFOLIO_STORAGE_DRIVER", DriverSQLite),
			SQLitePath: getEnv("RENTFOLIO_SQLITE_PATH", "rentfolio.db"),
			Host:       getEnv("RENTFOLIO_DB_HOST", "localhost"),
			Port:       dbPort,
			User:       getEnv("RENTFOLIO_DB_USER", "rentfolio"),
			Password:   getEnv("RENTFOLIO_DB_PASSWORD", ""),
			DBName:     getEnv("RENTFOLIO_DB_NAME", "rentfolio_dev"),
			SSLMode:    getEnv("RENTFOLIO_DB_SSLMODE", "disable"),
			MaxConns:   dbMaxConns,
		},
		Redis: RedisConfig{
			Addr:     getEnv("RENTFOLIO_REDIS_ADDR", ""),
			Password: getEnv("RENTFOLIO_REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret:     getEnv("RENTFOLIO_JWT_SECRET", ""),
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
		Server: ServerConfig{
			Addr:         getEnv("RENTFOLIO_SERVER_ADDR", ":8080"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			CORSOrigins:  corsOrigins,
		},
		Legacy: LegacyConfig{
			Enabled: legacyEnabled,
			DataDir: getEnv("RENTFOLIO_LEGACY_DATA_DIR", "legacy-data"),
		},
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and value bounds.
func (c *Config) validate() error {
	// JWT secret is required (no insecure default).
	if c.JWT.Secret == "" {
		return errors.New("RENTFOLIO_JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("RENTFOLIO_JWT_SECRET must be at least 32 characters")
	}

	if c.Storage.Driver != DriverSQLite && c.Storage.Driver != DriverPostgres {
		return fmt.Errorf("RENTFOLIO_STORAGE_DRIVER must be %q or %q, got %q",
			DriverSQLite, DriverPostgres, c.Storage.Driver)
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.SQLitePath == "" {
		return errors.New("RENTFOLIO_SQLITE_PATH is required for the sqlite driver")
	}

	// Bounds checks.
	if c.Storage.Port < 1 || c.Storage.Port > 65535 {
		return fmt.Errorf("RENTFOLIO_DB_PORT must be 1-65535, got %d", c.Storage.Port)
	}
	if c.Storage.MaxConns < 1 {
		return fmt.Errorf("RENTFOLIO_DB_MAX_CONNS must be >= 1, got %d", c.Storage.MaxConns)
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("RENTFOLIO_JWT_ACCESS_TTL must be positive, got %s", c.JWT.AccessTTL)
	}
	if c.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("RENTFOLIO_JWT_REFRESH_TTL must be positive, got %s", c.JWT.RefreshTTL)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("RENTFOLIO_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("RENTFOLIO_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}

	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *StorageConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s=%q as bool: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
