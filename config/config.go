package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port        string
	BindAddress string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int

	// RedisAddr enables join code reservation when set.
	RedisAddr     string
	RedisPassword string

	BcryptCost     int
	LogLevel       string
	LogPretty      bool
	GinMode        string
	MigrateOnStart bool
	CORSOrigins    []string
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func Load() *Config {
	return &Config{
		Port:                     getEnv("PORT", "8080"),
		BindAddress:              getEnv("BIND_ADDRESS", ""),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", "5432"),
		DBUser:                   getEnv("DB_USER", "quizhub"),
		DBPassword:               getEnv("DB_PASSWORD", "quizhub"),
		DBName:                   getEnv("DB_NAME", "quizhub"),
		DBSSLMode:                getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:           getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:           getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetimeSeconds: getEnvInt("DB_CONN_MAX_LIFETIME_SECONDS", 300),
		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		BcryptCost:               getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogPretty:                getEnvBool("LOG_PRETTY", false),
		GinMode:                  getEnv("GIN_MODE", "release"),
		MigrateOnStart:           getEnvBool("MIGRATE_ON_START", true),
		CORSOrigins:              splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from the
// individual DB_* settings. The URL form is understood by both gorm and
// golang-migrate.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if raw := os.Getenv(key); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			return value
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			return value
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)

	return db, nil
}

// InitRedis returns nil when no redis address is configured.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
}
