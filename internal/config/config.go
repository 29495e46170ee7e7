// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverMySQL  = "mysql"
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.
type Config struct {
	Env               string        // APP_ENV: dev, test, prod
	Port              string        // APP_PORT
	DBDriver          string        // DB_DRIVER: mysql, mongo or sqlite
	DBURL             string        // DB_URL: user:pass@tcp(host:port), mongodb:// URI or SQLite file
	DBName            string        // DB_NAME, unused by sqlite
	JWTSecret         string        // JWT_SECRET_KEY
	AccessTTL         time.Duration // ACCESS_TOKEN_TTL
	AdminUsername     string        // ADMIN_USERNAME
	AdminPasswordHash string        // ADMIN_PASSWORD_HASH, bcrypt
	BcryptCost        int           // BCRYPT_COST, used by hash-password
	CORSOrigins       []string      // CORS_ORIGINS, comma separated
	RabbitMQURL       string        // RABBITMQ_URL, empty disables events
	BookingLogDir     string        // BOOKING_LOG_DIR

	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// Dev reports whether the service runs in development mode.
func (c Config) Dev() bool { return c.Env == "dev" }

// Load reads a .env file when one exists and then the process
// environment.  Missing required values are reported together.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_PORT", "8001")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("ACCESS_TOKEN_TTL", "24h")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("BOOKING_LOG_DIR", "logs")
	setRedisDefaults(v)
	setCacheDefaults(v)
	setRateLimitDefaults(v)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:               v.GetString("APP_ENV"),
		Port:              v.GetString("APP_PORT"),
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBURL:             v.GetString("DB_URL"),
		DBName:            v.GetString("DB_NAME"),
		JWTSecret:         v.GetString("JWT_SECRET_KEY"),
		AccessTTL:         v.GetDuration("ACCESS_TOKEN_TTL"),
		AdminUsername:     v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		BcryptCost:        v.GetInt("BCRYPT_COST"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		BookingLogDir:     v.GetString("BOOKING_LOG_DIR"),
		Redis:             loadRedisConfig(v),
		Cache:             loadCacheConfig(v),
		RateLimit:         loadRateLimitConfig(v),
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	switch c.DBDriver {
	case DriverMySQL, DriverMongo:
		if c.DBName == "" {
			errs = append(errs, missing("DB_NAME"))
		}
	case DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver))
	}
	if c.DBURL == "" {
		errs = append(errs, missing("DB_URL"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, missing("JWT_SECRET_KEY"))
	}
	if c.AdminUsername == "" {
		errs = append(errs, missing("ADMIN_USERNAME"))
	}
	if c.AdminPasswordHash == "" {
		errs = append(errs, missing("ADMIN_PASSWORD_HASH"))
	}
	return errors.Join(errs...)
}

func missing(key string) error { return fmt.Errorf("missing required env var: %s", key) }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WorkerConfig holds what the booking-log consumer needs.  It is loaded
// on its own so the worker runs without database or auth settings.
type WorkerConfig struct {
	Env           string
	RabbitMQURL   string
	BookingLogDir string
}

func LoadWorker() (WorkerConfig, error) {
	_ = godotenv.Load()
	v := newViper()
	w := WorkerConfig{
		Env:           v.GetString("APP_ENV"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		BookingLogDir: v.GetString("BOOKING_LOG_DIR"),
	}
	if w.RabbitMQURL == "" {
		return w, missing("RABBITMQ_URL")
	}
	return w, nil
}

// BcryptCost reads BCRYPT_COST alone, for the hash-password command.
func BcryptCost() int {
	_ = godotenv.Load()
	return newViper().GetInt("BCRYPT_COST")
}
