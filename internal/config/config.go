package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	AdminAPIToken string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	Paystack PaystackConfig
	Sync     SyncConfig
}

// PaystackConfig carries the gateway API credentials and tuning.
type PaystackConfig struct {
	BaseURL        string
	SecretKey      string
	PageSize       int
	RequestTimeout time.Duration
}

// SyncConfig controls the reconciliation engine and its scheduled trigger.
type SyncConfig struct {
	// Strict disables the fallback-to-first-vendor and foreign-product
	// heuristics: unresolvable records are skipped and flagged in the
	// report instead of guessed.
	Strict bool

	Interval   time.Duration
	RunTimeout time.Duration
	Scheduled  bool
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:       getenv("APP_SERVICE", "campusmart"),
		AppVersion:    getenv("APP_VERSION", "0.1.0"),
		Environment:   getenv("ENVIRONMENT", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		AdminAPIToken: strings.TrimSpace(getenv("ADMIN_API_TOKEN", "")),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "campusmart"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 1800),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 300),

		Paystack: PaystackConfig{
			BaseURL:        getenv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			SecretKey:      strings.TrimSpace(getenv("PAYSTACK_SECRET_KEY", "")),
			PageSize:       getenvInt("PAYSTACK_PAGE_SIZE", 200),
			RequestTimeout: getenvDuration("PAYSTACK_REQUEST_TIMEOUT", 15*time.Second),
		},
		Sync: SyncConfig{
			Strict:     getenvBool("SYNC_STRICT", false),
			Interval:   getenvDuration("SYNC_INTERVAL", 15*time.Minute),
			RunTimeout: getenvDuration("SYNC_RUN_TIMEOUT", 5*time.Minute),
			Scheduled:  getenvBool("SYNC_SCHEDULED", true),
		},
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
