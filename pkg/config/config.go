package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix shared by every kiosk service.
const EnvPrefix = "CAFEKIOSK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, errors).
const (
	EnvAppEnv   = "CAFEKIOSK_APP_ENV"
	EnvPort     = "CAFEKIOSK_APP_PORT"
	EnvDBDSN    = "CAFEKIOSK_DB_DSN"
	EnvDBHost   = "CAFEKIOSK_DB_HOST"
	EnvDBUser   = "CAFEKIOSK_DB_USER"
	EnvDBName   = "CAFEKIOSK_DB_NAME"
	EnvRedisURL = "CAFEKIOSK_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	Orders       OrdersConfig
	Mail         MailConfig
	Cron         CronConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAFEKIOSK_APP_ENV" required:"true"`
	Port         string `envconfig:"CAFEKIOSK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CAFEKIOSK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAFEKIOSK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"CAFEKIOSK_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"CAFEKIOSK_DB_DSN"`
	Driver string `envconfig:"CAFEKIOSK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAFEKIOSK_DB_HOST"`
	LegacyPort     int    `envconfig:"CAFEKIOSK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAFEKIOSK_DB_USER"`
	LegacyPassword string `envconfig:"CAFEKIOSK_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAFEKIOSK_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAFEKIOSK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAFEKIOSK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAFEKIOSK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAFEKIOSK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAFEKIOSK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CAFEKIOSK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CAFEKIOSK_REDIS_ADDR"`
	Password     string        `envconfig:"CAFEKIOSK_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAFEKIOSK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAFEKIOSK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAFEKIOSK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAFEKIOSK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAFEKIOSK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAFEKIOSK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// OrdersConfig tunes the order intake surface.
//
// StrictProductLookup controls what happens when a requested product number is
// not in the catalog: true rejects the whole order with a not-found error,
// false silently drops the unknown number from the order.
type OrdersConfig struct {
	StrictProductLookup bool          `envconfig:"CAFEKIOSK_ORDERS_STRICT_PRODUCT_LOOKUP" default:"true"`
	RateLimitWindow     time.Duration `envconfig:"CAFEKIOSK_ORDERS_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitPerIP      int           `envconfig:"CAFEKIOSK_ORDERS_RATE_LIMIT_IP_LIMIT" default:"30"`
}

type MailConfig struct {
	FromEmail           string `envconfig:"CAFEKIOSK_MAIL_FROM_EMAIL" default:"no-reply@cafekiosk.local"`
	StatisticsRecipient string `envconfig:"CAFEKIOSK_MAIL_STATISTICS_RECIPIENT"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"CAFEKIOSK_CRON_INTERVAL" default:"24h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CAFEKIOSK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
