package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Auth Auth `validate:"required"`

	Postgres Postgres `validate:"required"`

	Tx Tx

	Cache Cache

	Redis Redis

	Notify Notify `validate:"required"`

	SMTP SMTP

	Kafka Kafka `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Tx controls retries of transactions aborted by serialization failures or deadlocks.
type Tx struct {
	RetryAttempts int           `validate:"gte=1,lte=10"`
	RetryDelay    time.Duration `validate:"gte=0"`
}

type Cache struct {
	Driver   string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Redis struct {
	URL         string        `validate:"omitempty,url"`
	PresenceTTL time.Duration `validate:"gt=0"`
}

type Notify struct {
	Mode    string        `validate:"required,oneof=inline kafka"`
	Timeout time.Duration `validate:"gt=0"`
}

type SMTP struct {
	Host     string `validate:"omitempty,hostname|ip"`
	Port     int    `validate:"gte=0,lte=65535"`
	Username string
	Password string
	From     string `validate:"required,email"`
	FromName string
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "lens_gallery"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Tx: Tx{
			RetryAttempts: envInt("TX_RETRY_ATTEMPTS", 3),
			RetryDelay:    envDuration("TX_RETRY_DELAY", 20*time.Millisecond),
		},

		Cache: Cache{
			Driver:   env("CACHE_DRIVER", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		Redis: Redis{
			URL:         env("REDIS_URL", ""),
			PresenceTTL: envDuration("PRESENCE_TTL", 90*time.Second),
		},

		Notify: Notify{
			Mode:    env("NOTIFY_MODE", "inline"),
			Timeout: envDuration("NOTIFY_TIMEOUT", 30*time.Second),
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", ""),
			Port:     envInt("SMTP_PORT", 587),
			Username: env("SMTP_USER", ""),
			Password: env("SMTP_PASSWORD", ""),
			From:     env("SMTP_FROM", "no-reply@lens-gallery.local"),
			FromName: env("SMTP_FROM_NAME", "Lens Gallery"),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "lens-order-notifier"),
			Topic:   env("KAFKA_TOPIC", "order-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

var ErrRedisRequired = errors.New("REDIS_URL is required when CACHE_DRIVER=redis")

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Cache.Driver == "redis" && c.Redis.URL == "" {
		return ErrRedisRequired
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
