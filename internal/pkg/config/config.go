package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret is the base64-encoded HMAC signing key.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=24h"`

	// GoogleClientID is the OAuth client the frontend uses for Google sign-in.
	// Federated login is disabled when empty.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// CORSOrigins lists the allowed browser origins, comma separated.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:4200"`

	// NotificationWorkers sets the dispatcher worker count.
	NotificationWorkers int `env:"NOTIFICATION_WORKERS, default=4"`

	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type PostgresConfig struct {
	DSN             string        `env:"POSTGRES_DSN, default=host=localhost user=postgres password=postgres dbname=jobmaroc port=5432 sslmode=disable"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME, default=30m"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB      int           `env:"REDIS_DB,   default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@jobmaroc.local"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
