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
	JWTSecret string `env:"JWT_SECRET"`
	// JWTExpirationMS is the token lifetime in milliseconds (default 24h).
	JWTExpirationMS int64 `env:"JWT_EXPIRATION_MS, default=86400000"`

	// FrontendBaseURL is the web-app origin embedded in patient QR codes.
	FrontendBaseURL string `env:"FRONTEND_BASE_URL, default=http://localhost:4200"`

	CORS     CORSConfig
	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS, default=*"`
	Methods []string `env:"CORS_METHODS, default=GET,POST,PUT,DELETE,OPTIONS"`
	Headers []string `env:"CORS_HEADERS, default=Authorization,Content-Type"`
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL, default=postgres://localhost:5432/clinica"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
	MinConns int32  `env:"DB_MIN_CONNS, default=2"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinica"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@clinica.local"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}

// TokenTTL converts the configured millisecond lifetime into a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationMS) * time.Millisecond
}
