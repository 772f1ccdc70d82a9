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

	Auth    AuthConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"JWT_TTL, default=1h"`
	ClockSkew  time.Duration `env:"JWT_CLOCK_SKEW, default=2m"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type HTTPConfig struct {
	// PublicPaths are served without looking at the bearer token. Entries
	// ending in "/" match as prefixes, others exactly.
	PublicPaths []string `env:"PUBLIC_PATHS, default=/api/auth/,/swagger/,/health,/health/,/metrics"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `env:"PRODUCT_CACHE_TTL, default=5m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=facetime"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether the service runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
