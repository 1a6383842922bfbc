package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" env-default:"competency-matrix"`
	Environment string `env:"APP_ENV" env-default:"production"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBName     string `env:"DB_NAME" env-default:"competency_matrix"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`

	ConnectTimeout      time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
	PoolMaxConns        int32         `env:"DB_POOL_MAX_CONNS" env-default:"10"`
	PoolMinConns        int32         `env:"DB_POOL_MIN_CONNS" env-default:"1"`
	PoolMaxConnLifetime time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME" env-default:"1h"`
	PoolMaxConnIdleTime time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME" env-default:"30m"`

	RunMigrations bool   `env:"RUN_MIGRATIONS" env-default:"true"`
	RunSeeders    bool   `env:"RUN_SEEDERS" env-default:"false"`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:""`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// AnalyticsConfig tunes the report layer. A zero cache TTL disables the
// report cache entirely, so every request recomputes from the entity store.
type AnalyticsConfig struct {
	CacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL" env-default:"0s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}
