package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Worker      WorkerConfig
	Matchmaking MatchmakingConfig
	Purchase    PurchaseConfig
	Log         LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"token_arena"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	MigrateOnStart  bool          `env:"DB_MIGRATE_ON_START" envDefault:"false"`
}
type RedisConfig struct {
	// Empty URL disables match event fan-out.
	URL string `env:"REDIS_URL" envDefault:""`
}
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" envDefault:"change-me-in-production"`
}
type WorkerConfig struct {
	SweepInterval  time.Duration `env:"WORKER_SWEEP_INTERVAL" envDefault:"30s"`
	SweepBatchSize int           `env:"WORKER_SWEEP_BATCH_SIZE" envDefault:"100"`
	AuditInterval  time.Duration `env:"WORKER_AUDIT_INTERVAL" envDefault:"10m"`
}
type MatchmakingConfig struct {
	QueueTTL          time.Duration `env:"MATCHMAKING_QUEUE_TTL" envDefault:"5m"`
	QueueRetention    time.Duration `env:"MATCHMAKING_QUEUE_RETENTION" envDefault:"1h"`
	StaleMatchTimeout time.Duration `env:"MATCHMAKING_STALE_MATCH_TIMEOUT" envDefault:"1h"`
}
type PurchaseConfig struct {
	Denominations []int64  `env:"PURCHASE_DENOMINATIONS" envSeparator:"," envDefault:"100,500,1000"`
	Prices        []string `env:"PURCHASE_PRICES" envSeparator:"," envDefault:"0.99,4.49,8.99"`
}
type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Purchase.Prices) != len(cfg.Purchase.Denominations) {
		return nil, fmt.Errorf("purchase prices (%d) must match denominations (%d)",
			len(cfg.Purchase.Prices), len(cfg.Purchase.Denominations))
	}
	return cfg, nil
}

// DatabaseURL builds the postgres connection string shared by the pool and migrations.
func (c DatabaseConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}
