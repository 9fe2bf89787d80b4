package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`       // 顧客画面のポート
	AdminPort string `env:"ADMIN_PORT" envDefault:"8081"` // 管理画面のポート
	GoEnv     string `env:"GO_ENV" envDefault:"dev"`      // dev/prod

	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"` // mongo/postgres/sqlite

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/"`
	MongoDB  string `env:"MONGO_DB" envDefault:"gasvision_db"`

	DatabaseURL      string `env:"DATABASE_URL"` // あればPOSTGRES_*より優先
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"gasvision"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"gasvision.db"`

	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"memory"` // memory/redis
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// 注文を保存先にも書くか（管理画面から見えるようにする）
	WriteThrough bool `env:"WRITE_THROUGH" envDefault:"true"`

	ExportDir string `env:"EXPORT_DIR" envDefault:"."`
}

// Loadは環境変数から読む。.envの読み込みは呼び出し側でやる。
func Load() (Config, error) {
	return parse(env.Options{})
}

// テスト用に環境を差し替えて読む
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	//必須チェック
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.AdminPort == "" {
		return fmt.Errorf("ADMIN_PORT is required")
	}

	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.MongoDB == "" {
			return fmt.Errorf("MONGO_DB is required")
		}
	case StorePostgres:
		if c.DatabaseURL == "" && c.PostgresHost == "" {
			return fmt.Errorf("DATABASE_URL or POSTGRES_HOST is required")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of mongo, postgres, sqlite: %q", c.StoreDriver)
	}

	switch c.SessionBackend {
	case SessionMemory:
	case SessionRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return fmt.Errorf("SESSION_BACKEND must be memory or redis: %q", c.SessionBackend)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func (c Config) IsDev() bool {
	return c.GoEnv == "" || c.GoEnv == "dev"
}

// PostgresDSN はDATABASE_URLを優先して接続文字列を返す。
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}
