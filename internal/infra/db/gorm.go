package db

import (
	"context"
	"fmt"
	"time"

	"gasvision/internal/config"
	"gasvision/internal/domain/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenPostgres はDSN（DATABASE_URL優先）で接続して *gorm.DB を返す。
func OpenPostgres(cfg config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	return gdb, nil
}

// OpenSQLite はCGO不要のsqliteドライバで開く。":memory:" も可。
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), gormConfig())
}

// 注文・顧客テーブルを作る
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Order{}, &model.Customer{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// NewGormHandle は初回Acquireで接続＋マイグレーションする。
func NewGormHandle(cfg config.Config) *Handle[*gorm.DB] {
	return NewHandle(func(ctx context.Context) (*gorm.DB, error) {
		var (
			gdb *gorm.DB
			err error
		)
		switch cfg.StoreDriver {
		case config.StorePostgres:
			gdb, err = OpenPostgres(cfg)
		case config.StoreSQLite:
			gdb, err = OpenSQLite(cfg.SQLitePath)
		default:
			return nil, fmt.Errorf("unsupported gorm driver: %s", cfg.StoreDriver)
		}
		if err != nil {
			return nil, err
		}
		if err := Migrate(gdb.WithContext(ctx)); err != nil {
			return nil, err
		}
		return gdb, nil
	}, func(_ context.Context, gdb *gorm.DB) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
}
