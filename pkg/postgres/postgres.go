package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/parade_tracking_system/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL и проверяет его ping-ом
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout(appCfg))
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

// poolConfig разбирает DATABASE_URL и применяет лимиты пула
func poolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = int32(appCfg.DBMaxConns)
	}
	cfgPool.HealthCheckPeriod = 30 * time.Second
	return cfgPool, nil
}

func connectTimeout(appCfg *config.Config) time.Duration {
	if appCfg.ConnectTimeout > 0 {
		return appCfg.ConnectTimeout
	}
	return 5 * time.Second
}
