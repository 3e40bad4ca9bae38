package repo

import (
	"Inventory/internal/model"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const summaryQuery = `SELECT
    COUNT(*) AS item_count,
    COALESCE(SUM(quantity), 0) AS total_quantity,
    COALESCE(SUM(price * quantity), 0) AS total_value
FROM item`

// StatsRepository — отчётные запросы к БД мимо ORM.
type StatsRepository interface {
	// Summary считает агрегаты по всем позициям.
	Summary(ctx context.Context) (model.InventorySummary, error)

	// Ping проверяет, что соединение с БД живо.
	Ping(ctx context.Context) error
}

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepository оборачивает пул gorm в sqlx; соединения общие, закрывает их repo.Close.
func NewStatsRepository(db *gorm.DB) (StatsRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	driver := sqliteDriverName
	if db.Dialector.Name() == "postgres" {
		driver = "pgx"
	}
	return &statsRepo{db: sqlx.NewDb(sqlDB, driver)}, nil
}

func (r *statsRepo) Summary(ctx context.Context) (model.InventorySummary, error) {
	var s model.InventorySummary
	if err := r.db.GetContext(ctx, &s, summaryQuery); err != nil {
		return model.InventorySummary{}, err
	}
	return s, nil
}

func (r *statsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
