package repo

import (
	"Inventory/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// sqliteDriverName — имя драйвера modernc.org/sqlite (pure Go, без CGO).
const sqliteDriverName = "sqlite"

// InitDB открывает БД по DSN и создаёт таблицу item.
// DSN PostgreSQL распознаётся по схеме postgres:// / postgresql:// или по ключу host=,
// всё остальное считается путём к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	return open(dsn, logger.Default.LogMode(logger.Warn))
}

func open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresDSN(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(gormsqlite.Dialector{DriverName: sqliteDriverName, DSN: dsn}, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if db.Dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		// SQLite — один писатель; одно соединение снимает "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.Item{}); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// Close закрывает пул соединений, открытый InitDB.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsPostgresDSN сообщает, указывает ли DSN на PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(strings.ToLower(dsn))
	return strings.HasPrefix(d, "postgres://") ||
		strings.HasPrefix(d, "postgresql://") ||
		strings.Contains(d, "host=")
}
