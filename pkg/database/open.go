package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-bank/internal/config"
)

// Open подключается к базе данных выбранного в конфигурации драйвера
func Open(cfg config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		log.Printf("[Database] Подключение к PostgreSQL %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
		return NewPostgresDB(cfg.PostgresConnectionString(), logLevel)
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = InMemorySQLite
		}
		log.Printf("[Database] Используется SQLite: %s", path)
		return NewSQLiteDB(path, logLevel)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// OpenAndMigrate подключается к базе и применяет встроенные миграции
func OpenAndMigrate(cfg config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := Open(cfg, logLevel)
	if err != nil {
		return nil, err
	}
	if err := MigrateDB(db, cfg.Driver); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}
