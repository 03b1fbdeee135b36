package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	migrateDatabase "github.com/golang-migrate/migrate/v4/database"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migrateSQLite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/config"
)

// Поддерживаемые драйверы базы данных
const (
	DriverPostgres = config.DriverPostgres
	DriverSQLite   = config.DriverSQLite
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationSource возвращает встроенные миграции для указанного драйвера
func MigrationSource(driver string) (source.Driver, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return iofs.New(migrationsFS, "migrations/"+driver)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// MigrateDB применяет встроенные SQL-миграции (схема + начальные данные)
func MigrateDB(db *gorm.DB, driver string) error {
	log.Printf("[Migrate] Запуск применения миграций базы данных (%s)...", driver)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("не удалось получить *sql.DB из *gorm.DB: %w", err)
	}

	// Убедимся, что подключение к БД активно
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("не удалось проверить подключение к БД перед миграцией: %w", err)
	}

	var dbDriver migrateDatabase.Driver
	switch driver {
	case DriverPostgres:
		dbDriver, err = migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{})
	case DriverSQLite:
		dbDriver, err = migrateSQLite.WithInstance(sqlDB, &migrateSQLite.Config{})
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return fmt.Errorf("не удалось создать драйвер %s для migrate: %w", driver, err)
	}

	src, err := MigrationSource(driver)
	if err != nil {
		return fmt.Errorf("не удалось открыть встроенные миграции: %w", err)
	}

	// m.Close() не вызываем: он закрыл бы общий *sql.DB
	m, err := migrateV4.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrateV4.ErrNoChange):
		log.Println("[Migrate] Изменений в миграциях не найдено, база данных уже актуальна.")
	case err != nil:
		log.Printf("[Migrate] Ошибка применения миграций: %v", err)
		return fmt.Errorf("ошибка применения миграций 'up': %w", err)
	default:
		log.Println("[Migrate] Миграции успешно применены.")
	}

	return nil
}
