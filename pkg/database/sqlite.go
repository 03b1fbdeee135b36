package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	gormSQLite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemorySQLite - путь базы SQLite в памяти
const InMemorySQLite = ":memory:"

// sqliteDriverName - драйвер go-sqlite3 с юникодной функцией lower
const sqliteDriverName = "sqlite3_trivia"

var registerSQLiteDriver sync.Once

// sqliteDriver регистрирует драйвер, в котором LOWER() переопределен через strings.ToLower.
// Встроенный LOWER в SQLite меняет регистр только у ASCII, и поиск без учета регистра
// не находил бы текст вроде "Über".
func sqliteDriver() string {
	registerSQLiteDriver.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", strings.ToLower, true)
			},
		})
	})
	return sqliteDriverName
}

// NewSQLiteDB открывает базу SQLite с включенными внешними ключами.
// Для базы в памяти пул ограничен одним соединением: каждое новое соединение
// получило бы свою пустую базу.
func NewSQLiteDB(path string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if path == "" {
		path = InMemorySQLite
	}

	dialector := gormSQLite.New(gormSQLite.Config{
		DriverName: sqliteDriver(),
		DSN:        sqliteDSN(path),
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if path == InMemorySQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return db, nil
}

// sqliteDSN добавляет к пути параметр включения внешних ключей (нужен для ON DELETE CASCADE)
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
