package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/pkg/database"
)

// Управление встроенными миграциями PostgreSQL:
//
//	migrate -cmd up
//	migrate -cmd down
//	migrate -cmd force -version 1   (снимает dirty-состояние после неудачной миграции)
//	migrate -cmd version
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
	command := flag.String("cmd", "up", "up | down | force | version")
	version := flag.Int("version", -1, "target version for force")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("migrate CLI works with postgres only, configured driver: %s", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	src, err := database.MigrationSource(database.DriverPostgres)
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "force":
		if *version < 0 {
			log.Fatal("force requires -version")
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", *version)
		err = m.Force(*version)
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal(verr)
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)
		return
	default:
		log.Fatalf("unknown command %q", *command)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration %s failed: %v", *command, err)
	}
	fmt.Printf("Migration %s: success\n", *command)
}
