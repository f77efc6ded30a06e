package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var dsn, migrationsPath string

	flag.StringVar(&dsn, "dsn", os.Getenv("DATABASE_URL"), "database connection string")
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migrations")
	flag.Parse()

	if dsn == "" {
		fmt.Fprintln(os.Stderr, "dsn is required")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "migrate init failed:", err)
		os.Exit(1)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		fmt.Fprintln(os.Stderr, "migrate up failed:", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied")
}
