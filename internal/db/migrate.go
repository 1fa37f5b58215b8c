package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"training-courses/db/migrations"
)

const migrationsTable = "training_schema_migrations"

// Migrate brings the run journal schema to migrations.Version. It refuses
// to run on a dirty database.
func Migrate(addr string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
