package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adperf/db/migrations"
)

// Migrate applies all up migrations of the Postgres settings store to the
// database at addr.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	return apply(mg)
}

// MigrateSQLite applies all up migrations of the SQLite settings store to db.
// db stays open.
func MigrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, migrations.SQLiteDir)
	if err != nil {
		return err
	}
	defer src.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	return apply(mg)
}

func apply(mg *migrate.Migrate) error {
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
