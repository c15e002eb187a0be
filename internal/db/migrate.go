package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"kwai-ads/db/migrations"
)

// ErrDirtySchema is returned when a previous migration was interrupted.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version using the
// embedded SQL files. A dirty schema is reported instead of being forced.
func Migrate(addr string) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Migrate(migrations.Version)
	})
}

// Rollback reverts every applied migration. It drops the rule store and
// the execution log.
func Rollback(addr string) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

func withMigrator(addr string, fn func(*migrate.Migrate) error) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer mg.Close()

	if _, dirty, err := mg.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	} else if dirty {
		return ErrDirtySchema
	}

	if err = fn(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
