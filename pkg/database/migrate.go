package database

import (
	"errors"
	"fmt"

	"freight-booking/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending up migration from migrationsPath
// (for example file://migrations). No pending migrations is not an error.
func Migrate(migrationsPath string, config utils.DatabaseConfig) error {
	m, err := migrate.New(migrationsPath, ConnString(config))
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the last applied migration.
func MigrateDown(migrationsPath string, config utils.DatabaseConfig) error {
	m, err := migrate.New(migrationsPath, ConnString(config))
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}
	return nil
}
