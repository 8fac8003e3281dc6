package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // sqlite migrate driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// migration source
)

// RunMigrations applies all pending schema migrations from migrationsDir to
// the sqlite database at dbPath. An already up-to-date schema is not an error.
func RunMigrations(migrationsDir, dbPath string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsDir),
		fmt.Sprintf("sqlite://%s", dbPath),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
