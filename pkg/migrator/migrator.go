package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations runs all pending goose migrations from the embedded FS against
// dbUrl. Each bounded context records its versions in its own table so their
// numbering stays independent.
func RunMigrations(dbUrl, versionTable string, files fs.FS) error {
	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(db, versionTable, files)
}

// Up applies the migrations in files using an existing connection.
func Up(db *sql.DB, versionTable string, files fs.FS) error {
	goose.SetBaseFS(files)
	goose.SetTableName(versionTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}
