package database

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	// registers the pure Go "sqlite" driver
	_ "modernc.org/sqlite"
)

//go:embed sqlite_migrations/*.sql
var sqliteMigrationFiles embed.FS

// NewSQLiteDB opens (creating when missing) the sqlite file at path and
// applies the embedded schema.
func NewSQLiteDB(path string, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// sqlite allows one writer; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	n, err := migrate.Exec(db, "sqlite3", SQLiteMigrationSource(), migrate.Up)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply sqlite migrations: %w", err)
	}

	if log != nil {
		log.Info("✅ SQLite store opened", zap.String("path", path), zap.Int("migrations_applied", n))
	}
	return db, nil
}

// SQLiteMigrationSource returns the embedded sqlite schema migrations
func SQLiteMigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: sqliteMigrationFiles,
		Root:       "sqlite_migrations",
	}
}
