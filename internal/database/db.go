// Package database opens the relational store behind the durable account and
// feedback tables. Postgres (lib/pq) and SQLite (modernc) share one schema.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect selects driver-specific SQL.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DB represents the database connection
type DB struct {
	conn    *sqlx.DB
	dialect Dialect
}

// OpenSQLite opens (creating if needed) a SQLite file and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite doesn't support multiple writers
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	return open(ctx, conn, SQLite)
}

// OpenPostgres connects to Postgres using a lib/pq connection string.
func OpenPostgres(ctx context.Context, uri string) (*DB, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("database uri is required")
	}
	conn, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	return open(ctx, conn, Postgres)
}

func open(ctx context.Context, conn *sql.DB, dialect Dialect) (*DB, error) {
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}
	db := &DB{conn: sqlx.NewDb(conn, string(dialect)), dialect: dialect}
	if err := db.CreateTables(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return db, nil
}

// CreateTables creates the users and feedback tables when absent.
func (db *DB) CreateTables(ctx context.Context) error {
	idColumn := "id SERIAL PRIMARY KEY"
	if db.dialect == SQLite {
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			` + idColumn + `,
			name TEXT NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			` + idColumn + `,
			name TEXT NOT NULL,
			email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 0,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_email ON feedback(email)`,
	}
	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// Conn returns the underlying connection (for repositories).
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// Dialect reports which driver backs the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Rebind rewrites `?` placeholders into the dialect's positional form.
func (db *DB) Rebind(query string) string {
	bindType := sqlx.QUESTION
	if db.dialect == Postgres {
		bindType = sqlx.DOLLAR
	}
	return sqlx.Rebind(bindType, query)
}

// Close closes the database connection
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// IsUniqueViolation reports whether err comes from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
	}
	return false
}
