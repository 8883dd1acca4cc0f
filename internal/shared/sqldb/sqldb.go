// Package sqldb wraps database/sql behind narrow interfaces so stores can be
// tested without a live MySQL server.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// RowScanner is the subset of *sql.Rows the stores need.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Config carries everything needed to reach the metrics database. Constructed
// once at process start and passed into collaborators; no ambient globals.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Bounded connect retry: ConnectAttempts pings with a fixed delay
	// between them before giving up.
	ConnectAttempts   int
	ConnectRetryDelay time.Duration
}

// DSN builds the go-sql-driver connection string. Timestamp columns are
// scanned as strings and parsed by the stores, so parseTime stays off.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", c.User, c.Password, c.Host, c.Port, c.Name)
}

// Open opens a MySQL connection pool and verifies it with a bounded number of
// pings. Transient connect failures are retried with a fixed delay; the last
// ping error surfaces when all attempts are exhausted.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingErr = db.Ping()
		if pingErr == nil {
			return db, nil
		}
		if attempt < attempts {
			time.Sleep(cfg.ConnectRetryDelay)
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to ping mysql after %d attempts: %w", attempts, pingErr)
}

type sqlRows struct {
	rows *sql.Rows
}

func (r *sqlRows) Next() bool             { return r.rows.Next() }
func (r *sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *sqlRows) Err() error             { return r.rows.Err() }
func (r *sqlRows) Close() error           { return r.rows.Close() }

type sqlDB struct {
	db *sql.DB
}

// New wraps a *sql.DB in the DB seam.
func New(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}
