package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkarpov/picshare/internal/dbx"
	"github.com/dkarpov/picshare/internal/logging"
)

// Open opens (creating if necessary) the local sqlite database holding
// session state.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
		  key   TEXT PRIMARY KEY,
		  value TEXT NOT NULL
		)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	return db, nil
}

// SQLiteStore keeps the session slot in a two-column key/value table.
type SQLiteStore struct {
	db  dbx.DBTX
	log logging.Logger
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db dbx.DBTX, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

func (s *SQLiteStore) get(ctx context.Context, key string) string {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		s.log.Error(ctx, "reading session value", "key", key, "err", err)
		return ""
	}
	return v
}

func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) string {
	return s.get(ctx, tokenKey)
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, token)
}

// Clear drops the token. The remembered username survives; it exists only
// to prefill the login prompt.
func (s *SQLiteStore) Clear(ctx context.Context) {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, tokenKey)
	if err != nil {
		s.log.Error(ctx, "clearing session token", "err", err)
	}
}

func (s *SQLiteStore) LastUsername(ctx context.Context) string {
	return s.get(ctx, usernameKey)
}

func (s *SQLiteStore) SetLastUsername(ctx context.Context, username string) error {
	return s.set(ctx, usernameKey, username)
}
