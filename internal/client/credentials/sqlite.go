package credentials

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const tokenKey = "token"

// SQLiteStore keeps the token in a single-row key/value table so the file
// survives process restarts and is visible to every command in the process.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the credentials database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening credentials db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return nil, fmt.Errorf("migrating credentials db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load credential: %w", err)
	}
	return value, value != "", nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// Token satisfies the transport layer's TokenSource. Storage errors are
// swallowed: a request sent without a header just comes back 401 and the
// caller handles it through the normal path.
func (s *SQLiteStore) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.Load(ctx)
	if err != nil {
		return "", false
	}
	return token, ok
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
