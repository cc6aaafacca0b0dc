package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS card_cache (
	id     TEXT PRIMARY KEY,
	record TEXT NOT NULL
)`

// SQLiteStore keeps the cache as rows of (id, raw JSON record). It is the
// same flat key-value cache as FileStore in a single-file database.
type SQLiteStore struct {
	conn *sql.DB
	Path string
}

// OpenSQLite opens (creating if needed) a cache database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	return &SQLiteStore{conn: conn, Path: path}, nil
}

// Load reads every cached row
func (s *SQLiteStore) Load(ctx context.Context) (*Cache, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT id, record FROM card_cache")
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	c := New()
	for rows.Next() {
		var id, record string
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("scanning cache row: %w", err)
		}
		c.entries[id] = json.RawMessage(record)
	}
	return c, rows.Err()
}

// Save rewrites the table in one transaction
func (s *SQLiteStore) Save(ctx context.Context, c *Cache) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM card_cache"); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO card_cache (id, record) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing cache insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range c.IDs() {
		if _, err := stmt.ExecContext(ctx, id, string(c.entries[id])); err != nil {
			return fmt.Errorf("writing cache row %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
