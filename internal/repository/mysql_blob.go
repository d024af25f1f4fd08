package repository

import (
	"context"
	"database/sql"
	"errors"
)

// MySQLBlobStore persists blobs in a single key-value table.  It is the
// production store driver; the schema is created on startup by
// EnsureSchema so no external migration step is needed.
type MySQLBlobStore struct {
	db *sql.DB
}

// NewMySQLBlobStore returns a store bound to the given database handle.
func NewMySQLBlobStore(db *sql.DB) *MySQLBlobStore { return &MySQLBlobStore{db: db} }

// EnsureSchema creates the blobs table when it does not exist yet.
func (s *MySQLBlobStore) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS blobs (
        name       VARCHAR(64) NOT NULL PRIMARY KEY,
        data       MEDIUMBLOB  NOT NULL,
        updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    ) CHARACTER SET utf8mb4`
	_, err := s.db.ExecContext(ctx, q)
	return err
}

// Get loads the blob stored under key.  A key that was never written
// yields (nil, nil).
func (s *MySQLBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT data FROM blobs WHERE name = ?`
	var data []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *MySQLBlobStore) Set(ctx context.Context, key string, data []byte) error {
	const q = `INSERT INTO blobs (name, data) VALUES (?, ?)
               ON DUPLICATE KEY UPDATE data = VALUES(data)`
	_, err := s.db.ExecContext(ctx, q, key, data)
	return err
}
