package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexmarten/strive/internal/db"
)

// SQLiteBlobRepo implements BlobRepo on the blobs key-value table.
type SQLiteBlobRepo struct {
	db db.DBTX
}

// NewSQLiteBlobRepo creates a new SQLiteBlobRepo.
func NewSQLiteBlobRepo(conn db.DBTX) *SQLiteBlobRepo {
	return &SQLiteBlobRepo{db: conn}
}

func (r *SQLiteBlobRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning blob %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteBlobRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO blobs (key, value, updated_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing blob %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}
	return nil
}
