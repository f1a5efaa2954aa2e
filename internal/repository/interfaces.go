package repository

import (
	"context"
	"errors"

	"github.com/alexmarten/strive/internal/domain"
)

// ErrNotFound is returned when a key or goal does not exist.
var ErrNotFound = errors.New("not found")

// Well-known blob keys. The goal collection and the snapshot history are
// each stored as a single JSON text blob; the remaining keys hold plain
// string values.
const (
	KeyGoals      = "goals"
	KeyHistory    = "history"
	KeyTheme      = "theme"
	KeyHasVisited = "has_visited"
	KeySession    = "session"
)

// BlobRepo is a synchronous key-value store for opaque text blobs.
type BlobRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CollectionRepo persists the goal collection and the per-goal snapshot
// history. Load of an absent key returns empty state, not an error;
// a malformed blob returns an error the caller degrades to a warning.
type CollectionRepo interface {
	LoadGoals(ctx context.Context) ([]domain.Goal, error)
	SaveGoals(ctx context.Context, goals []domain.Goal) error
	LoadHistory(ctx context.Context) (map[string][]domain.ProgressSnapshot, error)
	SaveHistory(ctx context.Context, history map[string][]domain.ProgressSnapshot) error
}

// SettingsRepo persists the small per-user settings.
type SettingsRepo interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	HasVisited(ctx context.Context) (bool, error)
	MarkVisited(ctx context.Context) error
	SessionToken(ctx context.Context) (string, error)
	SetSessionToken(ctx context.Context, token string) error
	ClearSessionToken(ctx context.Context) error
}
