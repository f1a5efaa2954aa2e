package repository

import (
	"context"
	"errors"

	"github.com/alexmarten/strive/internal/domain"
)

// BlobSettingsRepo implements SettingsRepo on top of the blob store.
type BlobSettingsRepo struct {
	blobs BlobRepo
}

// NewBlobSettingsRepo creates a new BlobSettingsRepo.
func NewBlobSettingsRepo(blobs BlobRepo) *BlobSettingsRepo {
	return &BlobSettingsRepo{blobs: blobs}
}

func (r *BlobSettingsRepo) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := r.blobs.Get(ctx, KeyTheme)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.DefaultTheme, nil
		}
		return "", err
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		// A corrupted value falls back to the default instead of wedging
		// the settings view.
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (r *BlobSettingsRepo) SetTheme(ctx context.Context, theme domain.Theme) error {
	return r.blobs.Set(ctx, KeyTheme, string(theme))
}

func (r *BlobSettingsRepo) HasVisited(ctx context.Context) (bool, error) {
	raw, err := r.blobs.Get(ctx, KeyHasVisited)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return raw == "true", nil
}

func (r *BlobSettingsRepo) MarkVisited(ctx context.Context) error {
	return r.blobs.Set(ctx, KeyHasVisited, "true")
}

func (r *BlobSettingsRepo) SessionToken(ctx context.Context) (string, error) {
	raw, err := r.blobs.Get(ctx, KeySession)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return raw, nil
}

func (r *BlobSettingsRepo) SetSessionToken(ctx context.Context, token string) error {
	return r.blobs.Set(ctx, KeySession, token)
}

func (r *BlobSettingsRepo) ClearSessionToken(ctx context.Context) error {
	return r.blobs.Delete(ctx, KeySession)
}
