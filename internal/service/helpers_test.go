package service

import (
	"testing"

	"github.com/alexmarten/strive/internal/repository"
	"github.com/alexmarten/strive/internal/testutil"
)

// setupRepos wires blob-backed repositories over an in-memory database.
func setupRepos(t *testing.T) (*repository.BlobCollectionRepo, *repository.BlobSettingsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	blobs := repository.NewSQLiteBlobRepo(database)
	return repository.NewBlobCollectionRepo(blobs), repository.NewBlobSettingsRepo(blobs)
}
