package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/domain/repository"
)

func newMemoryRepo(t *testing.T) repository.Repository {
	t.Helper()
	return NewMemoryRepository()
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, newMemoryRepo)
}

// The in-memory backend hands back the stored entities themselves rather
// than copies, so a caller's mutations are immediately visible.
func TestMemoryRepositoryPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seedCatalog(t, repo)

	added := seedGame(42, "Identity Check", "Jan 2, 2023", "Techland", priceOf(19.99), "Action")
	require.NoError(t, repo.AddGame(ctx, added))

	got, err := repo.GetGame(ctx, 42)
	require.NoError(t, err)
	assert.Same(t, added, got)
}

// Unlike the database backend, genre lookup in memory is exact.
func TestMemoryRepositoryGenreLookupIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seedCatalog(t, repo)

	genre, err := repo.GetGenre(ctx, "Action")
	require.NoError(t, err)
	require.NotNil(t, genre)
	assert.Equal(t, "Action", genre.Name)

	missing, err := repo.GetGenre(ctx, "action")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
