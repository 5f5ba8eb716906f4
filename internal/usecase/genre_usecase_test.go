package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/pkg/errors"
)

func TestGetGenre(t *testing.T) {
	uc := NewGenreUseCase(fixtureRepo(t))
	ctx := context.Background()

	genre, err := uc.GetGenre(ctx, "Action")
	require.NoError(t, err)
	assert.Equal(t, "Action", genre.Name)

	_, err = uc.GetGenre(ctx, "Strategy")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestGetGenres(t *testing.T) {
	uc := NewGenreUseCase(fixtureRepo(t))

	genres, err := uc.GetGenres(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	assert.Equal(t, []string{"Action", "Adventure", "Racing"}, names)
}

func TestGetGamesForGenrePrefix(t *testing.T) {
	uc := NewGenreUseCase(fixtureRepo(t))
	ctx := context.Background()

	games, err := uc.GetGamesForGenre(ctx, "adv")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Bartlow's Dread Machine", "MagicShop3D"}, titles(games))

	count, err := uc.GetNumberOfGamesForGenre(ctx, "adv")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	none, err := uc.GetGamesForGenre(ctx, "strategy")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPaginatedGenreGames(t *testing.T) {
	uc := NewGenreUseCase(fixtureRepo(t))

	page, pagination, err := uc.GetPaginatedGenreGames(context.Background(), "action", "1", 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 2, pagination.NumPages)
}
