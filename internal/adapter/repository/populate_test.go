package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gamesCSVHeader = "game_id,title,release_date,price,description,c5,c6,c7,image_url,website_url,c10,c11,c12,c13,c14,c15,publisher,c17,genres"

func writeSeedFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeSeedFile(t, dir, "games.csv", gamesCSVHeader+"\n"+
		`7940,Call of Duty® 4: Modern Warfare®,"Nov 12, 2007",9.99,Classic shooter.,,,,cod.jpg,https://example.com/cod,,,,,,,Activision,,Action`+"\n"+
		`1228870,Bartlow's Dread Machine,"Sep 29, 2020",14.99,Tin-toy shooter.,,,,bartlow.jpg,https://example.com/bartlow,,,,,,,"Beep Games, Inc.",,"Action, Adventure"`+"\n"+
		// Bad id and short rows are skipped, not fatal.
		`not-a-number,Broken Row,"Jan 1, 2020",0,,,,,,,,,,,,,Nobody,,Action`+"\n"+
		"42,Short Row\n")
	writeSeedFile(t, dir, "users.csv", "id,username,password\n0,jess,cLQ^C#oFXloS\n")
	writeSeedFile(t, dir, "reviews.csv", "id,game_id,username,comment,rating\n"+
		"0,7940,jess,Landmark campaign.,5\n"+
		// Unknown game: the row is skipped.
		"1,999999,jess,Ghost game.,3\n")

	repo := NewMemoryRepository()
	require.NoError(t, Populate(ctx, repo, dir))

	count, err := repo.GetNumberOfGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	game, err := repo.GetGame(ctx, 1228870)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Bartlow's Dread Machine", game.Title)
	assert.Equal(t, "Beep Games, Inc.", game.PublisherName())
	assert.Equal(t, []string{"Action", "Adventure"}, game.GenreNames())
	require.NotNil(t, game.Price)
	assert.Equal(t, 14.99, *game.Price)

	genres, err := repo.GetGenres(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 2)

	user, err := repo.GetUser(ctx, "jess")
	require.NoError(t, err)
	require.NotNil(t, user)

	reviewed, err := repo.GetReviews(ctx, user)
	require.NoError(t, err)
	require.Len(t, reviewed, 1)
	assert.Equal(t, 5, reviewed[0].Rating)
	assert.Equal(t, 7940, reviewed[0].Game.ID)
}

func TestPopulateWithoutReviewsFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeSeedFile(t, dir, "games.csv", gamesCSVHeader+"\n"+
		`3010,Xpand Rally,"Oct 21, 2008",4.99,Rally sim.,,,,xpand.jpg,https://example.com/xpand,,,,,,,Techland,,Racing`+"\n")
	writeSeedFile(t, dir, "users.csv", "id,username,password\n0,adam,Str0ngPass!\n")

	repo := NewMemoryRepository()
	require.NoError(t, Populate(ctx, repo, dir))

	count, err := repo.GetNumberOfGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
