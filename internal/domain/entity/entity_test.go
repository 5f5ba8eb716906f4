package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameValid(t *testing.T) {
	assert.True(t, NewGame(1, "Call of Duty").Valid())
	assert.False(t, NewGame(0, "Call of Duty").Valid())
	assert.False(t, NewGame(-3, "Call of Duty").Valid())
	assert.False(t, NewGame(7, "   ").Valid())

	var missing *Game
	assert.False(t, missing.Valid())
}

func TestGameReleaseTime(t *testing.T) {
	game := NewGame(1, "Domino Game")
	game.ReleaseDate = "Oct 21, 2008"

	want := time.Date(2008, time.October, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, game.ReleaseTime())

	game.ReleaseDate = "not a date"
	assert.True(t, game.ReleaseTime().IsZero())
}

func TestGameAddGenreDeduplicates(t *testing.T) {
	game := NewGame(1, "Xpand Rally")
	game.AddGenre(NewGenre("Action"))
	game.AddGenre(NewGenre("Racing"))
	game.AddGenre(NewGenre("Action"))

	assert.Equal(t, []string{"Action", "Racing"}, game.GenreNames())

	game.RemoveGenre(NewGenre("Action"))
	assert.Equal(t, []string{"Racing"}, game.GenreNames())

	// Removing a genre the game does not carry changes nothing.
	game.RemoveGenre(NewGenre("Strategy"))
	assert.Equal(t, []string{"Racing"}, game.GenreNames())
}

func TestUserNormalizesUsername(t *testing.T) {
	user := NewUser("  JeSS  ", "hash")
	assert.Equal(t, "jess", user.Username)
}

func TestUserFavouritesAreIdempotent(t *testing.T) {
	user := NewUser("jess", "hash")
	first := NewGame(1, "Call of Duty")
	second := NewGame(2, "Xpand Rally")

	user.AddFavouriteGame(first)
	user.AddFavouriteGame(second)
	user.AddFavouriteGame(first)
	require.Len(t, user.FavouriteGames, 2)

	// Insertion order is what "most recent favourite" relies on.
	assert.Equal(t, first, user.FavouriteGames[0])
	assert.Equal(t, second, user.FavouriteGames[1])

	user.RemoveFavouriteGame(first)
	require.Len(t, user.FavouriteGames, 1)
	assert.Equal(t, second, user.FavouriteGames[0])

	// Removing a game that is not favourited is a no-op.
	user.RemoveFavouriteGame(first)
	assert.Len(t, user.FavouriteGames, 1)
}

func TestNewReviewLinksBothSides(t *testing.T) {
	user := NewUser("jess", "hash")
	game := NewGame(1, "Call of Duty")

	review, err := NewReview(user, game, "A modern classic.", 4)
	require.NoError(t, err)

	assert.True(t, user.HasReview(review))
	assert.True(t, game.HasReview(review))
	assert.NotEmpty(t, review.TimePosted)
	assert.False(t, review.PostedTime().IsZero())
}

func TestNewReviewRejectsBadInput(t *testing.T) {
	user := NewUser("jess", "hash")
	game := NewGame(1, "Call of Duty")

	_, err := NewReview(nil, game, "no author", 3)
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = NewReview(user, nil, "no game", 3)
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = NewReview(user, game, "rating too high", 6)
	assert.ErrorIs(t, err, ErrInvalidReview)

	_, err = NewReview(user, game, "rating too low", -1)
	assert.ErrorIs(t, err, ErrInvalidReview)
}

func TestDetachReviewRemovesBothSides(t *testing.T) {
	user := NewUser("jess", "hash")
	game := NewGame(1, "Call of Duty")
	review, err := NewReview(user, game, "A modern classic.", 4)
	require.NoError(t, err)

	DetachReview(review)

	assert.False(t, user.HasReview(review))
	assert.False(t, game.HasReview(review))
}

func TestRestoreReviewKeepsTimestamp(t *testing.T) {
	user := NewUser("jess", "hash")
	game := NewGame(1, "Call of Duty")

	review := RestoreReview(user, game, "Still holds up.", 5, "Jun 19, 2022 at 14:03:59")

	assert.Equal(t, "Jun 19, 2022 at 14:03:59", review.TimePosted)
	assert.True(t, user.HasReview(review))
	assert.True(t, game.HasReview(review))
}
