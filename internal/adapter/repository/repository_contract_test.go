package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
)

// The contract suite runs against both backends; anything asserted here
// must hold identically for the in-memory and the GORM repository.

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func priceOf(value float64) *float64 {
	return &value
}

func seedGame(id int, title, date, publisher string, price *float64, genres ...string) *entity.Game {
	game := entity.NewGame(id, title)
	game.ReleaseDate = date
	game.Price = price
	if publisher != "" {
		p := entity.NewPublisher(publisher)
		game.Publisher = &p
	}
	for _, name := range genres {
		game.AddGenre(entity.NewGenre(name))
	}
	return game
}

// seedCatalog loads a small fixed catalog: five games, exactly one of
// them published by Activision, release dates spanning 2007 to 2022.
func seedCatalog(t *testing.T, repo repository.Repository) {
	t.Helper()
	ctx := context.Background()

	games := []*entity.Game{
		seedGame(7940, "Call of Duty® 4: Modern Warfare®", "Nov 12, 2007", "Activision", priceOf(9.99), "Action"),
		seedGame(3010, "Xpand Rally", "Oct 21, 2008", "Techland", priceOf(4.99), "Racing"),
		seedGame(1228870, "Bartlow's Dread Machine", "Sep 29, 2020", "Beep Games, Inc.", priceOf(14.99), "Action", "Adventure"),
		seedGame(855010, "MagicShop3D", "Mar 16, 2021", "Tomato Games", priceOf(2.99), "Adventure"),
		seedGame(1271620, "Super Kart Rally", "Jun 19, 2022", "GT Racing Crew", priceOf(0), "Racing"),
	}

	var genres []entity.Genre
	var publishers []entity.Publisher
	for _, game := range games {
		genres = append(genres, game.Genres...)
		publishers = append(publishers, *game.Publisher)
	}
	require.NoError(t, repo.AddMultiplePublishers(ctx, publishers))
	require.NoError(t, repo.AddMultipleGenres(ctx, genres))
	require.NoError(t, repo.AddMultipleGames(ctx, games))

	require.NoError(t, repo.AddUser(ctx, entity.NewUser("jess", hashPassword(t, "cLQ^C#oFXloS"))))
	require.NoError(t, repo.AddUser(ctx, entity.NewUser("adam", hashPassword(t, "Str0ngPass!"))))
}

func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.Repository) {
	ctx := context.Background()

	t.Run("add and get game", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		before, err := repo.GetNumberOfGames(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.AddGame(ctx, seedGame(42, "New Arrival", "Jan 2, 2023", "Techland", priceOf(19.99), "Action")))

		after, err := repo.GetNumberOfGames(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)

		game, err := repo.GetGame(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, game)
		assert.Equal(t, "New Arrival", game.Title)

		missing, err := repo.GetGame(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("invalid game is rejected without changing state", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		before, err := repo.GetNumberOfGames(ctx)
		require.NoError(t, err)

		assert.ErrorIs(t, repo.AddGame(ctx, nil), repository.ErrInvalidEntity)
		assert.ErrorIs(t, repo.AddGame(ctx, entity.NewGame(0, "No identity")), repository.ErrInvalidEntity)
		assert.ErrorIs(t, repo.AddGame(ctx, entity.NewGame(50, "")), repository.ErrInvalidEntity)

		after, err := repo.GetNumberOfGames(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("games are ordered by id", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		games, err := repo.GetGames(ctx)
		require.NoError(t, err)

		ids := make([]int, 0, len(games))
		for _, game := range games {
			ids = append(ids, game.ID)
		}
		assert.Equal(t, []int{3010, 7940, 855010, 1228870, 1271620}, ids)
	})

	t.Run("adding a game with an existing id overwrites it", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		require.NoError(t, repo.AddGame(ctx, seedGame(3010, "Xpand Rally Remastered", "Oct 21, 2008", "Techland", priceOf(9.99), "Racing")))

		count, err := repo.GetNumberOfGames(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		game, err := repo.GetGame(ctx, 3010)
		require.NoError(t, err)
		assert.Equal(t, "Xpand Rally Remastered", game.Title)
	})

	t.Run("user lookup folds case", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		user, err := repo.GetUser(ctx, "JESS")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "jess", user.Username)

		missing, err := repo.GetUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("genres are listed sorted and deduplicated", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		genres, err := repo.GetGenres(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(genres))
		for _, genre := range genres {
			names = append(names, genre.Name)
		}
		assert.Equal(t, []string{"Action", "Adventure", "Racing"}, names)
	})

	t.Run("games for genre uses a case-insensitive prefix", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		games, err := repo.GetGamesForGenre(ctx, "act")
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, 7940, games[0].ID)
		assert.Equal(t, 1228870, games[1].ID)

		count, err := repo.GetNumGamesForGenre(ctx, "act")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		none, err := repo.GetGamesForGenre(ctx, "strategy")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("games for publisher uses a case-insensitive prefix", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		games, err := repo.GetGamesForPublisher(ctx, "acti")
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Call of Duty® 4: Modern Warfare®", games[0].Title)

		none, err := repo.GetGamesForPublisher(ctx, "ubisoft")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("game from title prefix", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		game, err := repo.GetGameFromTitle(ctx, "xpand")
		require.NoError(t, err)
		require.NotNil(t, game)
		assert.Equal(t, 3010, game.ID)

		missing, err := repo.GetGameFromTitle(ctx, "zzzz")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("title substring search", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		games, err := repo.SearchGamesByTitle(ctx, "rally")
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, 3010, games[0].ID)
		assert.Equal(t, 1271620, games[1].ID)
	})

	t.Run("three most recent games", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		games, err := repo.GetThreeMostRecentGames(ctx)
		require.NoError(t, err)
		require.Len(t, games, 3)
		assert.Equal(t, "Jun 19, 2022", games[0].ReleaseDate)
		assert.Equal(t, "Mar 16, 2021", games[1].ReleaseDate)
		assert.Equal(t, "Sep 29, 2020", games[2].ReleaseDate)
	})

	t.Run("publishers", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		count, err := repo.GetNumberOfPublishers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		publisher, err := repo.GetPublisher(ctx, "activision")
		require.NoError(t, err)
		require.NotNil(t, publisher)
		assert.Equal(t, "Activision", publisher.Name)
	})

	t.Run("review lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		user, err := repo.GetUser(ctx, "jess")
		require.NoError(t, err)
		game, err := repo.GetGame(ctx, 7940)
		require.NoError(t, err)

		// A review that skipped the linking constructor is rejected.
		orphan := &entity.Review{User: user, Game: game, Rating: 3, Comment: "never linked"}
		assert.ErrorIs(t, repo.AddReview(ctx, orphan), repository.ErrReviewNotAttached)

		review, err := entity.NewReview(user, game, "A modern classic.", 4)
		require.NoError(t, err)
		require.NoError(t, repo.AddReview(ctx, review))

		freshUser, err := repo.GetUser(ctx, "jess")
		require.NoError(t, err)
		freshGame, err := repo.GetGame(ctx, 7940)
		require.NoError(t, err)
		found, err := repo.GetUserReviewForGame(ctx, freshUser, freshGame)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "A modern classic.", found.Comment)
		assert.Equal(t, 4, found.Rating)

		reviews, err := repo.GetReviews(ctx, freshUser)
		require.NoError(t, err)
		require.Len(t, reviews, 1)

		other, err := repo.GetUser(ctx, "adam")
		require.NoError(t, err)
		none, err := repo.GetReviews(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, none)

		entity.DetachReview(found)
		require.NoError(t, repo.RemoveReview(ctx, found))

		freshUser, err = repo.GetUser(ctx, "jess")
		require.NoError(t, err)
		freshGame, err = repo.GetGame(ctx, 7940)
		require.NoError(t, err)
		gone, err := repo.GetUserReviewForGame(ctx, freshUser, freshGame)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("favourites are an insertion-ordered set", func(t *testing.T) {
		repo := newRepo(t)
		seedCatalog(t, repo)

		user, err := repo.GetUser(ctx, "jess")
		require.NoError(t, err)
		first, err := repo.GetGame(ctx, 7940)
		require.NoError(t, err)
		second, err := repo.GetGame(ctx, 3010)
		require.NoError(t, err)

		require.NoError(t, repo.AddGameToFavourites(ctx, user, first))
		require.NoError(t, repo.AddGameToFavourites(ctx, user, second))
		// Favouriting twice leaves the set unchanged.
		require.NoError(t, repo.AddGameToFavourites(ctx, user, first))

		favourites, err := repo.GetFavourites(ctx, user)
		require.NoError(t, err)
		require.Len(t, favourites, 2)
		assert.Equal(t, 7940, favourites[0].ID)
		assert.Equal(t, 3010, favourites[1].ID)

		in, err := repo.IsGameInFavourites(ctx, user, first)
		require.NoError(t, err)
		assert.True(t, in)

		require.NoError(t, repo.RemoveGameFromFavourites(ctx, user, first))
		// Removing a non-favourited game is a no-op.
		require.NoError(t, repo.RemoveGameFromFavourites(ctx, user, first))

		favourites, err = repo.GetFavourites(ctx, user)
		require.NoError(t, err)
		require.Len(t, favourites, 1)
		assert.Equal(t, 3010, favourites[0].ID)

		in, err = repo.IsGameInFavourites(ctx, user, first)
		require.NoError(t, err)
		assert.False(t, in)
	})
}
