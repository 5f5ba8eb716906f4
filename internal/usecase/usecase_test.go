package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapter "gameshelf/internal/adapter/repository"
	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
)

// Fixture catalog shared by the use case tests: five games across three
// genres, exactly one game published by Activision, two registered users.

const (
	jessPassword = "cLQ^C#oFXloS"
	adamPassword = "Str0ngPass!"
)

func fixtureGame(id int, title, date, publisher string, price float64, genres ...string) *entity.Game {
	game := entity.NewGame(id, title)
	game.ReleaseDate = date
	game.Price = &price
	p := entity.NewPublisher(publisher)
	game.Publisher = &p
	for _, name := range genres {
		game.AddGenre(entity.NewGenre(name))
	}
	return game
}

func fixtureUser(t *testing.T, username, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return entity.NewUser(username, string(hash))
}

func fixtureRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	repo := adapter.NewMemoryRepository()

	games := []*entity.Game{
		fixtureGame(7940, "Call of Duty® 4: Modern Warfare®", "Nov 12, 2007", "Activision", 9.99, "Action"),
		fixtureGame(3010, "Xpand Rally", "Oct 21, 2008", "Techland", 4.99, "Racing"),
		fixtureGame(1228870, "Bartlow's Dread Machine", "Sep 29, 2020", "Beep Games, Inc.", 14.99, "Action", "Adventure"),
		fixtureGame(855010, "MagicShop3D", "Mar 16, 2021", "Tomato Games", 2.99, "Adventure"),
		fixtureGame(1271620, "Super Kart Rally", "Jun 19, 2022", "GT Racing Crew", 0, "Racing"),
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

	require.NoError(t, repo.AddUser(ctx, fixtureUser(t, "jess", jessPassword)))
	require.NoError(t, repo.AddUser(ctx, fixtureUser(t, "adam", adamPassword)))
	return repo
}

func titles(games []GameDTO) []string {
	out := make([]string, 0, len(games))
	for _, game := range games {
		out = append(out, game.Title)
	}
	return out
}
