package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/logger"
)

// Column offsets of the games.csv layout.
const (
	colGameID      = 0
	colTitle       = 1
	colReleaseDate = 2
	colPrice       = 3
	colDescription = 4
	colImageURL    = 8
	colWebsiteURL  = 9
	colPublisher   = 16
	colGenres      = 18
)

// Populate loads the CSV catalog at dataPath (games.csv, users.csv,
// reviews.csv) into the repository through its bulk-insert operations.
// Rows that fail validation are skipped and logged rather than aborting
// the load.
func Populate(ctx context.Context, repo repository.Repository, dataPath string) error {
	if err := loadGames(ctx, repo, dataPath); err != nil {
		return err
	}
	if err := loadUsers(ctx, repo, dataPath); err != nil {
		return err
	}
	return loadReviews(ctx, repo, dataPath)
}

func readCSVFile(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(filename), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	// Skip the header row and trim cell whitespace.
	rows = rows[1:]
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}
	return rows, nil
}

func loadGames(ctx context.Context, repo repository.Repository, dataPath string) error {
	rows, err := readCSVFile(filepath.Join(dataPath, "games.csv"))
	if err != nil {
		return err
	}

	var games []*entity.Game
	var genres []entity.Genre
	var publishers []entity.Publisher
	for _, row := range rows {
		if len(row) <= colGenres {
			logger.Warn("games.csv: skipping short row with %d columns", len(row))
			continue
		}
		id, err := strconv.Atoi(row[colGameID])
		if err != nil {
			logger.Warn("games.csv: skipping row with bad game id %q", row[colGameID])
			continue
		}

		game := entity.NewGame(id, row[colTitle])
		game.ReleaseDate = row[colReleaseDate]
		game.Description = row[colDescription]
		game.ImageURL = row[colImageURL]
		game.WebsiteURL = row[colWebsiteURL]
		if row[colPrice] != "" {
			price, err := strconv.ParseFloat(row[colPrice], 64)
			if err == nil {
				game.Price = &price
			}
		}
		if row[colPublisher] != "" {
			publisher := entity.NewPublisher(row[colPublisher])
			game.Publisher = &publisher
			publishers = append(publishers, publisher)
		}
		for _, name := range strings.Split(row[colGenres], ",") {
			genre := entity.NewGenre(name)
			if !genre.Valid() {
				continue
			}
			game.AddGenre(genre)
			genres = append(genres, genre)
		}
		games = append(games, game)
	}

	if err := repo.AddMultiplePublishers(ctx, publishers); err != nil {
		return err
	}
	if err := repo.AddMultipleGenres(ctx, genres); err != nil {
		return err
	}
	if err := repo.AddMultipleGames(ctx, games); err != nil {
		return err
	}
	logger.Info("Loaded %d games from %s", len(games), dataPath)
	return nil
}

func loadUsers(ctx context.Context, repo repository.Repository, dataPath string) error {
	rows, err := readCSVFile(filepath.Join(dataPath, "users.csv"))
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(row[2]), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := repo.AddUser(ctx, entity.NewUser(row[1], string(hash))); err != nil {
			logger.Warn("users.csv: skipping user %q: %v", row[1], err)
		}
	}
	return nil
}

func loadReviews(ctx context.Context, repo repository.Repository, dataPath string) error {
	rows, err := readCSVFile(filepath.Join(dataPath, "reviews.csv"))
	if err != nil {
		// Reviews are optional seed data.
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		gameID, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		rating, err := strconv.Atoi(row[4])
		if err != nil {
			continue
		}
		game, err := repo.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		user, err := repo.GetUser(ctx, row[2])
		if err != nil {
			return err
		}
		review, err := entity.NewReview(user, game, row[3], rating)
		if err != nil {
			logger.Warn("reviews.csv: skipping review for game %d: %v", gameID, err)
			continue
		}
		if err := repo.AddReview(ctx, review); err != nil {
			logger.Warn("reviews.csv: skipping review for game %d: %v", gameID, err)
		}
	}
	return nil
}
