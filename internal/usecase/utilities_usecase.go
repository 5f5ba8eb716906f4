package usecase

import (
	"context"
	"sort"

	"gameshelf/internal/domain/repository"
)

// UtilitiesUseCase backs the shared view fragments: the featured-genres
// sidebar and the catalog pagination header.
type UtilitiesUseCase struct {
	repo repository.Repository
}

func NewUtilitiesUseCase(repo repository.Repository) *UtilitiesUseCase {
	return &UtilitiesUseCase{repo: repo}
}

// GenrePopularityDTO pairs a genre with the number of catalog games
// carrying it.
type GenrePopularityDTO struct {
	Name     string `json:"genre_name"`
	NumGames int    `json:"num_games"`
}

// GetGenresSortedByPopularity counts games per genre across the whole
// catalog and ranks genres by descending count. Ties keep the genre
// listing order.
func (uc *UtilitiesUseCase) GetGenresSortedByPopularity(ctx context.Context) ([]GenrePopularityDTO, error) {
	genres, err := uc.repo.GetGenres(ctx)
	if err != nil {
		return nil, err
	}
	games, err := uc.repo.GetGames(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(genres))
	for _, genre := range genres {
		counts[genre.Name] = 0
	}
	for _, game := range games {
		for _, genre := range game.Genres {
			if _, ok := counts[genre.Name]; ok {
				counts[genre.Name]++
			}
		}
	}

	ranking := make([]GenrePopularityDTO, 0, len(genres))
	for _, genre := range genres {
		ranking = append(ranking, GenrePopularityDTO{Name: genre.Name, NumGames: counts[genre.Name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].NumGames > ranking[j].NumGames
	})
	return ranking, nil
}
