package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/errors"
)

// SearchUseCase serves free-text search with optional publisher, price
// and genre filters.
type SearchUseCase struct {
	repo repository.Repository
}

func NewSearchUseCase(repo repository.Repository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// The only filter keys a search request may carry.
var allowedSearchKeys = map[string]bool{
	"term":      true,
	"price_max": true,
	"publisher": true,
	"genres":    true,
}

func (uc *SearchUseCase) GetPublishers(ctx context.Context) ([]PublisherDTO, error) {
	publishers, err := uc.repo.GetPublishers(ctx)
	if err != nil {
		return nil, err
	}
	return publishersToDTO(publishers), nil
}

func (uc *SearchUseCase) GetGamesForPublisher(ctx context.Context, name string) ([]GameDTO, error) {
	games, err := uc.repo.GetGamesForPublisher(ctx, name)
	if err != nil {
		return nil, err
	}
	return gamesToDTO(games), nil
}

func (uc *SearchUseCase) GetGameFromTitle(ctx context.Context, title string) (*GameDTO, error) {
	game, err := uc.repo.GetGameFromTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}
	dto := gameToDTO(game)
	return &dto, nil
}

// Search resolves the query parameters into a result set. A present term
// unions games published by a prefix-matching publisher, games in a
// prefix-matching genre and at most one game with a prefix-matching
// title; the publisher, price and genre filters then intersect that set.
// An unrecognized parameter key or an invalid price fails with an
// INVALID_SEARCH_KEY error.
func (uc *SearchUseCase) Search(ctx context.Context, params url.Values) ([]GameDTO, error) {
	for key := range params {
		if !allowedSearchKeys[key] {
			return nil, errors.InvalidSearchKey("Invalid search key. Please try again.", nil)
		}
	}

	result := []GameDTO{}
	term := strings.TrimSpace(params.Get("term"))
	if term != "" {
		byPublisher, err := uc.GetGamesForPublisher(ctx, term)
		if err != nil {
			return nil, err
		}
		result = append(result, byPublisher...)

		byGenre, err := uc.repo.GetGamesForGenre(ctx, term)
		if err != nil {
			return nil, err
		}
		result = append(result, gamesToDTO(byGenre)...)

		byTitle, err := uc.GetGameFromTitle(ctx, term)
		if err != nil {
			return nil, err
		}
		if byTitle != nil {
			result = append(result, *byTitle)
		}
	}

	if publisher := params.Get("publisher"); publisher != "" {
		result = filterGamesByPublisher(publisher, result)
	}
	if price := params.Get("price_max"); price != "" {
		filtered, err := filterGamesByPrice(price, result)
		if err != nil {
			return nil, err
		}
		result = filtered
	}
	if genres := params["genres"]; len(genres) > 0 {
		result = filterGamesByGenre(genres, result)
	}
	return result, nil
}

func filterGamesByPublisher(name string, games []GameDTO) []GameDTO {
	filtered := []GameDTO{}
	for _, game := range games {
		if strings.EqualFold(game.Publisher, name) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

func filterGamesByPrice(price string, games []GameDTO) ([]GameDTO, error) {
	maxPrice, err := strconv.ParseFloat(price, 64)
	if err != nil || maxPrice < 0 {
		message := fmt.Sprintf("%s is not a valid price. Please input a number greater than 0.", price)
		return nil, errors.InvalidSearchKey(message, err)
	}
	filtered := []GameDTO{}
	for _, game := range games {
		if game.Price != nil && *game.Price <= maxPrice {
			filtered = append(filtered, game)
		}
	}
	return filtered, nil
}

// filterGamesByGenre keeps games carrying any of the given genres,
// compared case-insensitively.
func filterGamesByGenre(genres []string, games []GameDTO) []GameDTO {
	filtered := []GameDTO{}
	for _, game := range games {
		if gameMatchesAnyGenre(game, genres) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

func gameMatchesAnyGenre(game GameDTO, genres []string) bool {
	for _, wanted := range genres {
		for _, name := range game.Genres {
			if strings.EqualFold(name, wanted) {
				return true
			}
		}
	}
	return false
}
