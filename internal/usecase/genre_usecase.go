package usecase

import (
	"context"

	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/errors"
	"gameshelf/pkg/utils"
)

// GenreUseCase serves the per-genre catalog views.
type GenreUseCase struct {
	repo repository.Repository
}

func NewGenreUseCase(repo repository.Repository) *GenreUseCase {
	return &GenreUseCase{repo: repo}
}

func (uc *GenreUseCase) GetGenre(ctx context.Context, name string) (GenreDTO, error) {
	genre, err := uc.repo.GetGenre(ctx, name)
	if err != nil {
		return GenreDTO{}, err
	}
	if genre == nil {
		return GenreDTO{}, errors.NotFound("Genre", nil)
	}
	return GenreDTO{Name: genre.Name}, nil
}

func (uc *GenreUseCase) GetGenres(ctx context.Context) ([]GenreDTO, error) {
	genres, err := uc.repo.GetGenres(ctx)
	if err != nil {
		return nil, err
	}
	return genresToDTO(genres), nil
}

func (uc *GenreUseCase) GetGamesForGenre(ctx context.Context, name string) ([]GameDTO, error) {
	games, err := uc.repo.GetGamesForGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	return gamesToDTO(games), nil
}

// GetPaginatedGenreGames slices the genre's games down to one page.
func (uc *GenreUseCase) GetPaginatedGenreGames(ctx context.Context, name, pageParam string, pageSize int) ([]GameDTO, utils.PaginationParams, error) {
	games, err := uc.GetGamesForGenre(ctx, name)
	if err != nil {
		return nil, utils.PaginationParams{}, err
	}
	pagination := utils.Paginate(pageParam, len(games), pageSize)
	start, end := pagination.PageSlice(len(games))
	return games[start:end], pagination, nil
}

func (uc *GenreUseCase) GetNumberOfGamesForGenre(ctx context.Context, name string) (int, error) {
	return uc.repo.GetNumGamesForGenre(ctx, name)
}
