package usecase

import (
	"context"

	"gameshelf/internal/domain/repository"
)

// HomeUseCase serves the landing page.
type HomeUseCase struct {
	repo repository.Repository
}

func NewHomeUseCase(repo repository.Repository) *HomeUseCase {
	return &HomeUseCase{repo: repo}
}

// GetMostRecentGames returns up to three games, newest release first.
func (uc *HomeUseCase) GetMostRecentGames(ctx context.Context) ([]GameDTO, error) {
	games, err := uc.repo.GetThreeMostRecentGames(ctx)
	if err != nil {
		return nil, err
	}
	return gamesToDTO(games), nil
}
