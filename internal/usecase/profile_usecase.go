package usecase

import (
	"context"
	"sort"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/errors"
)

// ProfileUseCase serves a user's favourites and review history.
type ProfileUseCase struct {
	repo repository.Repository
}

func NewProfileUseCase(repo repository.Repository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (uc *ProfileUseCase) lookup(ctx context.Context, gameID int, username string) (*entity.User, *entity.Game, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, errors.NotFound("Game", nil)
	}
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.NotFound("User", nil)
	}
	return user, game, nil
}

// AddGameToFavourites favourites the game for the user. Favouriting an
// already-favourited game is a no-op.
func (uc *ProfileUseCase) AddGameToFavourites(ctx context.Context, gameID int, username string) error {
	user, game, err := uc.lookup(ctx, gameID, username)
	if err != nil {
		return err
	}
	return uc.repo.AddGameToFavourites(ctx, user, game)
}

func (uc *ProfileUseCase) RemoveGameFromFavourites(ctx context.Context, gameID int, username string) error {
	user, game, err := uc.lookup(ctx, gameID, username)
	if err != nil {
		return err
	}
	return uc.repo.RemoveGameFromFavourites(ctx, user, game)
}

// GetFavourites returns the user's favourite games in the order they
// were favourited.
func (uc *ProfileUseCase) GetFavourites(ctx context.Context, username string) ([]GameDTO, error) {
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	favourites, err := uc.repo.GetFavourites(ctx, user)
	if err != nil {
		return nil, err
	}
	return gamesToDTO(favourites), nil
}

// GetUserReviews returns the user's reviews from most to least recent.
func (uc *ProfileUseCase) GetUserReviews(ctx context.Context, username string) ([]ReviewDTO, error) {
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	reviews, err := uc.repo.GetReviews(ctx, user)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].PostedTime().After(reviews[j].PostedTime())
	})
	return reviewsToDTO(reviews), nil
}

// GetMostRecentReview returns the user's latest review, or nil when the
// user has none.
func (uc *ProfileUseCase) GetMostRecentReview(ctx context.Context, username string) (*ReviewDTO, error) {
	reviews, err := uc.GetUserReviews(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	return &reviews[0], nil
}

// GetMostRecentFavourite returns the game favourited last, or nil when
// the user has no favourites.
func (uc *ProfileUseCase) GetMostRecentFavourite(ctx context.Context, username string) (*GameDTO, error) {
	favourites, err := uc.GetFavourites(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(favourites) == 0 {
		return nil, nil
	}
	return &favourites[len(favourites)-1], nil
}
