package usecase

import (
	"context"
	"math"
	"sort"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/errors"
	"gameshelf/pkg/utils"
)

// BrowseUseCase serves the catalog listing and the per-game detail flows,
// including reviews and ratings.
type BrowseUseCase struct {
	repo repository.Repository
}

func NewBrowseUseCase(repo repository.Repository) *BrowseUseCase {
	return &BrowseUseCase{repo: repo}
}

func (uc *BrowseUseCase) GetNumberOfGames(ctx context.Context) (int, error) {
	return uc.repo.GetNumberOfGames(ctx)
}

// GetGames returns the full catalog sorted alphabetically by title.
// The sort is case-sensitive: capital letters order before lowercase.
func (uc *BrowseUseCase) GetGames(ctx context.Context) ([]GameDTO, error) {
	games, err := uc.repo.GetGames(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Title < games[j].Title
	})
	return gamesToDTO(games), nil
}

// GetGamesForPage returns the alphabetical slice belonging to the given
// page, along with the pagination arithmetic for the whole catalog.
func (uc *BrowseUseCase) GetGamesForPage(ctx context.Context, pageParam string, pageSize int) ([]GameDTO, utils.PaginationParams, error) {
	games, err := uc.GetGames(ctx)
	if err != nil {
		return nil, utils.PaginationParams{}, err
	}
	pagination := utils.Paginate(pageParam, len(games), pageSize)
	start, end := pagination.PageSlice(len(games))
	return games[start:end], pagination, nil
}

func (uc *BrowseUseCase) GetGame(ctx context.Context, gameID int) (GameDTO, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return GameDTO{}, err
	}
	if game == nil {
		return GameDTO{}, errors.NotFound("Game", nil)
	}
	return gameToDTO(game), nil
}

// AddReview records the user's review of a game. A user reviews a game at
// most once; a second submission is a no-op.
func (uc *BrowseUseCase) AddReview(ctx context.Context, gameID int, comment string, rating int, username string) error {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return errors.NotFound("Game", nil)
	}
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NotFound("User", nil)
	}

	reviewed, err := uc.HasUserReviewedGame(ctx, gameID, username)
	if err != nil {
		return err
	}
	if reviewed {
		return nil
	}

	review, err := entity.NewReview(user, game, comment, rating)
	if err != nil {
		return errors.BadRequest("Invalid review", err)
	}
	if err := uc.repo.AddReview(ctx, review); err != nil {
		if err == repository.ErrReviewNotAttached {
			return errors.Repository("Review not correctly attached to a user and a game", err)
		}
		return err
	}
	return nil
}

// DiscardReview removes the user's review of a game, detaching it from
// both owning collections before deleting it from the store.
func (uc *BrowseUseCase) DiscardReview(ctx context.Context, gameID int, username string) error {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return errors.NotFound("Game", nil)
	}
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NotFound("User", nil)
	}

	review, err := uc.repo.GetUserReviewForGame(ctx, user, game)
	if err != nil {
		return err
	}
	if review == nil {
		return nil
	}
	entity.DetachReview(review)
	return uc.repo.RemoveReview(ctx, review)
}

// GetReviewsForGame returns the game's reviews from most to least recent.
func (uc *BrowseUseCase) GetReviewsForGame(ctx context.Context, gameID int) ([]ReviewDTO, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.NotFound("Game", nil)
	}
	reviews := make([]*entity.Review, len(game.Reviews))
	copy(reviews, game.Reviews)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].PostedTime().After(reviews[j].PostedTime())
	})
	return reviewsToDTO(reviews), nil
}

func (uc *BrowseUseCase) HasUserReviewedGame(ctx context.Context, gameID int, username string) (bool, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	if game == nil {
		return false, errors.NotFound("Game", nil)
	}
	for _, review := range game.Reviews {
		if review.User.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// AverageRating returns the game's mean review rating rounded to the
// nearest integer, or nil when the game has no reviews.
func (uc *BrowseUseCase) AverageRating(ctx context.Context, gameID int) (*int, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.NotFound("Game", nil)
	}
	if len(game.Reviews) == 0 {
		return nil, nil
	}
	total := 0
	for _, review := range game.Reviews {
		total += review.Rating
	}
	average := int(math.Round(float64(total) / float64(len(game.Reviews))))
	return &average, nil
}

// IsGameInFavourites reports whether the named user has favourited the
// game. An unknown user simply yields false.
func (uc *BrowseUseCase) IsGameInFavourites(ctx context.Context, gameID int, username string) (bool, error) {
	game, err := uc.repo.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	if game == nil {
		return false, errors.NotFound("Game", nil)
	}
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return uc.repo.IsGameInFavourites(ctx, user, game)
}
