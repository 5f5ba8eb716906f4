package repository

import (
	"context"

	"gameshelf/internal/domain/entity"
)

// Repository is the storage contract the catalog is built on. Two
// implementations exist, an in-memory store for development and testing
// and a GORM-backed relational store, and every call site depends on this
// interface only. The active backend is chosen once at process start.
//
// Simple lookup misses are reported as (nil, nil), not as errors; errors
// are reserved for invalid input, invariant violations and storage
// failures.
type Repository interface {
	// Users. Usernames are normalized to lowercase on both write and read.
	AddUser(ctx context.Context, user *entity.User) error
	GetUser(ctx context.Context, username string) (*entity.User, error)

	// Games, ordered by ID.
	AddGame(ctx context.Context, game *entity.Game) error
	GetGame(ctx context.Context, id int) (*entity.Game, error)
	GetGames(ctx context.Context) ([]*entity.Game, error)
	GetNumberOfGames(ctx context.Context) (int, error)

	// Genres, ordered by name. GetGenre looks up by name; whether the
	// match folds case is backend-defined.
	AddGenre(ctx context.Context, genre entity.Genre) error
	GetGenre(ctx context.Context, name string) (*entity.Genre, error)
	GetGenres(ctx context.Context) ([]entity.Genre, error)

	// Publishers. GetPublisher folds case for an exact-name lookup.
	AddPublisher(ctx context.Context, publisher entity.Publisher) error
	GetPublisher(ctx context.Context, name string) (*entity.Publisher, error)
	GetPublishers(ctx context.Context) ([]entity.Publisher, error)
	GetNumberOfPublishers(ctx context.Context) (int, error)

	// GetGamesForGenre resolves name as a case-insensitive prefix against
	// exactly one genre (first match wins) and returns that genre's games.
	GetGamesForGenre(ctx context.Context, name string) ([]*entity.Game, error)
	GetNumGamesForGenre(ctx context.Context, name string) (int, error)

	// GetGamesForPublisher applies the same prefix-match policy to
	// publisher names.
	GetGamesForPublisher(ctx context.Context, name string) ([]*entity.Game, error)

	// GetGameFromTitle returns the first game in ID order whose title
	// matches the given title as a case-insensitive prefix, or nil.
	GetGameFromTitle(ctx context.Context, title string) (*entity.Game, error)

	// SearchGamesByTitle returns all games whose title contains the given
	// string, case-insensitively.
	SearchGamesByTitle(ctx context.Context, title string) ([]*entity.Game, error)

	// GetThreeMostRecentGames returns at most three games ordered by
	// descending release date, ties keeping their original order.
	GetThreeMostRecentGames(ctx context.Context) ([]*entity.Game, error)

	// AddReview stores a review. It fails with ErrReviewNotAttached when
	// the review is not linked into both its user's and its game's review
	// collections.
	AddReview(ctx context.Context, review *entity.Review) error
	GetUserReviewForGame(ctx context.Context, user *entity.User, game *entity.Game) (*entity.Review, error)
	// RemoveReview deletes the review from the backing store. The caller
	// detaches it from the user and game collections beforehand.
	RemoveReview(ctx context.Context, review *entity.Review) error
	// GetReviews returns the given user's reviews.
	GetReviews(ctx context.Context, user *entity.User) ([]*entity.Review, error)

	// Favourites: a per-user, insertion-ordered set of games. Adding an
	// already-favourited game and removing a non-favourited one are no-ops.
	AddGameToFavourites(ctx context.Context, user *entity.User, game *entity.Game) error
	RemoveGameFromFavourites(ctx context.Context, user *entity.User, game *entity.Game) error
	IsGameInFavourites(ctx context.Context, user *entity.User, game *entity.Game) (bool, error)
	GetFavourites(ctx context.Context, user *entity.User) ([]*entity.Game, error)

	// Bulk variants upsert keyed by entity identity: an entry whose
	// identity already exists overwrites the stored fields.
	AddMultipleGames(ctx context.Context, games []*entity.Game) error
	AddMultipleGenres(ctx context.Context, genres []entity.Genre) error
	AddMultiplePublishers(ctx context.Context, publishers []entity.Publisher) error
}
