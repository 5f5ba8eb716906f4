package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
)

// MemoryRepository is the in-process backend: identity-sorted slices for
// games, genres and publishers, insertion-ordered slices for users and
// reviews, and linear scans for lookups. It is meant for development and
// testing-scale catalogs, so no indexes are kept. A single RWMutex guards
// the store against echo's per-request goroutines.
type MemoryRepository struct {
	mu         sync.RWMutex
	games      []*entity.Game
	genres     []entity.Genre
	publishers []entity.Publisher
	users      []*entity.User
	reviews    []*entity.Review
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

var _ repository.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) AddUser(ctx context.Context, user *entity.User) error {
	if !user.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Username = strings.ToLower(user.Username)
	r.users = append(r.users, user)
	return nil
}

func (r *MemoryRepository) GetUser(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	username = strings.ToLower(username)
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) AddGame(ctx context.Context, game *entity.Game) error {
	if !game.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertGame(game)
	return nil
}

// insertGame keeps the game slice sorted by ID, replacing any existing
// game with the same ID (upsert keyed by identity).
func (r *MemoryRepository) insertGame(game *entity.Game) {
	i := sort.Search(len(r.games), func(i int) bool { return r.games[i].ID >= game.ID })
	if i < len(r.games) && r.games[i].ID == game.ID {
		r.games[i] = game
		return
	}
	r.games = append(r.games, nil)
	copy(r.games[i+1:], r.games[i:])
	r.games[i] = game
}

func (r *MemoryRepository) GetGame(ctx context.Context, id int) (*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, game := range r.games {
		if game.ID == id {
			return game, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetGames(ctx context.Context) ([]*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := make([]*entity.Game, len(r.games))
	copy(games, r.games)
	return games, nil
}

func (r *MemoryRepository) GetNumberOfGames(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games), nil
}

func (r *MemoryRepository) AddGenre(ctx context.Context, genre entity.Genre) error {
	if !genre.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertGenre(genre)
	return nil
}

func (r *MemoryRepository) insertGenre(genre entity.Genre) {
	i := sort.Search(len(r.genres), func(i int) bool { return r.genres[i].Name >= genre.Name })
	if i < len(r.genres) && r.genres[i].Name == genre.Name {
		return
	}
	r.genres = append(r.genres, entity.Genre{})
	copy(r.genres[i+1:], r.genres[i:])
	r.genres[i] = genre
}

func (r *MemoryRepository) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, genre := range r.genres {
		if genre.Name == name {
			g := genre
			return &g, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetGenres(ctx context.Context) ([]entity.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	genres := make([]entity.Genre, len(r.genres))
	copy(genres, r.genres)
	return genres, nil
}

func (r *MemoryRepository) AddPublisher(ctx context.Context, publisher entity.Publisher) error {
	if !publisher.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertPublisher(publisher)
	return nil
}

func (r *MemoryRepository) insertPublisher(publisher entity.Publisher) {
	i := sort.Search(len(r.publishers), func(i int) bool { return r.publishers[i].Name >= publisher.Name })
	if i < len(r.publishers) && r.publishers[i].Name == publisher.Name {
		return
	}
	r.publishers = append(r.publishers, entity.Publisher{})
	copy(r.publishers[i+1:], r.publishers[i:])
	r.publishers[i] = publisher
}

func (r *MemoryRepository) GetPublisher(ctx context.Context, name string) (*entity.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, publisher := range r.publishers {
		if strings.EqualFold(publisher.Name, name) {
			p := publisher
			return &p, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetPublishers(ctx context.Context) ([]entity.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	publishers := make([]entity.Publisher, len(r.publishers))
	copy(publishers, r.publishers)
	return publishers, nil
}

func (r *MemoryRepository) GetNumberOfPublishers(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.publishers), nil
}

func (r *MemoryRepository) GetGamesForGenre(ctx context.Context, name string) ([]*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// First genre whose name carries the term as a case-insensitive prefix
	// wins; no match means an empty result.
	var match *entity.Genre
	lowered := strings.ToLower(name)
	for i := range r.genres {
		if strings.HasPrefix(strings.ToLower(r.genres[i].Name), lowered) {
			match = &r.genres[i]
			break
		}
	}
	games := []*entity.Game{}
	if match == nil {
		return games, nil
	}
	for _, game := range r.games {
		if game.HasGenre(*match) {
			games = append(games, game)
		}
	}
	return games, nil
}

func (r *MemoryRepository) GetNumGamesForGenre(ctx context.Context, name string) (int, error) {
	games, err := r.GetGamesForGenre(ctx, name)
	if err != nil {
		return 0, err
	}
	return len(games), nil
}

func (r *MemoryRepository) GetGamesForPublisher(ctx context.Context, name string) ([]*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *entity.Publisher
	lowered := strings.ToLower(name)
	for i := range r.publishers {
		if strings.HasPrefix(strings.ToLower(r.publishers[i].Name), lowered) {
			match = &r.publishers[i]
			break
		}
	}
	games := []*entity.Game{}
	if match == nil {
		return games, nil
	}
	for _, game := range r.games {
		if game.Publisher != nil && game.Publisher.Name == match.Name {
			games = append(games, game)
		}
	}
	return games, nil
}

func (r *MemoryRepository) GetGameFromTitle(ctx context.Context, title string) (*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lowered := strings.ToLower(title)
	for _, game := range r.games {
		if strings.HasPrefix(strings.ToLower(game.Title), lowered) {
			return game, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) SearchGamesByTitle(ctx context.Context, title string) ([]*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lowered := strings.ToLower(title)
	games := []*entity.Game{}
	for _, game := range r.games {
		if strings.Contains(strings.ToLower(game.Title), lowered) {
			games = append(games, game)
		}
	}
	return games, nil
}

func (r *MemoryRepository) GetThreeMostRecentGames(ctx context.Context) ([]*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := make([]*entity.Game, len(r.games))
	copy(games, r.games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].ReleaseTime().After(games[j].ReleaseTime())
	})
	if len(games) > 3 {
		games = games[:3]
	}
	return games, nil
}

func (r *MemoryRepository) AddReview(ctx context.Context, review *entity.Review) error {
	if err := checkReviewAttached(review); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

// checkReviewAttached enforces the bidirectional-link invariant shared by
// both backends: the review must be present in its user's and its game's
// review collections.
func checkReviewAttached(review *entity.Review) error {
	if review == nil {
		return repository.ErrInvalidEntity
	}
	if review.User == nil || !review.User.HasReview(review) {
		return repository.ErrReviewNotAttached
	}
	if review.Game == nil || !review.Game.HasReview(review) {
		return repository.ErrReviewNotAttached
	}
	return nil
}

func (r *MemoryRepository) GetUserReviewForGame(ctx context.Context, user *entity.User, game *entity.Game) (*entity.Review, error) {
	if user == nil || game == nil {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, review := range r.reviews {
		if review.User.Username == user.Username && review.Game.ID == game.ID {
			return review, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) RemoveReview(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.reviews {
		if existing == review {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) GetReviews(ctx context.Context, user *entity.User) ([]*entity.Review, error) {
	if user == nil {
		return []*entity.Review{}, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	reviews := []*entity.Review{}
	for _, review := range r.reviews {
		if review.User.Username == user.Username {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *MemoryRepository) AddGameToFavourites(ctx context.Context, user *entity.User, game *entity.Game) error {
	if !user.Valid() || !game.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user.AddFavouriteGame(game)
	return nil
}

func (r *MemoryRepository) RemoveGameFromFavourites(ctx context.Context, user *entity.User, game *entity.Game) error {
	if !user.Valid() || !game.Valid() {
		return repository.ErrInvalidEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user.RemoveFavouriteGame(game)
	return nil
}

func (r *MemoryRepository) IsGameInFavourites(ctx context.Context, user *entity.User, game *entity.Game) (bool, error) {
	if user == nil || game == nil {
		return false, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return user.IsFavouriteGame(game), nil
}

func (r *MemoryRepository) GetFavourites(ctx context.Context, user *entity.User) ([]*entity.Game, error) {
	if user == nil {
		return []*entity.Game{}, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	favourites := make([]*entity.Game, len(user.FavouriteGames))
	copy(favourites, user.FavouriteGames)
	return favourites, nil
}

func (r *MemoryRepository) AddMultipleGames(ctx context.Context, games []*entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, game := range games {
		if !game.Valid() {
			continue
		}
		r.insertGame(game)
	}
	return nil
}

func (r *MemoryRepository) AddMultipleGenres(ctx context.Context, genres []entity.Genre) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, genre := range genres {
		if !genre.Valid() {
			continue
		}
		r.insertGenre(genre)
	}
	return nil
}

func (r *MemoryRepository) AddMultiplePublishers(ctx context.Context, publishers []entity.Publisher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, publisher := range publishers {
		if !publisher.Valid() {
			continue
		}
		r.insertPublisher(publisher)
	}
	return nil
}
