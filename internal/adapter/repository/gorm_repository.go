package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
)

// GormRepository is the persistent backend. Every method translates into
// a query against the relational schema in models.go; every mutation runs
// inside a transaction, so a failure rolls the whole unit of work back and
// no partial write is observable.
type GormRepository struct {
	base *gorm.DB
	db   *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{base: db, db: db}
}

var _ repository.Repository = (*GormRepository)(nil)

// Reset discards cached session state so one request-like unit of work
// never leaks stale entities into the next. Wire it to a per-request
// hook when the backend serves HTTP traffic.
func (r *GormRepository) Reset() {
	r.db = r.base.Session(&gorm.Session{NewDB: true})
}

func (r *GormRepository) AddUser(ctx context.Context, user *entity.User) error {
	if !user.Valid() {
		return repository.ErrInvalidEntity
	}
	user.Username = strings.ToLower(user.Username)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&userRecord{Username: user.Username, Password: user.Password}).Error
	})
}

func (r *GormRepository) GetUser(ctx context.Context, username string) (*entity.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(username)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := toUserEntity(&rec)

	// Rebuild the owned collections: reviews with their games, then the
	// insertion-ordered favourites.
	var reviews []reviewRecord
	if err := r.db.WithContext(ctx).
		Preload("Game").Preload("Game.Publisher").Preload("Game.Genres").
		Where("user_id = ?", rec.ID).
		Order("id").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.Game == nil {
			continue
		}
		game := toGameEntity(review.Game)
		entity.RestoreReview(user, game, review.Comment, review.Rating, review.TimePosted)
	}

	favourites, err := r.favouriteGames(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	for _, game := range favourites {
		user.AddFavouriteGame(game)
	}
	return user, nil
}

func (r *GormRepository) favouriteGames(ctx context.Context, userID uint) ([]*entity.Game, error) {
	var recs []gameRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN favourite_games ON favourite_games.game_id = games.id").
		Where("favourite_games.user_id = ?", userID).
		Order("favourite_games.id").
		Preload("Publisher").Preload("Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) AddGame(ctx context.Context, game *entity.Game) error {
	if !game.Valid() {
		return repository.ErrInvalidEntity
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertGame(tx, game)
	})
}

// upsertGame merges a game keyed by its ID: on conflict the stored fields
// are overwritten and the genre set replaced. Referenced publisher and
// genre rows are created when missing.
func upsertGame(tx *gorm.DB, game *entity.Game) error {
	if game.Publisher != nil && game.Publisher.Valid() {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&publisherRecord{Name: game.Publisher.Name}).Error
		if err != nil {
			return err
		}
	}
	genres := make([]genreRecord, 0, len(game.Genres))
	for _, genre := range game.Genres {
		if !genre.Valid() {
			continue
		}
		genres = append(genres, genreRecord{Name: genre.Name})
	}
	if len(genres) > 0 {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error
		if err != nil {
			return err
		}
	}

	rec := toGameRecord(game)
	err := tx.Omit("Publisher", "Genres", "Reviews").
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
	if err != nil {
		return err
	}
	return tx.Model(rec).Association("Genres").Replace(genres)
}

func (r *GormRepository) GetGame(ctx context.Context, id int) (*entity.Game, error) {
	var rec gameRecord
	err := r.db.WithContext(ctx).
		Preload("Publisher").Preload("Genres").
		Preload("Reviews").Preload("Reviews.User").
		First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toGameEntity(&rec), nil
}

func (r *GormRepository) GetGames(ctx context.Context) ([]*entity.Game, error) {
	var recs []gameRecord
	err := r.db.WithContext(ctx).
		Preload("Publisher").Preload("Genres").
		Preload("Reviews").Preload("Reviews.User").
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) GetNumberOfGames(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gameRecord{}).Count(&count).Error
	return int(count), err
}

func (r *GormRepository) AddGenre(ctx context.Context, genre entity.Genre) error {
	if !genre.Valid() {
		return repository.ErrInvalidEntity
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&genreRecord{Name: genre.Name}).Error
	})
}

// GetGenre folds case in the query rather than filtering client-side.
func (r *GormRepository) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	var rec genreRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	genre := entity.Genre{Name: rec.Name}
	return &genre, nil
}

func (r *GormRepository) GetGenres(ctx context.Context) ([]entity.Genre, error) {
	var recs []genreRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&recs).Error; err != nil {
		return nil, err
	}
	genres := make([]entity.Genre, 0, len(recs))
	for _, rec := range recs {
		genres = append(genres, entity.Genre{Name: rec.Name})
	}
	return genres, nil
}

func (r *GormRepository) AddPublisher(ctx context.Context, publisher entity.Publisher) error {
	if !publisher.Valid() {
		return repository.ErrInvalidEntity
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&publisherRecord{Name: publisher.Name}).Error
	})
}

func (r *GormRepository) GetPublisher(ctx context.Context, name string) (*entity.Publisher, error) {
	var rec publisherRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	publisher := entity.Publisher{Name: rec.Name}
	return &publisher, nil
}

func (r *GormRepository) GetPublishers(ctx context.Context) ([]entity.Publisher, error) {
	var recs []publisherRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&recs).Error; err != nil {
		return nil, err
	}
	publishers := make([]entity.Publisher, 0, len(recs))
	for _, rec := range recs {
		publishers = append(publishers, entity.Publisher{Name: rec.Name})
	}
	return publishers, nil
}

func (r *GormRepository) GetNumberOfPublishers(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&publisherRecord{}).Count(&count).Error
	return int(count), err
}

func (r *GormRepository) GetGamesForGenre(ctx context.Context, name string) ([]*entity.Game, error) {
	// First genre in name order whose name starts with the term,
	// case-insensitively. No match means an empty result.
	var genre genreRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%").
		Order("name").
		First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*entity.Game{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recs []gameRecord
	err = r.db.WithContext(ctx).
		Joins("JOIN game_genres ON game_genres.game_id = games.id").
		Where("game_genres.genre_name = ?", genre.Name).
		Order("games.id").
		Preload("Publisher").Preload("Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) GetNumGamesForGenre(ctx context.Context, name string) (int, error) {
	games, err := r.GetGamesForGenre(ctx, name)
	if err != nil {
		return 0, err
	}
	return len(games), nil
}

func (r *GormRepository) GetGamesForPublisher(ctx context.Context, name string) ([]*entity.Game, error) {
	var publisher publisherRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%").
		Order("name").
		First(&publisher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*entity.Game{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recs []gameRecord
	err = r.db.WithContext(ctx).
		Where("publisher_name = ?", publisher.Name).
		Order("id").
		Preload("Publisher").Preload("Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) GetGameFromTitle(ctx context.Context, title string) (*entity.Game, error) {
	var rec gameRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", strings.ToLower(title)+"%").
		Order("id").
		Preload("Publisher").Preload("Genres").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toGameEntity(&rec), nil
}

func (r *GormRepository) SearchGamesByTitle(ctx context.Context, title string) ([]*entity.Game, error) {
	var recs []gameRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%").
		Order("id").
		Preload("Publisher").Preload("Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) GetThreeMostRecentGames(ctx context.Context) ([]*entity.Game, error) {
	var recs []gameRecord
	err := r.db.WithContext(ctx).
		Order("release_time DESC, id").
		Limit(3).
		Preload("Publisher").Preload("Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	games := make([]*entity.Game, 0, len(recs))
	for i := range recs {
		games = append(games, toGameEntity(&recs[i]))
	}
	return games, nil
}

func (r *GormRepository) AddReview(ctx context.Context, review *entity.Review) error {
	if err := checkReviewAttached(review); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user userRecord
		if err := tx.Where("username = ?", review.User.Username).First(&user).Error; err != nil {
			return err
		}
		var game gameRecord
		if err := tx.First(&game, review.Game.ID).Error; err != nil {
			return err
		}
		return tx.Create(&reviewRecord{
			UserID:     user.ID,
			GameID:     game.ID,
			Rating:     review.Rating,
			Comment:    review.Comment,
			TimePosted: review.TimePosted,
		}).Error
	})
}

func (r *GormRepository) GetUserReviewForGame(ctx context.Context, user *entity.User, game *entity.Game) (*entity.Review, error) {
	if user == nil || game == nil {
		return nil, nil
	}
	var rec reviewRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("users.username = ? AND reviews.game_id = ?", user.Username, game.ID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.RestoreReview(user, game, rec.Comment, rec.Rating, rec.TimePosted), nil
}

func (r *GormRepository) RemoveReview(ctx context.Context, review *entity.Review) error {
	if review == nil || review.User == nil || review.Game == nil {
		return repository.ErrInvalidEntity
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("user_id = (?) AND game_id = ?",
				tx.Model(&userRecord{}).Select("id").Where("username = ?", review.User.Username),
				review.Game.ID).
			Delete(&reviewRecord{}).Error
	})
}

func (r *GormRepository) GetReviews(ctx context.Context, user *entity.User) ([]*entity.Review, error) {
	if user == nil {
		return []*entity.Review{}, nil
	}
	var recs []reviewRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("users.username = ?", user.Username).
		Order("reviews.id").
		Preload("Game").Preload("Game.Publisher").Preload("Game.Genres").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	reviews := make([]*entity.Review, 0, len(recs))
	for _, rec := range recs {
		if rec.Game == nil {
			continue
		}
		game := toGameEntity(rec.Game)
		reviews = append(reviews, entity.RestoreReview(user, game, rec.Comment, rec.Rating, rec.TimePosted))
	}
	return reviews, nil
}

func (r *GormRepository) AddGameToFavourites(ctx context.Context, user *entity.User, game *entity.Game) error {
	if !user.Valid() || !game.Valid() {
		return repository.ErrInvalidEntity
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec userRecord
		if err := tx.Where("username = ?", user.Username).First(&rec).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&favouriteRecord{UserID: rec.ID, GameID: game.ID}).Error
	})
	if err != nil {
		return err
	}
	user.AddFavouriteGame(game)
	return nil
}

func (r *GormRepository) RemoveGameFromFavourites(ctx context.Context, user *entity.User, game *entity.Game) error {
	if !user.Valid() || !game.Valid() {
		return repository.ErrInvalidEntity
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec userRecord
		if err := tx.Where("username = ?", user.Username).First(&rec).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND game_id = ?", rec.ID, game.ID).
			Delete(&favouriteRecord{}).Error
	})
	if err != nil {
		return err
	}
	user.RemoveFavouriteGame(game)
	return nil
}

func (r *GormRepository) IsGameInFavourites(ctx context.Context, user *entity.User, game *entity.Game) (bool, error) {
	if user == nil || game == nil {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&favouriteRecord{}).
		Joins("JOIN users ON users.id = favourite_games.user_id").
		Where("users.username = ? AND favourite_games.game_id = ?", user.Username, game.ID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormRepository) GetFavourites(ctx context.Context, user *entity.User) ([]*entity.Game, error) {
	if user == nil {
		return []*entity.Game{}, nil
	}
	var rec userRecord
	err := r.db.WithContext(ctx).Where("username = ?", user.Username).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*entity.Game{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.favouriteGames(ctx, rec.ID)
}

func (r *GormRepository) AddMultipleGames(ctx context.Context, games []*entity.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, game := range games {
			if !game.Valid() {
				continue
			}
			if err := upsertGame(tx, game); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository) AddMultipleGenres(ctx context.Context, genres []entity.Genre) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, genre := range genres {
			if !genre.Valid() {
				continue
			}
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&genreRecord{Name: genre.Name}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository) AddMultiplePublishers(ctx context.Context, publishers []entity.Publisher) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, publisher := range publishers {
			if !publisher.Valid() {
				continue
			}
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&publisherRecord{Name: publisher.Name}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
