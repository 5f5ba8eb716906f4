package repository

import (
	"time"

	"gorm.io/gorm"

	"gameshelf/internal/domain/entity"
)

// DB models are kept separate from the domain entities; converters below
// translate between the two. Publisher and genre names act as natural
// primary keys, games and users carry surrogate keys, and the two
// many-to-many relations live in junction tables.

type publisherRecord struct {
	Name string `gorm:"primaryKey;size:255"`
}

func (publisherRecord) TableName() string { return "publishers" }

type genreRecord struct {
	Name string `gorm:"primaryKey;size:255"`
}

func (genreRecord) TableName() string { return "genres" }

type gameRecord struct {
	ID          int    `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null;index"`
	Price       *float64
	ReleaseDate string `gorm:"size:32"`

	// ReleaseTime mirrors ReleaseDate in sortable form so most-recent
	// queries stay in SQL.
	ReleaseTime   time.Time        `gorm:"index"`
	Description   string           `gorm:"type:text"`
	ImageURL      string           `gorm:"size:255"`
	WebsiteURL    string           `gorm:"size:255"`
	PublisherName *string          `gorm:"size:255"`
	Publisher     *publisherRecord `gorm:"foreignKey:PublisherName;references:Name"`
	Genres        []genreRecord    `gorm:"many2many:game_genres;joinForeignKey:GameID;joinReferences:GenreName"`
	Reviews       []reviewRecord   `gorm:"foreignKey:GameID"`
}

func (gameRecord) TableName() string { return "games" }

type userRecord struct {
	ID       uint           `gorm:"primaryKey"`
	Username string         `gorm:"size:255;not null;uniqueIndex"`
	Password string         `gorm:"size:255;not null"`
	Reviews  []reviewRecord `gorm:"foreignKey:UserID"`
}

func (userRecord) TableName() string { return "users" }

type reviewRecord struct {
	ID         uint        `gorm:"primaryKey"`
	UserID     uint        `gorm:"index;not null"`
	GameID     int         `gorm:"index;not null"`
	Rating     int         `gorm:"not null"`
	Comment    string      `gorm:"type:text"`
	TimePosted string      `gorm:"size:64"`
	User       *userRecord `gorm:"foreignKey:UserID"`
	Game       *gameRecord `gorm:"foreignKey:GameID"`
}

func (reviewRecord) TableName() string { return "reviews" }

// favouriteRecord is the user↔game junction. The surrogate ID doubles as
// the insertion order, which "most recent favourite" relies on.
type favouriteRecord struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_game"`
	GameID int  `gorm:"not null;uniqueIndex:idx_user_game"`
}

func (favouriteRecord) TableName() string { return "favourite_games" }

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&publisherRecord{},
		&genreRecord{},
		&gameRecord{},
		&userRecord{},
		&reviewRecord{},
		&favouriteRecord{},
	)
}

func toGameRecord(game *entity.Game) *gameRecord {
	rec := &gameRecord{
		ID:          game.ID,
		Title:       game.Title,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
		ReleaseTime: game.ReleaseTime(),
		Description: game.Description,
		ImageURL:    game.ImageURL,
		WebsiteURL:  game.WebsiteURL,
	}
	if game.Publisher != nil {
		name := game.Publisher.Name
		rec.PublisherName = &name
	}
	return rec
}

// toGameEntity rebuilds the domain game from its record, including the
// publisher reference, the genre set and the owned reviews with their
// author back-references.
func toGameEntity(rec *gameRecord) *entity.Game {
	game := &entity.Game{
		ID:          rec.ID,
		Title:       rec.Title,
		Price:       rec.Price,
		ReleaseDate: rec.ReleaseDate,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		WebsiteURL:  rec.WebsiteURL,
	}
	if rec.Publisher != nil {
		publisher := entity.Publisher{Name: rec.Publisher.Name}
		game.Publisher = &publisher
	} else if rec.PublisherName != nil {
		publisher := entity.Publisher{Name: *rec.PublisherName}
		game.Publisher = &publisher
	}
	for _, genre := range rec.Genres {
		game.AddGenre(entity.Genre{Name: genre.Name})
	}
	for _, review := range rec.Reviews {
		if review.User == nil {
			continue
		}
		author := &entity.User{Username: review.User.Username, Password: review.User.Password}
		entity.RestoreReview(author, game, review.Comment, review.Rating, review.TimePosted)
	}
	return game
}

func toUserEntity(rec *userRecord) *entity.User {
	return &entity.User{Username: rec.Username, Password: rec.Password}
}
