package usecase

import "gameshelf/internal/domain/entity"

// Projections handed to the presentation layer: flat field mappings,
// never live entity references, so the storage layer stays decoupled
// from the views.

type GameDTO struct {
	ID          int      `json:"game_id"`
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	ReleaseDate string   `json:"release_date"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Publisher   string   `json:"publisher"`
	Genres      []string `json:"genres"`
}

type ReviewDTO struct {
	Username   string `json:"username"`
	GameID     int    `json:"game_id"`
	GameTitle  string `json:"game_title"`
	Comment    string `json:"comment"`
	Rating     int    `json:"rating"`
	TimePosted string `json:"time_posted"`
}

type GenreDTO struct {
	Name string `json:"genre_name"`
}

type PublisherDTO struct {
	Name string `json:"publisher_name"`
}

type UserDTO struct {
	Username       string    `json:"username"`
	FavouriteGames []GameDTO `json:"favourite_games"`
}

// gameToDTO flattens a game. Genre names appear in attachment order,
// each exactly once.
func gameToDTO(game *entity.Game) GameDTO {
	return GameDTO{
		ID:          game.ID,
		Title:       game.Title,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
		Description: game.Description,
		ImageURL:    game.ImageURL,
		Publisher:   game.PublisherName(),
		Genres:      game.GenreNames(),
	}
}

func gamesToDTO(games []*entity.Game) []GameDTO {
	dtos := make([]GameDTO, 0, len(games))
	for _, game := range games {
		dtos = append(dtos, gameToDTO(game))
	}
	return dtos
}

func reviewToDTO(review *entity.Review) ReviewDTO {
	return ReviewDTO{
		Username:   review.User.Username,
		GameID:     review.Game.ID,
		GameTitle:  review.Game.Title,
		Comment:    review.Comment,
		Rating:     review.Rating,
		TimePosted: review.TimePosted,
	}
}

func reviewsToDTO(reviews []*entity.Review) []ReviewDTO {
	dtos := make([]ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		dtos = append(dtos, reviewToDTO(review))
	}
	return dtos
}

func genresToDTO(genres []entity.Genre) []GenreDTO {
	dtos := make([]GenreDTO, 0, len(genres))
	for _, genre := range genres {
		dtos = append(dtos, GenreDTO{Name: genre.Name})
	}
	return dtos
}

func publishersToDTO(publishers []entity.Publisher) []PublisherDTO {
	dtos := make([]PublisherDTO, 0, len(publishers))
	for _, publisher := range publishers {
		dtos = append(dtos, PublisherDTO{Name: publisher.Name})
	}
	return dtos
}
