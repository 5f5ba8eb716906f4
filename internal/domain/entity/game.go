package entity

import (
	"strings"
	"time"
)

// ReleaseDateLayout is the textual format game release dates are stored in,
// e.g. "Jun 19, 2022".
const ReleaseDateLayout = "Jan 2, 2006"

// Game is a catalog entry. Identity is the positive integer ID; all other
// fields are descriptive. A game references at most one publisher and any
// number of genres, and owns its reviews.
type Game struct {
	ID          int        `json:"game_id"`
	Title       string     `json:"title"`
	Price       *float64   `json:"price"`
	ReleaseDate string     `json:"release_date"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	WebsiteURL  string     `json:"website_url"`
	Publisher   *Publisher `json:"publisher,omitempty"`
	Genres      []Genre    `json:"genres"`
	Reviews     []*Review  `json:"-"`
}

func NewGame(id int, title string) *Game {
	return &Game{
		ID:    id,
		Title: strings.TrimSpace(title),
	}
}

// Valid reports whether the game satisfies its identity rules: a positive
// ID and a non-empty title.
func (g *Game) Valid() bool {
	return g != nil && g.ID > 0 && g.Title != ""
}

// Less orders games by ID.
func (g *Game) Less(other *Game) bool {
	return g.ID < other.ID
}

// ReleaseTime parses the textual release date. The zero time is returned
// when the date is missing or malformed, which sorts such games last in
// most-recent orderings.
func (g *Game) ReleaseTime() time.Time {
	t, err := time.Parse(ReleaseDateLayout, g.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddGenre attaches a genre to the game, keeping the genre set free of
// duplicates.
func (g *Game) AddGenre(genre Genre) {
	if !genre.Valid() || g.HasGenre(genre) {
		return
	}
	g.Genres = append(g.Genres, genre)
}

func (g *Game) RemoveGenre(genre Genre) {
	for i, existing := range g.Genres {
		if existing.Name == genre.Name {
			g.Genres = append(g.Genres[:i], g.Genres[i+1:]...)
			return
		}
	}
}

func (g *Game) HasGenre(genre Genre) bool {
	for _, existing := range g.Genres {
		if existing.Name == genre.Name {
			return true
		}
	}
	return false
}

// GenreNames returns the names of the game's genres in attachment order,
// each exactly once.
func (g *Game) GenreNames() []string {
	names := make([]string, 0, len(g.Genres))
	for _, genre := range g.Genres {
		names = append(names, genre.Name)
	}
	return names
}

// PublisherName returns the owning publisher's name, or "" when the game
// has none.
func (g *Game) PublisherName() string {
	if g.Publisher == nil {
		return ""
	}
	return g.Publisher.Name
}

func (g *Game) addReview(review *Review) {
	g.Reviews = append(g.Reviews, review)
}

func (g *Game) removeReview(review *Review) {
	for i, existing := range g.Reviews {
		if existing == review {
			g.Reviews = append(g.Reviews[:i], g.Reviews[i+1:]...)
			return
		}
	}
}

// HasReview reports whether the review is present in the game's owned
// review collection.
func (g *Game) HasReview(review *Review) bool {
	for _, existing := range g.Reviews {
		if existing == review {
			return true
		}
	}
	return false
}
