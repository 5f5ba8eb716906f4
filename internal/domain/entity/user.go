package entity

import "strings"

// User is identified by its username, held in lowercase canonical form.
// Password always holds a hash, never plaintext. FavouriteGames preserves
// insertion order and contains each game at most once.
type User struct {
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	Reviews        []*Review `json:"-"`
	FavouriteGames []*Game   `json:"-"`
}

func NewUser(username, passwordHash string) *User {
	return &User{
		Username: strings.ToLower(strings.TrimSpace(username)),
		Password: passwordHash,
	}
}

func (u *User) Valid() bool {
	return u != nil && u.Username != "" && u.Password != ""
}

// AddFavouriteGame appends the game to the user's favourites. Adding a
// game that is already favourited is a no-op.
func (u *User) AddFavouriteGame(game *Game) {
	if !game.Valid() || u.IsFavouriteGame(game) {
		return
	}
	u.FavouriteGames = append(u.FavouriteGames, game)
}

// RemoveFavouriteGame removes the game from the user's favourites.
// Removing a game that is not favourited is a no-op.
func (u *User) RemoveFavouriteGame(game *Game) {
	if game == nil {
		return
	}
	for i, existing := range u.FavouriteGames {
		if existing.ID == game.ID {
			u.FavouriteGames = append(u.FavouriteGames[:i], u.FavouriteGames[i+1:]...)
			return
		}
	}
}

func (u *User) IsFavouriteGame(game *Game) bool {
	if game == nil {
		return false
	}
	for _, existing := range u.FavouriteGames {
		if existing.ID == game.ID {
			return true
		}
	}
	return false
}

func (u *User) addReview(review *Review) {
	u.Reviews = append(u.Reviews, review)
}

func (u *User) removeReview(review *Review) {
	for i, existing := range u.Reviews {
		if existing == review {
			u.Reviews = append(u.Reviews[:i], u.Reviews[i+1:]...)
			return
		}
	}
}

// HasReview reports whether the review is present in the user's owned
// review collection.
func (u *User) HasReview(review *Review) bool {
	for _, existing := range u.Reviews {
		if existing == review {
			return true
		}
	}
	return false
}
