package entity

import (
	"errors"
	"time"
)

// TimePostedLayout is the textual format review timestamps are stored in,
// e.g. "Jun 19, 2022 at 14:03:59".
const TimePostedLayout = "Jan 2, 2006 at 15:04:05"

const (
	MinRating = 0
	MaxRating = 5
)

var ErrInvalidReview = errors.New("review requires a user, a game and a rating between 0 and 5")

// Review is a user's rating and comment on a game. In memory a review has
// value identity (user + game); persistent storage assigns a surrogate ID.
// A review is only valid when bidirectionally linked: it must appear in
// both its user's and its game's review collections.
type Review struct {
	User       *User  `json:"-"`
	Game       *Game  `json:"-"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	TimePosted string `json:"time_posted"`
}

// NewReview builds a review and attaches it to both the user's and the
// game's review collections, establishing the bidirectional link the
// repository's add-review path requires.
func NewReview(user *User, game *Game, comment string, rating int) (*Review, error) {
	if user == nil || game == nil || rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidReview
	}
	review := &Review{
		User:       user,
		Game:       game,
		Rating:     rating,
		Comment:    comment,
		TimePosted: time.Now().Format(TimePostedLayout),
	}
	user.addReview(review)
	game.addReview(review)
	return review, nil
}

// RestoreReview rebuilds a stored review with its original timestamp and
// re-establishes the bidirectional link. Storage adapters use it when
// materializing entity graphs.
func RestoreReview(user *User, game *Game, comment string, rating int, timePosted string) *Review {
	review := &Review{
		User:       user,
		Game:       game,
		Rating:     rating,
		Comment:    comment,
		TimePosted: timePosted,
	}
	user.addReview(review)
	game.addReview(review)
	return review
}

// DetachReview removes the review from both owning collections. Callers
// detach before asking the repository to remove the review, so the
// bidirectional-link invariant holds for all remaining data.
func DetachReview(review *Review) {
	if review == nil {
		return
	}
	if review.User != nil {
		review.User.removeReview(review)
	}
	if review.Game != nil {
		review.Game.removeReview(review)
	}
}

// PostedTime parses the textual timestamp. The zero time is returned for
// a malformed timestamp.
func (r *Review) PostedTime() time.Time {
	t, err := time.Parse(TimePostedLayout, r.TimePosted)
	if err != nil {
		return time.Time{}
	}
	return t
}
