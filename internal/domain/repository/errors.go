package repository

import "errors"

// ErrInvalidEntity is returned when an add operation is handed an entity
// that fails its identity rules (nil game, non-positive ID, empty name).
// The store is left unchanged.
var ErrInvalidEntity = errors.New("entity does not satisfy its identity rules")

// ErrReviewNotAttached is returned by AddReview when the review is missing
// from its user's or its game's review collection. The write is aborted.
var ErrReviewNotAttached = errors.New("review not correctly attached to a user and a game")
