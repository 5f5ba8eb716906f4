package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gameshelf/internal/usecase"
	"gameshelf/pkg/errors"
	"gameshelf/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	authUseCase    *usecase.AuthUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, authUseCase *usecase.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		authUseCase:    authUseCase,
	}
}

type profileResponse struct {
	User                usecase.UserDTO    `json:"user"`
	MostRecentReview    *usecase.ReviewDTO `json:"most_recent_review"`
	MostRecentFavourite *usecase.GameDTO   `json:"most_recent_favourite"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	username := c.Get("username").(string)

	user, err := h.authUseCase.GetUser(ctx, username)
	if err != nil {
		return response.Error(c, err)
	}
	review, err := h.profileUseCase.GetMostRecentReview(ctx, username)
	if err != nil {
		return response.Error(c, err)
	}
	favourite, err := h.profileUseCase.GetMostRecentFavourite(ctx, username)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profileResponse{
		User:                user,
		MostRecentReview:    review,
		MostRecentFavourite: favourite,
	})
}

func (h *ProfileHandler) GetReviews(c echo.Context) error {
	username := c.Get("username").(string)
	reviews, err := h.profileUseCase.GetUserReviews(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ProfileHandler) GetFavourites(c echo.Context) error {
	username := c.Get("username").(string)
	favourites, err := h.profileUseCase.GetFavourites(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favourites)
}

func (h *ProfileHandler) AddFavourite(c echo.Context) error {
	gameID, err := strconv.Atoi(c.Param("gameId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid game id", err))
	}

	username := c.Get("username").(string)
	if err := h.profileUseCase.AddGameToFavourites(c.Request().Context(), gameID, username); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]interface{}{"game_id": gameID})
}

func (h *ProfileHandler) RemoveFavourite(c echo.Context) error {
	gameID, err := strconv.Atoi(c.Param("gameId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid game id", err))
	}

	username := c.Get("username").(string)
	if err := h.profileUseCase.RemoveGameFromFavourites(c.Request().Context(), gameID, username); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"game_id": gameID})
}
