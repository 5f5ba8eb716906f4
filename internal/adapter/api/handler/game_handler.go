package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gameshelf/internal/usecase"
	"gameshelf/pkg/errors"
	"gameshelf/pkg/response"
)

type GameHandler struct {
	browseUseCase *usecase.BrowseUseCase
	homeUseCase   *usecase.HomeUseCase
}

func NewGameHandler(browseUseCase *usecase.BrowseUseCase, homeUseCase *usecase.HomeUseCase) *GameHandler {
	return &GameHandler{
		browseUseCase: browseUseCase,
		homeUseCase:   homeUseCase,
	}
}

// ListGames returns one alphabetical page of the catalog.
func (h *GameHandler) ListGames(c echo.Context) error {
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	games, pagination, err := h.browseUseCase.GetGamesForPage(c.Request().Context(), c.QueryParam("page"), pageSize)
	if err != nil {
		return response.Error(c, err)
	}
	total, err := h.browseUseCase.GetNumberOfGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, games, total, pagination.Page, pagination.PageSize, pagination.NumPages)
}

type gameDetailResponse struct {
	Game          usecase.GameDTO     `json:"game"`
	AverageRating *int                `json:"average_rating"`
	Reviews       []usecase.ReviewDTO `json:"reviews"`
}

// GetGame returns a game's projection plus its average rating and its
// reviews, most recent first.
func (h *GameHandler) GetGame(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid game id", err))
	}

	ctx := c.Request().Context()
	game, err := h.browseUseCase.GetGame(ctx, id)
	if err != nil {
		return response.Error(c, err)
	}
	rating, err := h.browseUseCase.AverageRating(ctx, id)
	if err != nil {
		return response.Error(c, err)
	}
	reviews, err := h.browseUseCase.GetReviewsForGame(ctx, id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, gameDetailResponse{
		Game:          game,
		AverageRating: rating,
		Reviews:       reviews,
	})
}

// MostRecentGames returns up to three games, newest release first.
func (h *GameHandler) MostRecentGames(c echo.Context) error {
	games, err := h.homeUseCase.GetMostRecentGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
	Comment string `json:"comment" validate:"required,min=4"`
}

func (h *GameHandler) CreateReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid game id", err))
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	username := c.Get("username").(string)
	if err := h.browseUseCase.AddReview(c.Request().Context(), id, req.Comment, req.Rating, username); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]interface{}{"game_id": id})
}

func (h *GameHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid game id", err))
	}

	username := c.Get("username").(string)
	if err := h.browseUseCase.DiscardReview(c.Request().Context(), id, username); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"game_id": id})
}
