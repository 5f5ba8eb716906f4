package handler

import (
	"github.com/labstack/echo/v4"

	"gameshelf/internal/usecase"
	"gameshelf/pkg/logger"
	"gameshelf/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		return response.Error(c, err)
	}
	logger.Info("Registered user %s", req.Username)
	return response.Created(c, map[string]interface{}{"username": req.Username})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"token": token})
}
