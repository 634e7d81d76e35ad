package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// AuthHandler handles login and current-user lookup.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Email":    "Please include a valid email",
	"Password": "Password is required",
}

// Login godoc
// @Summary Authenticate a user and get a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorList
// @Failure 500 {object} errors.Message
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, loginMessages)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid Credentials"))
		}
		return serverError(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /auth [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "User not found"})
		}
		return serverError(err)
	}

	return c.JSON(http.StatusOK, user)
}
