package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// UserHandler handles registration.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please include a valid email",
	"Password": "Please enter a password with 6 or more characters",
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorList
// @Failure 500 {object} errors.Message
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, registerMessages)
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == service.ErrUserExists {
			return echo.NewHTTPError(http.StatusBadRequest, errors.List("User already exists"))
		}
		return serverError(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}
