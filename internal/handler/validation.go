package handler

import (
	stderrors "errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	"devconnect/internal/errors"
)

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the echo.Validator installed on the server.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// invalidRequest aggregates every violated rule into the {errors:[{msg,param}]}
// payload. Validation is all-or-nothing; there is no partial report.
func invalidRequest(err error, messages map[string]string) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	list := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		list = append(list, errors.FieldError{Msg: msg, Param: strings.ToLower(fe.Field())})
	}
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorList{Errors: list})
}

// currentUserID reads the verified token's user id off the request context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.User.ID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
	}
	return claims.User.ID, nil
}

// serverError hides the failure behind the opaque {msg:"Server Error"} body;
// detail goes to the server log only.
func serverError(err error) error {
	log.Printf("server error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ServerError)
}
