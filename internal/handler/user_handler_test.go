package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("aggregates every validation failure", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewUserHandler(svc)

		c, _ := newTestContext(t, `{"name":"","email":"not-an-email","password":"123"}`)
		err := h.Register(c)

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)

		list, ok := he.Message.(errors.ErrorList)
		assert.True(t, ok)
		assert.Len(t, list.Errors, 3)
		assert.Contains(t, list.Errors, errors.FieldError{Msg: "Name is required", Param: "name"})
		assert.Contains(t, list.Errors, errors.FieldError{Msg: "Please include a valid email", Param: "email"})
		assert.Contains(t, list.Errors, errors.FieldError{Msg: "Please enter a password with 6 or more characters", Param: "password"})
		svc.AssertNotCalled(t, "Register")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "password123").
			Return("", service.ErrUserExists)
		h := NewUserHandler(svc)

		c, _ := newTestContext(t, `{"name":"Jane","email":"jane@example.com","password":"password123"}`)
		err := h.Register(c)

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, errors.List("User already exists"), he.Message)
	})

	t.Run("success returns the token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Jane", "jane@example.com", "password123").
			Return("issued-jwt", nil)
		h := NewUserHandler(svc)

		c, rec := newTestContext(t, `{"name":"Jane","email":"jane@example.com","password":"password123"}`)
		err := h.Register(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "issued-jwt", resp.Token)
	})
}
