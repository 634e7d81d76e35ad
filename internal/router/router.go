package router

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devconnect/internal/auth"
	"devconnect/internal/config"
	"devconnect/internal/errors"
	"devconnect/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
	revocations auth.RevocationStore,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))

	e.Validator = handler.NewValidator()

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API Running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The token travels in the x-auth-token header, not an Authorization
	// bearer scheme.
	authn := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:x-auth-token",
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return &auth.Claims{}
			},
			ErrorHandler: func(c echo.Context, err error) error {
				if stderrors.Is(err, echojwt.ErrJWTMissing) {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "No token, authorization denied"})
				}
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
			},
		}),
		revocationCheck(revocations),
	}

	api := e.Group("/api")

	// Registration
	api.POST("/users", userHandler.Register)

	// Auth
	api.POST("/auth", authHandler.Login)
	api.GET("/auth", authHandler.CurrentUser, authn...)

	// Profiles
	api.GET("/profile", profileHandler.All)
	api.GET("/profile/user/:user_id", profileHandler.ByUser)
	api.GET("/profile/github/:username", profileHandler.GithubRepos)
	api.GET("/profile/me", profileHandler.Me, authn...)
	api.POST("/profile", profileHandler.Upsert, authn...)
	api.DELETE("/profile", profileHandler.DeleteAccount, authn...)
	api.PUT("/profile/experience", profileHandler.AddExperience, authn...)
	api.DELETE("/profile/experience/:exp_id", profileHandler.RemoveExperience, authn...)
	api.PUT("/profile/education", profileHandler.AddEducation, authn...)
	api.DELETE("/profile/education/:edu_id", profileHandler.RemoveEducation, authn...)

	// Posts
	api.POST("/posts", postHandler.Create, authn...)
	api.GET("/posts", postHandler.List, authn...)
	api.GET("/posts/:id", postHandler.Get, authn...)
	api.DELETE("/posts/:id", postHandler.Delete, authn...)
	api.PUT("/posts/like/:post_id", postHandler.Like, authn...)
	api.PUT("/posts/unlike/:post_id", postHandler.Unlike, authn...)
	api.POST("/posts/comment/:post_id", postHandler.AddComment, authn...)
	api.DELETE("/posts/comment/:post_id/:comment_id", postHandler.RemoveComment, authn...)
}

// revocationCheck rejects tokens of users marked revoked (deleted accounts
// whose 10-day tokens are still circulating). Runs after JWT verification.
func revocationCheck(store auth.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
			}
			revoked, err := store.IsUserRevoked(c.Request().Context(), claims.User.ID)
			if err == nil && revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "Token is not valid"})
			}
			return next(c)
		}
	}
}
