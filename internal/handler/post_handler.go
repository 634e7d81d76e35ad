package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnect/internal/errors"
	"devconnect/internal/service"
)

// PostHandler handles feed endpoints: posts, likes and comments.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest carries a post or comment body.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

var postMessages = map[string]string{
	"Text": "Text is required",
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PostRequest true "Post body"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorList
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, postMessages)
	}

	post, err := h.postService.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return serverError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Post
// @Failure 401 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return serverError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Post ID"
// @Success 200 {object} errors.Message
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		switch err {
		case service.ErrPostNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		case service.ErrNotAuthorized:
			return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "You are not authorized"})
		default:
			return serverError(err)
		}
	}
	return c.JSON(http.StatusOK, errors.Message{Msg: "Post removed"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.Message
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/like/{post_id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.postService.Like(c.Request().Context(), userID, c.Param("post_id"))
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		case service.ErrAlreadyLiked:
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "You cant like the post more than once"})
		default:
			return serverError(err)
		}
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike godoc
// @Summary Remove the caller's like from a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.Message
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/unlike/{post_id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.postService.Unlike(c.Request().Context(), userID, c.Param("post_id"))
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		case service.ErrNotLiked:
			return echo.NewHTTPError(http.StatusBadRequest, errors.Message{Msg: "Post has not been liked yet"})
		default:
			return serverError(err)
		}
	}
	return c.JSON(http.StatusOK, likes)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Param request body PostRequest true "Comment body"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ErrorList
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/comment/{post_id} [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.List("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(err, postMessages)
	}

	comments, err := h.postService.AddComment(c.Request().Context(), userID, c.Param("post_id"), req.Text)
	if err != nil {
		if err == service.ErrPostNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		}
		return serverError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// RemoveComment godoc
// @Summary Delete a comment from a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {array} model.Comment
// @Failure 401 {object} errors.Message
// @Failure 404 {object} errors.Message
// @Failure 500 {object} errors.Message
// @Router /posts/comment/{post_id}/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	comments, err := h.postService.RemoveComment(c.Request().Context(), userID, c.Param("post_id"), c.Param("comment_id"))
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Post not found"})
		case service.ErrCommentNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.Message{Msg: "Comment does not exist"})
		case service.ErrNotAuthorized:
			return echo.NewHTTPError(http.StatusUnauthorized, errors.Message{Msg: "You are not authorized"})
		default:
			return serverError(err)
		}
	}
	return c.JSON(http.StatusOK, comments)
}
