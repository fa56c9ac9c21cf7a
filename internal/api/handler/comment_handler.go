package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnet/social-api/internal/api/metrics"
	"github.com/campusnet/social-api/internal/core/ports"
)

// CommentHandler handles comment CRUD.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// Create attaches a comment to a post.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path  string          true  "Post id"
// @Param        body     body  commentRequest  true  "Comment text"
// @Success      201  {object}  domain.Comment
// @Failure      404  {object}  errorResponse
// @Router       /comments/{post_id} [post]
func (h *CommentHandler) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), user.ID, c.Param("post_id"), req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// ListForPost returns a post's comments, oldest first.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        post_id  path  string  true  "Post id"
// @Success      200  {array}  domain.Comment
// @Router       /comments/post/{post_id} [get]
func (h *CommentHandler) ListForPost(c echo.Context) error {
	comments, err := h.commentService.ListForPost(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Update rewrites a comment; only the author may do this.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Comment id"
// @Param        body  body  commentRequest  true  "New content"
// @Success      200  {object}  domain.Comment
// @Failure      403  {object}  errorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete removes a comment; only the author may do this.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.commentService.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "comment deleted"})
}
