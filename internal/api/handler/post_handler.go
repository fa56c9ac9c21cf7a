package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnet/social-api/internal/api/metrics"
	"github.com/campusnet/social-api/internal/core/ports"
)

// PostHandler handles post CRUD and likes.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type updatePostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type likeResponse struct {
	PostID string `json:"post_id"`
	Likes  int64  `json:"likes"`
}

// Create publishes a post. The body is multipart form data: a required
// "content" field and an optional "image" file.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        content  formData  string  true   "Post text"
// @Param        image    formData  file    false  "Image attachment"
// @Success      201  {object}  domain.Post
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	content := c.FormValue("content")
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	in := ports.CreatePostInput{AuthorID: user.ID, Content: content}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
		}
		defer f.Close()
		in.Image = &ports.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		}
	}

	post, err := h.postService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	withImage := "false"
	if post.ImageURL != "" {
		withImage = "true"
	}
	metrics.PostsCreatedTotal.WithLabelValues(withImage).Inc()

	return c.JSON(http.StatusCreated, post)
}

// List returns all posts, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update rewrites a post's content; only the author may do this.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "Post id"
// @Param        body  body  updatePostRequest  true  "New content"
// @Success      200  {object}  domain.Post
// @Failure      403  {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post; only the author may do this.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.postService.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "post deleted"})
}

// Like records a like and returns the post's like count.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  likeResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	res, err := h.postService.Like(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeResponse{PostID: res.PostID, Likes: res.Likes})
}
