package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnet/social-api/internal/core/ports"
)

// UserHandler handles profile, follow graph, feed, and search requests.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Bio        *string `json:"bio" validate:"omitempty,max=500"`
	ProfilePic *string `json:"profile_pic" validate:"omitempty,max=2048"`
}

// Me returns the authenticated user's own record.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe mutates bio and profile picture only.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, ports.ProfileUpdate{
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Get returns a user's public profile.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Follow records a follow edge from the principal to the target user.
//
// @Summary      Follow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id to follow"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/follow [post]
func (h *UserHandler) Follow(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.userService.Follow(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "followed"})
}

// Unfollow removes the follow edge; unfollowing someone not followed is a
// no-op.
//
// @Summary      Unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id to unfollow"
// @Success      200  {object}  map[string]string
// @Router       /users/{id}/unfollow [post]
func (h *UserHandler) Unfollow(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.userService.Unfollow(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "unfollowed"})
}

// Feed returns posts from followed users, newest first.
//
// @Summary      Get own feed
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  errorResponse
// @Router       /users/me/feed [get]
func (h *UserHandler) Feed(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	posts, err := h.userService.Feed(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Search finds users by username or email substring.
//
// @Summary      Search users
// @Tags         users
// @Produce      json
// @Param        query  path  string  true  "Search string"
// @Success      200  {array}  domain.User
// @Router       /users/search/{query} [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.userService.Search(c.Request().Context(), c.Param("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
