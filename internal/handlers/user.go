package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles and listings
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	likeRepository   repositories.LikeRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, likeRepo repositories.LikeRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		likeRepository:   likeRepo,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.DELETE("/profile", h.DeleteAccount)
	g.GET("/users", h.ListUsers)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
	g.GET("/users/:id/likes", h.GetLikedMessages)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile edits the authenticated user's profile. The current
// password travels in the request body; the repository verifies it before
// touching anything.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userRepository.UpdateProfile(user.ID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAccount deletes the authenticated user's account and everything
// hanging off it.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	if err := h.userRepository.DeleteAccount(user.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers lists all users, optionally filtered by a 'q' username search
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := c.QueryParam("q")

	var (
		users []models.User
		err   error
	)
	if query == "" {
		users, err = h.userRepository.GetUsers()
	} else {
		users, err = h.userRepository.SearchUsers(query)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCompactList(users))
}

// GetUser retrieves a user's public profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetFollowers lists the users following the given user
func (h *UserHandler) GetFollowers(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}

	users, err := h.followRepository.GetFollowers(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCompactList(users))
}

// GetFollowing lists the users the given user follows
func (h *UserHandler) GetFollowing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}

	users, err := h.followRepository.GetFollowing(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCompactList(users))
}

// GetLikedMessages lists the messages the given user has liked
func (h *UserHandler) GetLikedMessages(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}

	msgs, err := h.likeRepository.LikedMessages(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return uint(id), nil
}
