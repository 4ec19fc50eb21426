package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/metrics"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	metrics          *metrics.Metrics
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		metrics:          m,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
}

// FollowUser makes the current user follow the target. Following twice is
// a no-op; following yourself is rejected.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followRepository.Follow(user.ID, targetID); err != nil {
		return httpError(err)
	}

	h.metrics.FollowRequests.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// UnfollowUser removes the follow edge; absent edges are a no-op.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followRepository.Unfollow(user.ID, targetID); err != nil {
		return httpError(err)
	}

	h.metrics.UnfollowRequests.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowStatus reports both directions of the relation between the
// current user and the target.
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followRepository.IsFollowing(user.ID, targetID)
	if err != nil {
		return httpError(err)
	}
	followedBy, err := h.followRepository.IsFollowedBy(user.ID, targetID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"following": following, "followed_by": followedBy})
}
