package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/metrics"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	userRepository repositories.UserRepository
	metrics        *metrics.Metrics
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		userRepository: userRepo,
		metrics:        m,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/messages/:id/like", h.LikeMessage)
	g.DELETE("/messages/:id/like", h.UnlikeMessage)
	g.GET("/messages/:id/likes", h.GetLikedBy)
	g.GET("/messages/:id/like/status", h.GetLikeStatus)
}

// LikeMessage likes a message. Liking your own message is rejected; liking
// twice is a no-op.
func (h *LikeHandler) LikeMessage(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.likeRepository.Like(user.ID, messageID); err != nil {
		return httpError(err)
	}

	h.metrics.LikeRequests.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusOK, echo.Map{"liked": true})
}

// UnlikeMessage removes a like; absent likes are a no-op.
func (h *LikeHandler) UnlikeMessage(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.likeRepository.Unlike(user.ID, messageID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": false})
}

// GetLikedBy lists the users who liked a message
func (h *LikeHandler) GetLikedBy(c echo.Context) error {
	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	users, err := h.likeRepository.LikedBy(messageID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCompactList(users))
}

// GetLikeStatus reports whether the current user has liked the message
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	liked, err := h.likeRepository.HasLiked(user.ID, messageID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}
