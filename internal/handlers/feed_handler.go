package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// FeedHandler serves the home timeline
type FeedHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the most recent messages from the current user and the
// users they follow, newest first. Anonymous callers get the empty
// anonymous payload instead; the client renders its landing view from it.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return c.JSON(http.StatusOK, echo.Map{
			"anonymous": true,
			"messages":  []models.Message{},
		})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > repositories.DefaultTimelineLimit {
		limit = repositories.DefaultTimelineLimit
	}

	msgs, err := h.messageRepository.HomeTimeline(currentUserID, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"anonymous": false,
		"messages":  msgs,
	})
}
