package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/metrics"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// DirectMessageHandler handles direct-message HTTP requests
type DirectMessageHandler struct {
	dmRepository   repositories.DirectMessageRepository
	userRepository repositories.UserRepository
	metrics        *metrics.Metrics
}

// NewDirectMessageHandler creates a new DirectMessageHandler
func NewDirectMessageHandler(dmRepo repositories.DirectMessageRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *DirectMessageHandler {
	return &DirectMessageHandler{
		dmRepository:   dmRepo,
		userRepository: userRepo,
		metrics:        m,
	}
}

// RegisterDirectMessageRoutes registers DM-related routes
func (h *DirectMessageHandler) RegisterDirectMessageRoutes(g *echo.Group) {
	g.GET("/direct_messages", h.GetConversationPartners)
	g.GET("/direct_messages/:user_id", h.GetConversation)
	g.POST("/direct_messages/:user_id", h.SendDirectMessage)
}

// GetConversationPartners lists everyone the current user has exchanged
// direct messages with.
func (h *DirectMessageHandler) GetConversationPartners(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	partners, err := h.dmRepository.ConversationPartners(user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toCompactList(partners))
}

// GetConversation returns the full exchange with the other user, newest
// first.
func (h *DirectMessageHandler) GetConversation(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	otherID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(otherID); err != nil {
		return httpError(err)
	}

	msgs, err := h.dmRepository.Conversation(user.ID, otherID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

// SendDirectMessage appends a new record to the conversation
func (h *DirectMessageHandler) SendDirectMessage(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	otherID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	var req models.SendDirectMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dm, err := h.dmRepository.Send(user.ID, otherID, req.Msg)
	if err != nil {
		return httpError(err)
	}

	h.metrics.DirectMessagesSent.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusCreated, dm)
}
