package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/metrics"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// MessageHandler handles HTTP requests related to messages
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
	metrics           *metrics.Metrics
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, m *metrics.Metrics) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
		metrics:           m,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.CreateMessage)
	g.GET("/messages/:id", h.GetMessage)
	g.DELETE("/messages/:id", h.DeleteMessage)
	g.GET("/users/:id/messages", h.ListUserMessages)
}

// CreateMessage posts a new message for the current user
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messageRepository.Post(user.ID, req.Text)
	if err != nil {
		return httpError(err)
	}

	h.metrics.MessagesPosted.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusCreated, msg)
}

// GetMessage retrieves a single message
func (h *MessageHandler) GetMessage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	msg, err := h.messageRepository.Get(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// DeleteMessage deletes a message; the repository enforces owner-or-moderator.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageRepository.Delete(id, user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUserMessages lists a user's messages, newest first
func (h *MessageHandler) ListUserMessages(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetUserByID(id); err != nil {
		return httpError(err)
	}

	msgs, err := h.messageRepository.ListByUser(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}
