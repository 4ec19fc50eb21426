package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

// AdminHandler handles the moderation surface: listing, editing and
// deleting any user or message. Every route checks the same CanModerate
// predicate before doing anything.
type AdminHandler struct {
	userRepository    repositories.UserRepository
	messageRepository repositories.MessageRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userRepo repositories.UserRepository, messageRepo repositories.MessageRepository) *AdminHandler {
	return &AdminHandler{
		userRepository:    userRepo,
		messageRepository: messageRepo,
	}
}

// RegisterAdminRoutes registers admin-related routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/admin/users", h.ListUsers)
	g.GET("/admin/users/:id", h.ShowUser)
	g.PUT("/admin/users/:id", h.EditUser)
	g.DELETE("/admin/users/:id", h.DeleteUser)
	g.DELETE("/admin/messages/:id", h.DeleteMessage)
}

// requireModerator resolves the current user and rejects non-moderators.
func (h *AdminHandler) requireModerator(c echo.Context) (*models.User, error) {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return nil, err
	}
	if !user.CanModerate() {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You're not an admin!")
	}
	return user, nil
}

// ListUsers lists every account for the admin overview
func (h *AdminHandler) ListUsers(c echo.Context) error {
	if _, err := h.requireModerator(c); err != nil {
		return err
	}

	users, err := h.userRepository.GetUsers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ShowUser returns one account with its messages
func (h *AdminHandler) ShowUser(c echo.Context) error {
	if _, err := h.requireModerator(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return httpError(err)
	}
	msgs, err := h.messageRepository.ListByUser(id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user, "messages": msgs})
}

// EditUser edits any profile, including granting or revoking admin
func (h *AdminHandler) EditUser(c echo.Context) error {
	if _, err := h.requireModerator(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.AdminUpdate(id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser deletes any account with full cascade
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if _, err := h.requireModerator(c); err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userRepository.DeleteAccount(id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMessage deletes any message; the moderator passes the same
// ownership check path as everyone else and clears it via CanModerate.
func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	admin, err := h.requireModerator(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageRepository.Delete(id, admin); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
