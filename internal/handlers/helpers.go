package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
)

var validate = validator.New()

// getUserIDFromContext returns the authenticated user's ID, or 0 for an
// anonymous request.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// currentUser resolves the authenticated actor from the database. Claims
// only carry the ID; admin status and profile fields are always read fresh
// so a revoked account or demoted admin takes effect immediately.
func currentUser(c echo.Context, userRepo repositories.UserRepository) (*models.User, error) {
	id := getUserIDFromContext(c)
	if id == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	user, err := userRepo.GetUserByID(id)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authenticated user not found")
	}
	return user, nil
}

// httpError maps the repositories' typed failures to HTTP errors. Internal
// detail never reaches the response body.
func httpError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateIdentity):
		return echo.NewHTTPError(http.StatusConflict, "Username or email already taken")
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, repositories.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized")
	case errors.Is(err, repositories.ErrInvalidCredential):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, repositories.ErrInvalidOperation):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid operation")
	case errors.Is(err, repositories.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

func toCompactList(users []models.User) []models.UserCompact {
	out := make([]models.UserCompact, len(users))
	for i, u := range users {
		out[i] = u.ToCompact()
	}
	return out
}
