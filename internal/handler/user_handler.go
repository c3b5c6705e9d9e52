package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taskauth/internal/errors"
	"taskauth/internal/model"
	"taskauth/internal/service"
)

// UserHandler serves authenticated user endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// ProfileResponse represents a profile response.
type ProfileResponse struct {
	User *model.User `json:"user"`
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags user
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	// The JWT middleware verified the token and stored the subject here.
	userID, ok := c.Get("user").(uuid.UUID)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrInvalidToken.Error())
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ProfileResponse{User: user})
}
