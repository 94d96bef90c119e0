package handler

import (
	"log/slog"
	"net/http"

	"mazraa/internal/delivery/http/middleware"
	"mazraa/internal/delivery/http/response"
	"mazraa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.AccountUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// Get returns the caller's identity.
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Update changes the caller's name and phone.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.UpdateProfile(c.Request().Context(), middleware.ActorFromContext(c),
		&usecase.UpdateProfileInput{Name: req.Name, Phone: req.Phone},
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, out.Message)
}

// UpdatePassword changes the caller's password.
func (h *ProfileHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.UpdatePassword(c.Request().Context(), middleware.ActorFromContext(c),
		&usecase.UpdatePasswordInput{CurrentPassword: req.CurrentPassword, NewPassword: req.NewPassword},
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, out.Message)
}

// Delete removes the caller's account.
func (h *ProfileHandler) Delete(c echo.Context) error {
	out, err := h.uc.DeleteAccount(c.Request().Context(), middleware.ActorFromContext(c),
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, out.Message)
}
