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

// NavigationHandler resolves navigation requests through the role/screen
// state machine.
type NavigationHandler struct {
	uc     usecase.NavigationUsecase
	logger *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler, injected by Fx.
func NewNavigationHandler(uc usecase.NavigationUsecase, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{uc: uc, logger: logger}
}

// Resolve maps a requested screen to the screen actually presented.
func (h *NavigationHandler) Resolve(c echo.Context) error {
	out, err := h.uc.Resolve(c.Request().Context(), middleware.ActorFromContext(c),
		&usecase.ResolveScreenInput{
			Screen: c.QueryParam("screen"),
			CropID: c.QueryParam("cropId"),
		},
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Back resolves the single back action.
func (h *NavigationHandler) Back(c echo.Context) error {
	out, err := h.uc.Back(c.Request().Context(), middleware.ActorFromContext(c),
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}
