package handler

import (
	"log/slog"
	"net/http"

	"mazraa/internal/delivery/http/middleware"
	"mazraa/internal/delivery/http/response"
	"mazraa/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the static reference content in the request locale.
type ContentHandler struct {
	content repository.ContentProvider
	logger  *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(content repository.ContentProvider, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{content: content, logger: logger}
}

// Crops returns the crop encyclopedia.
func (h *ContentHandler) Crops(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.content.Crops(middleware.LocaleFromContext(c)), "")
}

// CropByID returns a single crop entry.
func (h *ContentHandler) CropByID(c echo.Context) error {
	crop := h.content.CropByID(middleware.LocaleFromContext(c), c.Param("id"))
	if crop == nil {
		return response.NotFound(c, "CROP_NOT_FOUND", "Unknown crop")
	}

	return response.Success(c, http.StatusOK, crop, "")
}

// Tips returns the farming tips.
func (h *ContentHandler) Tips(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.content.Tips(middleware.LocaleFromContext(c)), "")
}

// Diseases returns the disease catalog.
func (h *ContentHandler) Diseases(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.content.Diseases(middleware.LocaleFromContext(c)), "")
}

// Slides returns the home carousel slides.
func (h *ContentHandler) Slides(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.content.Slides(middleware.LocaleFromContext(c)), "")
}
