package handler

import (
	"log/slog"
	"net/http"

	"mazraa/internal/delivery/http/middleware"
	"mazraa/internal/delivery/http/response"
	"mazraa/internal/domain/entity"
	"mazraa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiagnosisHandler holds dependencies for the AI diagnosis handlers.
type DiagnosisHandler struct {
	uc     usecase.DiagnosisUsecase
	logger *slog.Logger
}

// NewDiagnosisHandler is the constructor for DiagnosisHandler, injected by Fx.
func NewDiagnosisHandler(uc usecase.DiagnosisUsecase, logger *slog.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{uc: uc, logger: logger}
}

type analyzeRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type saveDiagnosisRequest struct {
	ImageBase64 string                 `json:"image_base64" validate:"required"`
	Result      entity.DiagnosisResult `json:"result" validate:"required"`
}

// Analyze runs the AI diagnosis on a submitted crop image.
func (h *DiagnosisHandler) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diagnosis input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.Analyze(c.Request().Context(), middleware.ActorFromContext(c),
		&usecase.AnalyzeInput{ImageBase64: req.ImageBase64})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Save appends a diagnosis record to the caller's history.
func (h *DiagnosisHandler) Save(c echo.Context) error {
	var req saveDiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diagnosis record")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.uc.Save(c.Request().Context(), middleware.ActorFromContext(c),
		&usecase.SaveDiagnosisInput{ImageBase64: req.ImageBase64, Result: req.Result})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Diagnosis saved")
}

// History returns the caller's saved diagnoses, newest first.
func (h *DiagnosisHandler) History(c echo.Context) error {
	records, err := h.uc.History(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}
