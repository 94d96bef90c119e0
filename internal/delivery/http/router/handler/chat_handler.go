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

// ChatHandler holds dependencies for the AI advisor chat handler.
type ChatHandler struct {
	uc     usecase.AdvisorUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.AdvisorUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type chatRequest struct {
	History []entity.ChatMessage `json:"history"`
	Message string               `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat returns the advisor's reply to one conversation turn. Upstream
// failures come back as a normal reply carrying the fallback text.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.uc.Chat(c.Request().Context(),
		&usecase.ChatInput{History: req.History, Message: req.Message},
		middleware.LocaleFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chatResponse{Reply: reply}, "")
}
