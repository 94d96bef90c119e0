// Package ai contains clients for the external generative-AI collaborator:
// crop-image diagnosis and the agricultural chat advisor. A deterministic
// offline client is used when no API key is configured.
package ai

import (
	"log/slog"

	"mazraa/config"
	"mazraa/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for AI client construction, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client bundles the two collaborator roles: every concrete client serves both.
type Client interface {
	service.CropDiagnoser
	service.AgriAdvisor
}

// New selects the generative client or the offline fallback based on config.
func New(params Params) Client {
	cfg := params.Config.AI
	if cfg != nil && cfg.APIKey != "" && cfg.Endpoint != "" {
		return newGenerativeClient(cfg, params.Logger)
	}

	params.Logger.Warn("no AI credentials configured, using offline advisor")

	return NewOffline()
}

// NewDiagnoser exposes the client under the CropDiagnoser interface for Fx.
func NewDiagnoser(c Client) service.CropDiagnoser { return c }

// NewAdvisor exposes the client under the AgriAdvisor interface for Fx.
func NewAdvisor(c Client) service.AgriAdvisor { return c }
