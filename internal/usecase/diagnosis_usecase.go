package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/i18n"
)

// AnalyzeInput carries the crop image to diagnose.
type AnalyzeInput struct {
	ImageBase64 string
}

// SaveDiagnosisInput carries a diagnosis the farmer chose to keep.
type SaveDiagnosisInput struct {
	ImageBase64 string
	Result      entity.DiagnosisResult
}

// DiagnosisUsecase defines the interface for the AI diagnosis flow.
type DiagnosisUsecase interface {
	// Analyze runs the external AI diagnosis on a crop image. Farmer-only.
	// Failures surface as one generic localized error, never retried.
	Analyze(ctx context.Context, actor Actor, input *AnalyzeInput) (*entity.DiagnosisResult, error)

	// Save appends a timestamped record to the farmer's history.
	Save(ctx context.Context, actor Actor, input *SaveDiagnosisInput) (*entity.SavedDiagnosis, error)

	// History returns the caller's saved diagnoses, newest first.
	History(ctx context.Context, actor Actor) ([]*entity.SavedDiagnosis, error)
}

// ChatInput carries one advisor conversation turn.
type ChatInput struct {
	History []entity.ChatMessage
	Message string
}

// AdvisorUsecase defines the interface for the AI chat advisor.
type AdvisorUsecase interface {
	// Chat returns the advisor's reply. On collaborator failure the reply
	// is the localized fallback string; the call itself does not error.
	Chat(ctx context.Context, input *ChatInput, loc i18n.Locale) (string, error)
}
