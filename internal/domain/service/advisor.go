package service

import (
	"context"

	"mazraa/internal/domain/entity"
)

// CropDiagnoser is the external generative-AI collaborator for image-based
// crop disease diagnosis. The result is an opaque payload to the stores; the
// caller awaits the call and converts failures to one generic localized
// error, with no retry.
type CropDiagnoser interface {
	// Diagnose analyzes a base64-encoded crop image and returns a
	// structured diagnosis.
	Diagnose(ctx context.Context, imageBase64 string) (*entity.DiagnosisResult, error)
}

// AgriAdvisor is the external generative-AI collaborator for free-text
// agricultural chat.
type AgriAdvisor interface {
	// Reply continues a conversation: prior turns plus the new message in,
	// reply text out.
	Reply(ctx context.Context, history []entity.ChatMessage, message string) (string, error)
}
