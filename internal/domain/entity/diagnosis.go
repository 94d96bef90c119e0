package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosisResult is the structured outcome of an AI crop-image diagnosis.
// It is produced by the external generative-AI collaborator and treated as
// an opaque payload by the stores.
type DiagnosisResult struct {
	DiseaseName          string   `json:"disease_name"`
	Confidence           int      `json:"confidence"` // 0-100.
	Symptoms             []string `json:"symptoms"`
	RecommendedTreatment string   `json:"recommended_treatment"`
	PreventiveMeasures   string   `json:"preventive_measures"`
}

// SavedDiagnosis is a farmer-owned record of a diagnosis run, kept
// append-only and served newest first.
type SavedDiagnosis struct {
	ID      uuid.UUID       `json:"id"`
	UserID  uuid.UUID       `json:"user_id"` // The owning farmer.
	Image   string          `json:"image"`   // Base64 image payload as submitted.
	Result  DiagnosisResult `json:"result"`
	SavedAt time.Time       `json:"saved_at"`
}

// ChatMessage is a single turn in an advisor conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model".
	Text string `json:"text"`
}
