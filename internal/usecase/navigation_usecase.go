package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/navigation"
	"mazraa/internal/i18n"
)

// ResolveScreenInput is a navigation request: a logical screen name plus the
// optional crop payload for the crop-detail screen.
type ResolveScreenInput struct {
	Screen string
	CropID string
}

// GuestPrompt is the localized redirect prompt shown to guests requesting a
// restricted screen. Confirming it logs the guest out.
type GuestPrompt struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ConfirmText string `json:"confirm_text"`
}

// ResolveScreenOutput is the resolved navigation outcome.
type ResolveScreenOutput struct {
	Outcome navigation.Outcome `json:"outcome"`
	Screen  navigation.Screen  `json:"screen"`
	Title   string             `json:"title"`
	Prompt  *GuestPrompt       `json:"prompt,omitempty"`
	Crop    *entity.CropInfo   `json:"crop,omitempty"`
}

// NavigationUsecase resolves navigation requests through the role/screen
// state machine, attaching localized titles and payloads.
type NavigationUsecase interface {
	// Resolve maps a navigation request to the screen actually presented.
	Resolve(ctx context.Context, actor Actor, input *ResolveScreenInput, loc i18n.Locale) (*ResolveScreenOutput, error)

	// Back resolves the single back action, which always returns home.
	Back(ctx context.Context, actor Actor, loc i18n.Locale) (*ResolveScreenOutput, error)
}
