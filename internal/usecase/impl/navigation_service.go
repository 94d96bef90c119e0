package impl

import (
	"context"
	"log/slog"

	"mazraa/internal/domain/navigation"
	"mazraa/internal/domain/repository"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"go.uber.org/fx"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	content repository.ContentProvider
	logger  *slog.Logger
}

// NavigationServiceParams holds dependencies for navigationService, injected
// by Fx.
type NavigationServiceParams struct {
	fx.In

	Content repository.ContentProvider
	Logger  *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	return &navigationService{
		content: params.Content,
		logger:  params.Logger,
	}
}

// Resolve maps a navigation request through the role/screen rules and
// attaches the localized title, the guest prompt for redirects, and the crop
// payload for the crop-detail screen.
func (srv *navigationService) Resolve(ctx context.Context, actor usecase.Actor, input *usecase.ResolveScreenInput, loc i18n.Locale) (*usecase.ResolveScreenOutput, error) {
	resolution := navigation.Resolve(actor.Role, navigation.Screen(input.Screen))

	output := &usecase.ResolveScreenOutput{
		Outcome: resolution.Outcome,
		Screen:  resolution.Screen,
		Title:   i18n.ScreenTitle(string(resolution.Screen), loc),
	}

	if resolution.Outcome == navigation.OutcomeGuestRedirect {
		output.Prompt = &usecase.GuestPrompt{
			Title:       i18n.MsgGuestPromptTitle.In(loc),
			Message:     i18n.MsgGuestPromptBody.In(loc),
			ConfirmText: i18n.MsgGuestPromptConfirm.In(loc),
		}

		return output, nil
	}

	// The crop-detail screen is only presentable with a known crop; a
	// missing or unknown id resolves to home instead (dashboard for
	// merchants).
	if resolution.Screen == navigation.ScreenCropInfo {
		crop := srv.content.CropByID(loc, input.CropID)
		if crop == nil {
			home := navigation.Resolve(actor.Role, navigation.ScreenHome)
			output.Screen = home.Screen
			output.Title = i18n.ScreenTitle(string(home.Screen), loc)

			return output, nil
		}

		output.Crop = crop
	}

	return output, nil
}

// Back resolves the single back action, which always returns home.
func (srv *navigationService) Back(ctx context.Context, actor usecase.Actor, loc i18n.Locale) (*usecase.ResolveScreenOutput, error) {
	resolution := navigation.Back(actor.Role)

	return &usecase.ResolveScreenOutput{
		Outcome: resolution.Outcome,
		Screen:  resolution.Screen,
		Title:   i18n.ScreenTitle(string(resolution.Screen), loc),
	}, nil
}
