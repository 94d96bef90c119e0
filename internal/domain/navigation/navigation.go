// Package navigation implements the screen-resolution rules as a small,
// pure decision table over (role, requested screen). It owns the
// guest-redirect rule and the merchant dashboard substitution so each can be
// tested without the delivery layer.
package navigation

import "mazraa/internal/domain/entity"

// Screen is a logical screen name from the fixed navigation set.
type Screen string

const (
	ScreenAuth          Screen = "auth"
	ScreenHome          Screen = "home"
	ScreenFarmer        Screen = "farmer"
	ScreenShop          Screen = "shop"
	ScreenChat          Screen = "chat"
	ScreenProfile       Screen = "profile"
	ScreenTips          Screen = "tips"
	ScreenDiseases      Screen = "diseases"
	ScreenCropInfo      Screen = "cropInfo"
	ScreenNotifications Screen = "notifications"
	ScreenMerchant      Screen = "merchant"
	ScreenHistory       Screen = "history"
)

// known is the fixed set of navigable screens.
var known = map[Screen]struct{}{
	ScreenAuth: {}, ScreenHome: {}, ScreenFarmer: {}, ScreenShop: {},
	ScreenChat: {}, ScreenProfile: {}, ScreenTips: {}, ScreenDiseases: {},
	ScreenCropInfo: {}, ScreenNotifications: {}, ScreenMerchant: {}, ScreenHistory: {},
}

// restrictedForGuest lists the screens a guest may never reach. Requesting
// one yields a redirect prompt whose acceptance logs the guest out.
var restrictedForGuest = map[Screen]struct{}{
	ScreenFarmer:        {},
	ScreenShop:          {},
	ScreenProfile:       {},
	ScreenNotifications: {},
	ScreenHistory:       {},
}

// Outcome tags the kind of resolution produced.
type Outcome string

const (
	// OutcomeShow means the resolved screen should be presented.
	OutcomeShow Outcome = "show"
	// OutcomeGuestRedirect means the target is restricted for guests: the
	// presentation layer shows a login prompt instead, and confirming it
	// logs the guest out back to the auth screen.
	OutcomeGuestRedirect Outcome = "guest_redirect"
)

// Resolution is the result of resolving a navigation request.
type Resolution struct {
	Outcome Outcome
	Screen  Screen // The screen to present (or return to, for redirects).
}

// RestrictedForGuest reports whether the screen is off-limits to guests.
func RestrictedForGuest(s Screen) bool {
	_, ok := restrictedForGuest[s]

	return ok
}

// Known reports whether the screen name is part of the navigation set.
func Known(s Screen) bool {
	_, ok := known[s]

	return ok
}

// Resolve maps (role, requested screen) to the screen actually presented.
//
//   - guests requesting a restricted screen get a redirect prompt;
//   - merchants transparently see their dashboard for home and shop;
//   - unknown screens fall back to home (dashboard for merchants).
func Resolve(role entity.Role, requested Screen) Resolution {
	if role == entity.RoleGuest && RestrictedForGuest(requested) {
		return Resolution{Outcome: OutcomeGuestRedirect, Screen: ScreenAuth}
	}

	if !Known(requested) {
		requested = ScreenHome
	}

	if role == entity.RoleMerchant && (requested == ScreenHome || requested == ScreenShop) {
		return Resolution{Outcome: OutcomeShow, Screen: ScreenMerchant}
	}

	return Resolution{Outcome: OutcomeShow, Screen: requested}
}

// Back resolves the single back action, which always returns home (subject
// to the same merchant substitution).
func Back(role entity.Role) Resolution {
	return Resolve(role, ScreenHome)
}
