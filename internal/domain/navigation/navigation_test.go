package navigation

import (
	"testing"

	"mazraa/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolve_GuestRestrictedScreens(t *testing.T) {
	restricted := []Screen{ScreenFarmer, ScreenShop, ScreenProfile, ScreenNotifications, ScreenHistory}

	for _, screen := range restricted {
		t.Run(string(screen), func(t *testing.T) {
			res := Resolve(entity.RoleGuest, screen)

			assert.Equal(t, OutcomeGuestRedirect, res.Outcome)
			assert.Equal(t, ScreenAuth, res.Screen)
		})
	}
}

func TestResolve_GuestAllowedScreens(t *testing.T) {
	allowed := []Screen{ScreenHome, ScreenChat, ScreenTips, ScreenDiseases, ScreenCropInfo}

	for _, screen := range allowed {
		t.Run(string(screen), func(t *testing.T) {
			res := Resolve(entity.RoleGuest, screen)

			assert.Equal(t, OutcomeShow, res.Outcome)
			assert.Equal(t, screen, res.Screen)
		})
	}
}

func TestResolve_MerchantDashboardSubstitution(t *testing.T) {
	for _, screen := range []Screen{ScreenHome, ScreenShop} {
		res := Resolve(entity.RoleMerchant, screen)

		assert.Equal(t, OutcomeShow, res.Outcome)
		assert.Equal(t, ScreenMerchant, res.Screen, "merchant %s should resolve to dashboard", screen)
	}

	// Other screens are untouched by the substitution.
	res := Resolve(entity.RoleMerchant, ScreenNotifications)
	assert.Equal(t, ScreenNotifications, res.Screen)
}

func TestResolve_FarmerPassesThrough(t *testing.T) {
	for _, screen := range []Screen{ScreenHome, ScreenFarmer, ScreenShop, ScreenHistory} {
		res := Resolve(entity.RoleFarmer, screen)

		assert.Equal(t, OutcomeShow, res.Outcome)
		assert.Equal(t, screen, res.Screen)
	}
}

func TestResolve_UnknownScreenFallsBackToHome(t *testing.T) {
	res := Resolve(entity.RoleFarmer, Screen("does-not-exist"))
	assert.Equal(t, ScreenHome, res.Screen)

	// Merchants land on their dashboard instead.
	res = Resolve(entity.RoleMerchant, Screen("does-not-exist"))
	assert.Equal(t, ScreenMerchant, res.Screen)
}

func TestBack_AlwaysReturnsHome(t *testing.T) {
	assert.Equal(t, ScreenHome, Back(entity.RoleFarmer).Screen)
	assert.Equal(t, ScreenHome, Back(entity.RoleGuest).Screen)
	assert.Equal(t, ScreenMerchant, Back(entity.RoleMerchant).Screen)
}
