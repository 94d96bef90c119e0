package impl

import (
	"context"
	"testing"

	"mazraa/internal/domain/navigation"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGuestRedirect(t *testing.T) {
	env := newTestEnv(t)
	svc := env.navigationService()
	ctx := context.Background()

	for _, screen := range []string{"farmer", "shop", "profile", "notifications", "history"} {
		out, err := svc.Resolve(ctx, guestActor(), &usecase.ResolveScreenInput{Screen: screen}, i18n.LocaleArabic)
		require.NoError(t, err)
		assert.Equal(t, navigation.OutcomeGuestRedirect, out.Outcome, screen)
		require.NotNil(t, out.Prompt, screen)
		assert.Equal(t, i18n.MsgGuestPromptTitle.In(i18n.LocaleArabic), out.Prompt.Title)
		assert.Equal(t, i18n.MsgGuestPromptConfirm.In(i18n.LocaleArabic), out.Prompt.ConfirmText)
	}

	// Unrestricted screens stay reachable for guests, with no prompt.
	for _, screen := range []string{"home", "chat", "tips", "diseases"} {
		out, err := svc.Resolve(ctx, guestActor(), &usecase.ResolveScreenInput{Screen: screen}, i18n.LocaleArabic)
		require.NoError(t, err)
		assert.Equal(t, navigation.OutcomeShow, out.Outcome, screen)
		assert.Nil(t, out.Prompt, screen)
	}
}

func TestResolveMerchantSubstitution(t *testing.T) {
	env := newTestEnv(t)
	svc := env.navigationService()
	ctx := context.Background()

	for _, screen := range []string{"home", "shop"} {
		out, err := svc.Resolve(ctx, merchantActor(), &usecase.ResolveScreenInput{Screen: screen}, i18n.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, navigation.ScreenMerchant, out.Screen)
		assert.Equal(t, "Merchant Dashboard", out.Title)
	}

	// Farmers pass through unchanged.
	out, err := svc.Resolve(ctx, farmerActor(), &usecase.ResolveScreenInput{Screen: "shop"}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenShop, out.Screen)
	assert.Equal(t, "المتجر الزراعي", out.Title)
}

func TestResolveCropInfoPayload(t *testing.T) {
	env := newTestEnv(t)
	svc := env.navigationService()
	ctx := context.Background()

	out, err := svc.Resolve(ctx, farmerActor(), &usecase.ResolveScreenInput{Screen: "cropInfo", CropID: "coffee"}, i18n.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenCropInfo, out.Screen)
	require.NotNil(t, out.Crop)
	assert.Equal(t, "Yemeni Coffee", out.Crop.Name)

	// Unknown or missing crop ids resolve to home, not an empty detail
	// screen; merchants land on their dashboard as usual.
	for _, cropID := range []string{"unknown", ""} {
		out, err = svc.Resolve(ctx, farmerActor(), &usecase.ResolveScreenInput{Screen: "cropInfo", CropID: cropID}, i18n.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, navigation.ScreenHome, out.Screen)
		assert.Equal(t, "Home", out.Title)
		assert.Nil(t, out.Crop)
	}

	out, err = svc.Resolve(ctx, merchantActor(), &usecase.ResolveScreenInput{Screen: "cropInfo", CropID: "unknown"}, i18n.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenMerchant, out.Screen)
	assert.Nil(t, out.Crop)
}

func TestResolveUnknownFallsBackHome(t *testing.T) {
	env := newTestEnv(t)
	svc := env.navigationService()
	ctx := context.Background()

	out, err := svc.Resolve(ctx, farmerActor(), &usecase.ResolveScreenInput{Screen: "no-such-screen"}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenHome, out.Screen)

	out, err = svc.Resolve(ctx, merchantActor(), &usecase.ResolveScreenInput{Screen: "no-such-screen"}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenMerchant, out.Screen)
}

func TestBackAlwaysHome(t *testing.T) {
	env := newTestEnv(t)
	svc := env.navigationService()
	ctx := context.Background()

	out, err := svc.Back(ctx, farmerActor(), i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenHome, out.Screen)

	out, err = svc.Back(ctx, merchantActor(), i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenMerchant, out.Screen)
}
