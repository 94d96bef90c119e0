package impl

import (
	"context"
	"testing"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/i18n"
	sqlitestore "mazraa/internal/infra/persistence/sqlite"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	session, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "فاطمة علي",
		Username: "fatima",
		Password: "s3cret-pass",
		Role:     entity.RoleFarmer,
		Phone:    "777-0200",
	})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, "fatima", session.User.Username)
	assert.Equal(t, entity.RoleFarmer, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	// The new account can log back in with its password.
	again, err := svc.Login(ctx, &usecase.LoginInput{Username: "fatima", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, again.User.ID)
}

func TestRegisterDuplicateUsernameLeavesDirectoryUnchanged(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "منتحل",
		Username: "saleh",
		Password: "another-pass",
		Role:     entity.RoleFarmer,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	// The original account still logs in with its original password, and
	// the impostor's password opens nothing.
	session, err := svc.Login(ctx, &usecase.LoginInput{Username: "saleh", Password: sqlitestore.SeedPassword})
	require.NoError(t, err)
	assert.Equal(t, sqlitestore.SeedFarmerID, session.User.ID)

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "saleh", Password: "another-pass"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestRegisterRejectsGuestIdentity(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		Name:     "x",
		Username: entity.GuestUsername,
		Password: "pass",
		Role:     entity.RoleFarmer,
	})
	assert.Error(t, err)

	_, err = svc.Register(ctx, &usecase.RegisterInput{
		Name:     "x",
		Username: "someone",
		Password: "pass",
		Role:     entity.RoleGuest,
	})
	assert.Error(t, err)
}

func TestLoginGuestSentinel(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()

	// Any password opens a guest session for the sentinel username.
	session, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "guest", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, session.User.ID)
	assert.Equal(t, entity.RoleGuest, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Username: "aisha", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = svc.Login(context.Background(), &usecase.LoginInput{Username: "nobody", Password: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	out, err := svc.UpdateProfile(ctx, farmerActor(), &usecase.UpdateProfileInput{
		Name:  "صالح المحدث",
		Phone: "777-0999",
	}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, i18n.MsgProfileUpdated.In(i18n.LocaleArabic), out.Message)

	profile, err := svc.GetProfile(ctx, farmerActor())
	require.NoError(t, err)
	assert.Equal(t, "صالح المحدث", profile.Name)
	assert.Equal(t, "777-0999", profile.Phone)

	_, err = svc.UpdateProfile(ctx, guestActor(), &usecase.UpdateProfileInput{Name: "x"}, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrGuestForbidden))
}

func TestUpdatePasswordWrongCurrentLeavesHashUntouched(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	before, err := env.users.FindByID(ctx, sqlitestore.SeedFarmerID)
	require.NoError(t, err)

	_, err = svc.UpdatePassword(ctx, farmerActor(), &usecase.UpdatePasswordInput{
		CurrentPassword: "not-the-password",
		NewPassword:     "newpass123",
	}, i18n.LocaleEnglish)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongCurrentPassword))

	after, err := env.users.FindByID(ctx, sqlitestore.SeedFarmerID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	// With the right current password the change goes through.
	out, err := svc.UpdatePassword(ctx, farmerActor(), &usecase.UpdatePasswordInput{
		CurrentPassword: sqlitestore.SeedPassword,
		NewPassword:     "newpass123",
	}, i18n.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, i18n.MsgPasswordChanged.In(i18n.LocaleEnglish), out.Message)

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "saleh", Password: "newpass123"})
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	ctx := context.Background()

	_, err := svc.DeleteAccount(ctx, farmerActor(), i18n.LocaleArabic)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "saleh", Password: sqlitestore.SeedPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = svc.DeleteAccount(ctx, guestActor(), i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrGuestForbidden))
}

func TestGetProfileGuest(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()

	profile, err := svc.GetProfile(context.Background(), guestActor())
	require.NoError(t, err)
	assert.True(t, profile.IsGuest())
	assert.Equal(t, entity.GuestUsername, profile.Username)
}
