// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/domain/repository"
	"mazraa/internal/domain/service"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new directory entry and immediately logs the caller in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	if input.Username == entity.GuestUsername || !input.Role.Registrable() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unregistrable username or role")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	entry := &entity.DirectoryEntry{
		User: entity.User{
			ID:       uuid.New(),
			Name:     input.Name,
			Username: input.Username,
			Role:     input.Role,
			Phone:    input.Phone,
		},
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrUsernameAlreadyTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, errors.Wrap(err, "create directory entry")
	}

	srv.logger.Info("account registered", slog.String("username", entry.Username), slog.Any("role", entry.Role))

	return srv.openSession(entry.Identity())
}

// Login authenticates against the directory, or establishes a guest session
// for the sentinel username.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	if input.Username == entity.GuestUsername {
		return srv.openSession(entity.GuestUser())
	}

	entry, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "lookup directory entry")
	}

	if !srv.hasher.Check(input.Password, entry.PasswordHash) {
		srv.logger.Warn("failed login attempt", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.openSession(entry.Identity())
}

// GetProfile returns the caller's identity.
func (srv *accountService) GetProfile(ctx context.Context, actor usecase.Actor) (*entity.User, error) {
	if actor.IsGuest() {
		return entity.GuestUser(), nil
	}

	entry, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "lookup profile")
	}

	return entry.Identity(), nil
}

// UpdateProfile updates name and phone on the directory entry.
func (srv *accountService) UpdateProfile(ctx context.Context, actor usecase.Actor, input *usecase.UpdateProfileInput, loc i18n.Locale) (*usecase.MessageOutput, error) {
	if actor.IsGuest() {
		return nil, domainerrors.ErrGuestForbidden
	}

	entry, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "lookup directory entry")
	}

	entry.Name = input.Name
	entry.Phone = input.Phone
	if err := srv.userRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "update directory entry")
	}

	return &usecase.MessageOutput{Message: i18n.MsgProfileUpdated.In(loc)}, nil
}

// UpdatePassword overwrites the stored password after verifying the current
// one. The stored hash is untouched when the current password is wrong.
func (srv *accountService) UpdatePassword(ctx context.Context, actor usecase.Actor, input *usecase.UpdatePasswordInput, loc i18n.Locale) (*usecase.MessageOutput, error) {
	if actor.IsGuest() {
		return nil, domainerrors.ErrGuestForbidden
	}

	entry, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "lookup directory entry")
	}

	if !srv.hasher.Check(input.CurrentPassword, entry.PasswordHash) {
		return nil, domainerrors.ErrWrongCurrentPassword
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "hash new password")
	}

	entry.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "store new password")
	}

	return &usecase.MessageOutput{Message: i18n.MsgPasswordChanged.In(loc)}, nil
}

// DeleteAccount removes the caller's directory entry and ends the session.
func (srv *accountService) DeleteAccount(ctx context.Context, actor usecase.Actor, loc i18n.Locale) (*usecase.MessageOutput, error) {
	if actor.IsGuest() {
		return nil, domainerrors.ErrGuestForbidden
	}

	if err := srv.userRepo.Delete(ctx, actor.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "delete directory entry")
	}

	srv.logger.Info("account deleted", slog.Any("userID", actor.ID))

	return &usecase.MessageOutput{Message: i18n.MsgAccountDeleted.In(loc)}, nil
}

// openSession issues tokens for the identity. The identity never carries
// credentials by construction.
func (srv *accountService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.SessionOutput{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
