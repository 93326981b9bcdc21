package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerating/internal/delivery/context"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"go.uber.org/fx"
)

type passwordService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	return &passwordService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdatePassword replaces the caller's password after re-checking the current one.
func (srv *passwordService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password update")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password update rejected", slog.Int64("userID", user.ID))

		return errors.Wrap(domainerrors.ErrIncorrectPassword, "password update")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password update")
		}

		return errors.Wrap(err, "failed to update password")
	}
	srv.log(ctx).Info("Password updated", slog.Int64("userID", user.ID))

	return nil
}
