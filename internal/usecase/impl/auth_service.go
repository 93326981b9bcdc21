// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string
}

// fallbackDummyHash is a valid cost-10 bcrypt hash used when hashing the dummy
// password fails.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loginDummyHash hashes a throwaway password once with the configured hasher,
// so its cost matches stored hashes.
func (srv *authService) loginDummyHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash("storerating-login-dummy")
		if err != nil || hash == "" {
			hash = fallbackDummyHash
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

// Register creates a normal_user account. The role is fixed regardless of input.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if exists {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Address:      input.Address,
		Role:         entity.RoleNormalUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	output, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return output, nil
}

// Login verifies the credentials. Unknown email and wrong password fail the same way.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Compare against a hash anyway so unknown emails cost as much as wrong passwords.
			srv.hasher.Check(input.Password, srv.loginDummyHash())
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return output, nil
}

// Me loads the caller's account.
func (srv *authService) Me(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user")
		}

		return nil, errors.Wrap(err, "failed to find current user")
	}

	return user, nil
}

func (srv *authService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	issuedAt := srv.now()

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: issuedAt.Add(srv.tokenService.TokenTTL()),
		User:      user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
