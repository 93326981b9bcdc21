package impl

import (
	"context"
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/auth"
	mockRepo "storerating/internal/mocks/repository"
	mockSvc "storerating/internal/mocks/service"
	"storerating/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alexandra Montgomery Smith",
		Email:    "  Alex@Example.COM ",
		Password: "Valid1!Pass",
		Address:  strPtr("221B Baker Street"),
	}

	fx.userRepo.EXPECT().ExistsByEmail(ctx, "alex@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Valid1!Pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(int64(42), entity.RoleNormalUser).Return("signed-token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "alex@example.com", output.User.Email)
	assert.Equal(t, entity.RoleNormalUser, output.User.Role)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.WithinDuration(t, time.Now().Add(time.Hour), output.ExpiresAt, time.Minute)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Someone With A Long Enough Name",
		Email:    "taken@example.com",
		Password: "Valid1!Pass",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_DuplicateRaceOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmail(ctx, "race@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Someone With A Long Enough Name",
		Email:    "race@example.com",
		Password: "Valid1!Pass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Hash("storerating-login-dummy").Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("Valid1!Pass", "dummy-hash").Return(false).Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Valid1!Pass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownEmailFallbackHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("storerating-login-dummy").Return("", errors.New("hash failed"))
	fx.hasher.EXPECT().Check("Valid1!Pass", fallbackDummyHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Valid1!Pass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(&entity.User{ID: 7, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("Wrong1!Pass", "hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alex@example.com", Password: "Wrong1!Pass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alex@example.com", Password: "Valid1!Pass"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Me(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3, Role: entity.RoleStoreOwner}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Me(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, user.Role)

	_, err = fx.service.Me(ctx, 4)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_RegisterThenLogin_TokensCarrySameIdentity(t *testing.T) {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "integration-secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
	}
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	var stored *entity.User
	userRepo.EXPECT().ExistsByEmail(ctx, "pat@example.com").Return(false, nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 99
			stored = user
		}).
		Return(nil)

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Patricia Longname Example",
		Email:    "pat@example.com",
		Password: "Valid1!Pass",
	})
	require.NoError(t, err)

	userRepo.EXPECT().FindByEmail(ctx, "pat@example.com").RunAndReturn(func(context.Context, string) (*entity.User, error) {
		return stored, nil
	})

	loggedIn, err := service.Login(ctx, &usecase.LoginInput{Email: "PAT@example.com", Password: "Valid1!Pass"})
	require.NoError(t, err)

	first, err := tokenService.ValidateToken(registered.Token)
	require.NoError(t, err)
	second, err := tokenService.ValidateToken(loggedIn.Token)
	require.NoError(t, err)

	assert.Equal(t, int64(99), first.UserID)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, entity.RoleNormalUser, first.Role)
	assert.Equal(t, first.Role, second.Role)
}
