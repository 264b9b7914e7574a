package impl

import (
	"context"
	"testing"
	"time"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	mockRepo "ecomshop/internal/mocks/repository"
	mockService "ecomshop/internal/mocks/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	tokenService *mockService.MockTokenService
	hasher       *mockService.MockPasswordHasher
	emailService *mockService.MockEmailService
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	m := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		tokenService: mockService.NewMockTokenService(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		emailService: mockService.NewMockEmailService(t),
	}
	svc := NewAuthService(m.txManager, m.userRepo, m.sessionRepo, m.tokenService, m.hasher, m.emailService, newDiscardLogger())

	return svc, m
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	m.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					assert.Equal(t, "ada", user.Username)
					assert.Equal(t, "ada@example.com", user.Email)
					assert.Equal(t, "hashed", user.PasswordHash)
					assert.Equal(t, entity.RoleClient, user.Role)
					user.ID = userID
				}).
				Return(nil)
			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(_ context.Context, session *entity.Session) {
					assert.Equal(t, userID, session.OwnerID)
					session.ID = sessionID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	m.tokenService.EXPECT().IssueAccessToken(sessionID, userID).Return("access", nil)
	m.tokenService.EXPECT().IssueRefreshToken(sessionID).Return("refresh", nil)

	output, err := svc.Signup(ctx, usecase.SignupInput{
		Username: "  ada  ",
		Email:    " Ada@Example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	_, err := svc.Signup(ctx, usecase.SignupInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAuthService_Signin_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com", PasswordHash: "hashed", Role: entity.RoleClient}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	m.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			session.ID = sessionID
		}).
		Return(nil)
	m.tokenService.EXPECT().IssueAccessToken(sessionID, userID).Return("access", nil)
	m.tokenService.EXPECT().IssueRefreshToken(sessionID).Return("refresh", nil)

	output, err := svc.Signin(ctx, usecase.SigninInput{Email: "ada@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "access", output.AccessToken)
}

func TestAuthService_Signin_UnknownEmail(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Signin(ctx, usecase.SigninInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.Signin(ctx, usecase.SigninInput{Email: "ada@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Signin_PendingReset(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	token := "pending-token"
	expiry := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "ada@example.com",
		PasswordHash:       "hashed",
		ResetPasswordToken: &token,
		ResetTokenExpiry:   &expiry,
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)

	_, err := svc.Signin(ctx, usecase.SigninInput{Email: "ada@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPendingPasswordReset)
}

func TestAuthService_Signin_ExpiredResetTokenAllowed(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	token := "stale-token"
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{
		ID:                 userID,
		Email:              "ada@example.com",
		PasswordHash:       "hashed",
		Role:               entity.RoleClient,
		ResetPasswordToken: &token,
		ResetTokenExpiry:   &expiry,
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	m.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			session.ID = sessionID
		}).
		Return(nil)
	m.tokenService.EXPECT().IssueAccessToken(sessionID, userID).Return("access", nil)
	m.tokenService.EXPECT().IssueRefreshToken(sessionID).Return("refresh", nil)

	// An abandoned reset request stops blocking sign-in once its token expires.
	output, err := svc.Signin(ctx, usecase.SigninInput{Email: "ada@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_RequestPasswordReset_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	var storedToken string
	m.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			require.NotNil(t, u.ResetPasswordToken)
			require.NotNil(t, u.ResetTokenExpiry)
			assert.WithinDuration(t, time.Now().Add(30*time.Minute), *u.ResetTokenExpiry, time.Minute)
			storedToken = *u.ResetPasswordToken
		}).
		Return(nil)
	m.emailService.EXPECT().
		SendPasswordReset(ctx, "ada@example.com", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, resetToken string) {
			assert.Equal(t, storedToken, resetToken)
		}).
		Return(nil)

	require.NoError(t, svc.RequestPasswordReset(ctx, "ada@example.com"))
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	token := "reset-token"
	expiry := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "ada@example.com",
		PasswordHash:       "old-hash",
		ResetPasswordToken: &token,
		ResetTokenExpiry:   &expiry,
	}

	m.userRepo.EXPECT().FindByResetToken(ctx, token).Return(user, nil)
	m.hasher.EXPECT().Check("new-secret", "old-hash").Return(false)
	m.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			assert.Equal(t, "new-hash", u.PasswordHash)
			assert.Nil(t, u.ResetPasswordToken)
			assert.Nil(t, u.ResetTokenExpiry)
		}).
		Return(nil)

	require.NoError(t, svc.ConfirmPasswordReset(ctx, usecase.ConfirmResetInput{Token: token, NewPassword: "new-secret"}))
}

func TestAuthService_ConfirmPasswordReset_ExpiredToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	token := "stale-token"
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{ID: uuid.New(), ResetPasswordToken: &token, ResetTokenExpiry: &expiry}

	m.userRepo.EXPECT().FindByResetToken(ctx, token).Return(user, nil)

	err := svc.ConfirmPasswordReset(ctx, usecase.ConfirmResetInput{Token: token, NewPassword: "new-secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAuthService_ConfirmPasswordReset_SamePassword(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	token := "reset-token"
	expiry := time.Now().Add(10 * time.Minute)
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash", ResetPasswordToken: &token, ResetTokenExpiry: &expiry}

	m.userRepo.EXPECT().FindByResetToken(ctx, token).Return(user, nil)
	m.hasher.EXPECT().Check("same-secret", "old-hash").Return(true)

	err := svc.ConfirmPasswordReset(ctx, usecase.ConfirmResetInput{Token: token, NewPassword: "same-secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSamePassword)
}
