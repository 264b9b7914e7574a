package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	mockRepo "ecomshop/internal/mocks/repository"
	mockService "ecomshop/internal/mocks/service"
	"ecomshop/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func accessClaimsExpiring(in time.Duration) *service.AccessClaims {
	return &service.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(in)),
		},
	}
}

func TestMeService_RefreshSession_NoUser(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	output, err := svc.RefreshSession(context.Background(), usecase.RefreshSessionInput{})

	require.NoError(t, err)
	assert.False(t, output.Rotated)
	assert.Empty(t, output.AccessToken)
}

func TestMeService_RefreshSession_FreshTokenKeepsSession(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	tokenService.EXPECT().VerifyAccessToken("fresh-token").Return(accessClaimsExpiring(2*time.Minute), nil)

	output, err := svc.RefreshSession(context.Background(), usecase.RefreshSessionInput{
		SessionID:   uuid.New(),
		User:        &entity.User{ID: uuid.New()},
		AccessToken: "fresh-token",
	})

	require.NoError(t, err)
	assert.False(t, output.Rotated)
}

func TestMeService_RefreshSession_RotationBoundary(t *testing.T) {
	tests := []struct {
		name       string
		expiresIn  time.Duration
		wantRotate bool
	}{
		{name: "just outside the window", expiresIn: 31 * time.Second, wantRotate: false},
		{name: "just inside the window", expiresIn: 29 * time.Second, wantRotate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			tokenService := mockService.NewMockTokenService(t)
			svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

			ctx := context.Background()
			userID := uuid.New()
			oldSessionID := uuid.New()
			newSessionID := uuid.New()

			tokenService.EXPECT().VerifyAccessToken("token").Return(accessClaimsExpiring(tt.expiresIn), nil)

			if tt.wantRotate {
				sessionRepo.EXPECT().
					CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
					Run(func(_ context.Context, session *entity.Session) {
						assert.Equal(t, userID, session.OwnerID)
						session.ID = newSessionID
					}).
					Return(nil)
				tokenService.EXPECT().IssueAccessToken(newSessionID, userID).Return("new-access", nil)
				tokenService.EXPECT().IssueRefreshToken(newSessionID).Return("new-refresh", nil)
				sessionRepo.EXPECT().DeleteSession(ctx, oldSessionID).Return(nil)
			}

			output, err := svc.RefreshSession(ctx, usecase.RefreshSessionInput{
				SessionID:   oldSessionID,
				User:        &entity.User{ID: userID},
				AccessToken: "token",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantRotate, output.Rotated)
			if tt.wantRotate {
				assert.Equal(t, "new-access", output.AccessToken)
				assert.Equal(t, "new-refresh", output.RefreshToken)
			}
		})
	}
}

func TestMeService_RefreshSession_MissingTokenRotates(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	oldSessionID := uuid.New()
	newSessionID := uuid.New()

	sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			session.ID = newSessionID
		}).
		Return(nil)
	tokenService.EXPECT().IssueAccessToken(newSessionID, userID).Return("new-access", nil)
	tokenService.EXPECT().IssueRefreshToken(newSessionID).Return("new-refresh", nil)
	sessionRepo.EXPECT().DeleteSession(ctx, oldSessionID).Return(nil)

	output, err := svc.RefreshSession(ctx, usecase.RefreshSessionInput{
		SessionID: oldSessionID,
		User:      &entity.User{ID: userID},
	})

	require.NoError(t, err)
	assert.True(t, output.Rotated)
}

func TestMeService_RefreshSession_CreateFailureKeepsOldSession(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	ctx := context.Background()

	// No DeleteSession expectation: the old session must survive a failed rotation.
	sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Return(errors.New("db down"))

	_, err := svc.RefreshSession(ctx, usecase.RefreshSessionInput{
		SessionID: uuid.New(),
		User:      &entity.User{ID: uuid.New()},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionCreationFailed)
}

func TestMeService_RefreshSession_CreatesBeforeDeleting(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	oldSessionID := uuid.New()
	newSessionID := uuid.New()
	created := false

	sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			created = true
			session.ID = newSessionID
		}).
		Return(nil)
	tokenService.EXPECT().IssueAccessToken(newSessionID, userID).Return("new-access", nil)
	tokenService.EXPECT().IssueRefreshToken(newSessionID).Return("new-refresh", nil)
	sessionRepo.EXPECT().
		DeleteSession(ctx, oldSessionID).
		Run(func(_ context.Context, _ uuid.UUID) {
			assert.True(t, created, "the replacement session must exist before the old one is deleted")
		}).
		Return(nil)

	output, err := svc.RefreshSession(ctx, usecase.RefreshSessionInput{
		SessionID: oldSessionID,
		User:      &entity.User{ID: userID},
	})

	require.NoError(t, err)
	assert.True(t, output.Rotated)
}

func TestMeService_SignOut_Success(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().DeleteSession(ctx, sessionID).Return(nil)

	require.NoError(t, svc.SignOut(ctx, sessionID))
}

func TestMeService_SignOut_AlreadyGone(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewMeService(sessionRepo, tokenService, newDiscardLogger())

	ctx := context.Background()
	sessionID := uuid.New()

	sessionRepo.EXPECT().DeleteSession(ctx, sessionID).Return(repository.ErrSessionNotFound)

	require.NoError(t, svc.SignOut(ctx, sessionID))
}
