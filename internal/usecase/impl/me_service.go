package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rotationWindow is how close to expiry an access token may get before the
// whole session is rotated instead of merely re-minting the access token.
const rotationWindow = 30 * time.Second

// meService implements the MeUsecase interface.
type meService struct {
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewMeService is the constructor for meService.
func NewMeService(
	sessionRepo repository.SessionRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.MeUsecase {
	return &meService{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *meService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshSession rotates the session when the access token is missing, invalid,
// or inside the rotation window. The replacement session is persisted before
// the old one is deleted, so a failed rotation never locks the user out.
func (srv *meService) RefreshSession(ctx context.Context, input usecase.RefreshSessionInput) (*usecase.RefreshSessionOutput, error) {
	if input.User == nil || input.SessionID == uuid.Nil {
		return &usecase.RefreshSessionOutput{}, nil
	}

	if !srv.needsRotation(input.AccessToken) {
		return &usecase.RefreshSessionOutput{}, nil
	}

	srv.log(ctx).Info("Rotating session", slog.Any("user_id", input.User.ID), slog.Any("session_id", input.SessionID))

	// 1. Persist the replacement session first. If this fails the old session
	// stays valid and the client retries with the cookie it already holds.
	newSession := &entity.Session{OwnerID: input.User.ID}
	if err := srv.sessionRepo.CreateSession(ctx, newSession); err != nil {
		srv.log(ctx).Error("Failed to create replacement session", slog.Any("error", err), slog.Any("user_id", input.User.ID))

		return nil, errors.Wrap(domainerrors.ErrSessionCreationFailed, err.Error())
	}

	// 2. Mint the token pair for the replacement.
	accessToken, err := srv.tokenService.IssueAccessToken(newSession.ID, input.User.ID)
	if err != nil {
		srv.discard(ctx, newSession.ID)

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(newSession.ID)
	if err != nil {
		srv.discard(ctx, newSession.ID)

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	// 3. Retire the old session. Both tokens minted for it die with the row.
	if err := srv.sessionRepo.DeleteSession(ctx, input.SessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Error("Failed to delete rotated session", slog.Any("error", err), slog.Any("session_id", input.SessionID))

		return nil, errors.Wrap(err, "failed to delete rotated session")
	}
	srv.log(ctx).Info("Successfully rotated session", slog.Any("user_id", input.User.ID), slog.Any("session_id", newSession.ID))

	return &usecase.RefreshSessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Rotated:      true,
	}, nil
}

// SignOut deletes the session row, invalidating every token minted for it.
// A session that is already gone counts as a successful sign-out.
func (srv *meService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Signing out", slog.Any("session_id", sessionID))

	if err := srv.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err), slog.Any("session_id", sessionID))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// needsRotation reports whether the presented access token is absent, invalid,
// or expiring within the rotation window.
func (srv *meService) needsRotation(accessToken string) bool {
	if accessToken == "" {
		return true
	}

	claims, err := srv.tokenService.VerifyAccessToken(accessToken)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}

	return time.Until(claims.ExpiresAt.Time) < rotationWindow
}

// discard best-effort deletes a replacement session whose tokens never reached
// the client. The old session is still intact at this point.
func (srv *meService) discard(ctx context.Context, sessionID uuid.UUID) {
	if err := srv.sessionRepo.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Warn("Failed to discard orphaned session", slog.Any("error", err), slog.Any("session_id", sessionID))
	}
}
