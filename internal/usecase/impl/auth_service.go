// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
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

// resetTokenTTL is how long a mailed password-reset token stays redeemable.
const resetTokenTTL = 30 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	emailService service.EmailService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokenService service.TokenService,
	hasher service.PasswordHasher,
	emailService service.EmailService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new CLIENT user and opens their first session.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	srv.log(ctx).Info("Signing up user", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleClient,
	}
	session := &entity.Session{}

	// The user and their first session are created atomically: a registered
	// account without a usable login would strand the client.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		// 1. Reject duplicate emails up front for a clean error message.
		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrEmailAlreadyInUse
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		// 2. Create the user.
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Open the first session.
		session.OwnerID = user.ID
		if err := sessionRepo.CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign up user", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	output, err := srv.issueTokens(session.ID, user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	srv.log(ctx).Info("Successfully signed up user", slog.Any("user_id", user.ID))

	return output, nil
}

// Signin verifies credentials and opens a new session.
func (srv *authService) Signin(ctx context.Context, input usecase.SigninInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Info("Signing in user", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// An account mid-reset can't sign in with the old password; pointing the
	// user at their inbox beats a misleading "wrong password".
	if user.HasPendingReset(time.Now()) {
		return nil, domainerrors.ErrPendingPasswordReset
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session := &entity.Session{OwnerID: user.ID}
	if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrSessionCreationFailed, err.Error())
	}

	output, err := srv.issueTokens(session.ID, user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	srv.log(ctx).Info("Successfully signed in user", slog.Any("user_id", user.ID))

	return output, nil
}

// RequestPasswordReset mints a reset token and mails it to the account's address.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	srv.log(ctx).Info("Requesting password reset", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	token := uuid.NewString()
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = &token
	user.ResetTokenExpiry = &expiry

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Any("error", err), slog.Any("user_id", user.ID))

		return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	if err := srv.emailService.SendPasswordReset(ctx, user.Email, token); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.Any("error", err), slog.Any("user_id", user.ID))

		return errors.Wrap(domainerrors.ErrEmailSendFailed, err.Error())
	}
	srv.log(ctx).Info("Successfully sent reset email", slog.Any("user_id", user.ID))

	return nil
}

// ConfirmPasswordReset exchanges a valid reset token for a new password.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input usecase.ConfirmResetInput) error {
	srv.log(ctx).Info("Confirming password reset")

	user, err := srv.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return domainerrors.ErrResetTokenInvalid
	}

	if srv.hasher.Check(input.NewPassword, user.PasswordHash) {
		return domainerrors.ErrSamePassword
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.PasswordHash = hash
	user.ResetPasswordToken = nil
	user.ResetTokenExpiry = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update password", slog.Any("error", err), slog.Any("user_id", user.ID))

		return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}
	srv.log(ctx).Info("Successfully reset password", slog.Any("user_id", user.ID))

	return nil
}

// issueTokens mints the access/refresh pair for a fresh session.
func (srv *authService) issueTokens(sessionID uuid.UUID, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(sessionID, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// normalizeEmail trims whitespace and lower-cases an email address so lookups
// and uniqueness checks are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
