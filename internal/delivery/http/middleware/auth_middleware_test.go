package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecomshop/config"
	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	mockRepo "ecomshop/internal/mocks/repository"
	mockService "ecomshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "refreshtoken"

type authMiddlewareMocks struct {
	tokenService *mockService.MockTokenService
	sessionRepo  *mockRepo.MockSessionRepository
	userRepo     *mockRepo.MockUserRepository
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *authMiddlewareMocks) {
	t.Helper()

	mocks := &authMiddlewareMocks{
		tokenService: mockService.NewMockTokenService(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
	}

	cfg := &config.Config{
		Auth: &config.AuthConfig{RefreshCookieName: testCookieName},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(mocks.tokenService, mocks.sessionRepo, mocks.userRepo, cfg, logger), mocks
}

func newEchoContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func clientUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "shopper@example.com",
		Role:  entity.RoleClient,
	}
}

func TestAuthenticate_NoCookie_ContinuesAnonymously(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	c, _ := newEchoContext(req)

	var nextCalled bool
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Nil(t, deliverycontext.GetCurrentUser(c))
	assert.Equal(t, uuid.Nil, deliverycontext.GetSessionID(c))
}

func TestAuthenticate_InvalidRefreshToken_ClearsCookie(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	mocks.tokenService.EXPECT().VerifyRefreshToken("garbage").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	c, rec := newEchoContext(req)

	var nextCalled bool
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Nil(t, deliverycontext.GetCurrentUser(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthenticate_StaleSession_ClearsCookie(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	sessionID := uuid.New()
	mocks.tokenService.EXPECT().VerifyRefreshToken("stale").
		Return(&service.RefreshClaims{SessionID: sessionID}, nil)
	mocks.sessionRepo.EXPECT().FindSessionByID(mock.Anything, sessionID).
		Return(nil, repository.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale"})
	c, rec := newEchoContext(req)

	var nextCalled bool
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Nil(t, deliverycontext.GetCurrentUser(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthenticate_ValidCookie_ResolvesUser(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	user := clientUser()
	session := &entity.Session{ID: uuid.New(), OwnerID: user.ID}

	mocks.tokenService.EXPECT().VerifyRefreshToken("valid").
		Return(&service.RefreshClaims{SessionID: session.ID}, nil)
	mocks.sessionRepo.EXPECT().FindSessionByID(mock.Anything, session.ID).Return(session, nil)
	mocks.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid"})
	c, _ := newEchoContext(req)

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, user, deliverycontext.GetCurrentUser(c))
	assert.Equal(t, session.ID, deliverycontext.GetSessionID(c))
}

func TestAuthorize_AnonymousRejected(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	c, _ := newEchoContext(req)

	err := mw.Authorize(entity.RoleClient)(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorize_WrongRoleForbidden(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	c, _ := newEchoContext(req)
	deliverycontext.SetCurrentUser(c, clientUser())

	err := mw.Authorize(entity.RoleAdmin, entity.RoleSuperAdmin)(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorize_MissingAccessToken(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	c, _ := newEchoContext(req)
	deliverycontext.SetCurrentUser(c, clientUser())

	err := mw.Authorize(entity.RoleClient)(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorize_InvalidAccessToken(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	mocks.tokenService.EXPECT().VerifyAccessToken("bad-token").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad-token")
	c, _ := newEchoContext(req)
	deliverycontext.SetCurrentUser(c, clientUser())

	err := mw.Authorize(entity.RoleClient)(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorize_TokenUserMismatch(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	user := clientUser()
	mocks.tokenService.EXPECT().VerifyAccessToken("other-token").
		Return(&service.AccessClaims{SessionID: uuid.New(), UserID: uuid.New()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer other-token")
	c, _ := newEchoContext(req)
	deliverycontext.SetCurrentUser(c, user)

	err := mw.Authorize(entity.RoleClient)(func(c echo.Context) error { return nil })(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorize_Allows(t *testing.T) {
	mw, mocks := newAuthMiddleware(t)

	user := clientUser()
	mocks.tokenService.EXPECT().VerifyAccessToken("good-token").
		Return(&service.AccessClaims{SessionID: uuid.New(), UserID: user.ID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c, _ := newEchoContext(req)
	deliverycontext.SetCurrentUser(c, user)

	var nextCalled bool
	err := mw.Authorize(entity.RoleClient)(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
