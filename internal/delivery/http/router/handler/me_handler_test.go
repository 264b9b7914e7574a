package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecomshop/config"
	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	mockService "ecomshop/internal/mocks/service"
	mockUsecase "ecomshop/internal/mocks/usecase"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type meHandlerMocks struct {
	meUC         *mockUsecase.MockMeUsecase
	tokenService *mockService.MockTokenService
}

func newMeHandler(t *testing.T) (*MeHandler, *meHandlerMocks) {
	t.Helper()

	mocks := &meHandlerMocks{
		meUC:         mockUsecase.NewMockMeUsecase(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	cfg := &config.Config{
		Auth: &config.AuthConfig{RefreshCookieName: testCookieName},
	}

	return NewMeHandler(MeHandlerParams{
		MeUC:         mocks.meUC,
		TokenService: mocks.tokenService,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mocks
}

const testCookieName = "refreshtoken"

// meResponse mirrors the success envelope for GET /me.
type meResponse struct {
	Data struct {
		User        *entity.User `json:"user"`
		AccessToken string       `json:"access_token"`
	} `json:"data"`
}

func decodeMeResponse(t *testing.T, rec *httptest.ResponseRecorder) meResponse {
	t.Helper()

	var body meResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestMe_Anonymous_ReturnsNullUser(t *testing.T) {
	h, _ := newMeHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeMeResponse(t, rec)
	assert.Nil(t, body.Data.User)
	assert.Empty(t, body.Data.AccessToken)
}

func TestMe_ValidToken_EchoesPresentedToken(t *testing.T) {
	h, mocks := newMeHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "shopper@example.com", Role: entity.RoleClient}
	sessionID := uuid.New()

	mocks.meUC.EXPECT().
		RefreshSession(mock.Anything, usecase.RefreshSessionInput{
			SessionID:   sessionID,
			User:        user,
			AccessToken: "still-valid-token",
		}).
		Return(&usecase.RefreshSessionOutput{Rotated: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer still-valid-token")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetCurrentUser(c, user)
	deliverycontext.SetSessionID(c, sessionID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The token the client presented comes back unchanged, and the refresh
	// cookie is left alone.
	body := decodeMeResponse(t, rec)
	require.NotNil(t, body.Data.User)
	assert.Equal(t, user.ID, body.Data.User.ID)
	assert.Equal(t, "still-valid-token", body.Data.AccessToken)
	assert.Empty(t, rec.Result().Cookies())
}

func TestMe_Rotation_ReturnsNewTokenAndCookie(t *testing.T) {
	h, mocks := newMeHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "shopper@example.com", Role: entity.RoleClient}
	sessionID := uuid.New()

	mocks.meUC.EXPECT().
		RefreshSession(mock.Anything, usecase.RefreshSessionInput{
			SessionID:   sessionID,
			User:        user,
			AccessToken: "expiring-token",
		}).
		Return(&usecase.RefreshSessionOutput{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			Rotated:      true,
		}, nil)
	mocks.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expiring-token")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetCurrentUser(c, user)
	deliverycontext.SetSessionID(c, sessionID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeMeResponse(t, rec)
	assert.Equal(t, "new-access-token", body.Data.AccessToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Equal(t, "new-refresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSignOut_NoSession_Unauthorized(t *testing.T) {
	h, _ := newMeHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/me/signout", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignOut_DeletesSessionAndClearsCookie(t *testing.T) {
	h, mocks := newMeHandler(t)

	sessionID := uuid.New()
	mocks.meUC.EXPECT().SignOut(mock.Anything, sessionID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/me/signout", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetSessionID(c, sessionID)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
