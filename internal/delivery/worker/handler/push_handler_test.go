package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecomshop/config"
	"ecomshop/internal/domain/entity"
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

type pushHandlerMocks struct {
	userRepo     *mockRepo.MockUserRepository
	emailService *mockService.MockEmailService
}

func newPushHandler(t *testing.T) (*PushHandler, *pushHandlerMocks) {
	t.Helper()

	mocks := &pushHandlerMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		emailService: mockService.NewMockEmailService(t),
	}

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		UserRepo:     mocks.userRepo,
		EmailService: mocks.emailService,
	}), mocks
}

func pushRequest(t *testing.T, event *service.OrderEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHandlePush_OrderPlaced_SendsConfirmation(t *testing.T) {
	h, mocks := newPushHandler(t)

	owner := &entity.User{ID: uuid.New(), Email: "shopper@example.com"}
	orderID := uuid.New().String()

	mocks.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	mocks.emailService.EXPECT().
		SendOrderConfirmation(mock.Anything, owner.Email, orderID, int64(12900)).
		Return(nil)

	event := &service.OrderEvent{
		Kind:    service.OrderEventPlaced,
		OrderID: orderID,
		OwnerID: owner.ID.String(),
		Amount:  12900,
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(pushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StatusChanged_SendsShipmentUpdate(t *testing.T) {
	h, mocks := newPushHandler(t)

	owner := &entity.User{ID: uuid.New(), Email: "shopper@example.com"}
	orderID := uuid.New().String()

	mocks.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	mocks.emailService.EXPECT().
		SendShipmentUpdate(mock.Anything, owner.Email, orderID, "Shipped").
		Return(nil)

	event := &service.OrderEvent{
		Kind:           service.OrderEventStatusChanged,
		OrderID:        orderID,
		OwnerID:        owner.ID.String(),
		ShipmentStatus: "Shipped",
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(pushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DeletedOwner_AcksWithoutMail(t *testing.T) {
	h, mocks := newPushHandler(t)

	ownerID := uuid.New()
	mocks.userRepo.EXPECT().FindByID(mock.Anything, ownerID).
		Return(nil, repository.ErrUserNotFound)

	event := &service.OrderEvent{
		Kind:    service.OrderEventPlaced,
		OrderID: uuid.New().String(),
		OwnerID: ownerID.String(),
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(pushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MailFailure_RequestsRetry(t *testing.T) {
	h, mocks := newPushHandler(t)

	owner := &entity.User{ID: uuid.New(), Email: "shopper@example.com"}

	mocks.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	mocks.emailService.EXPECT().
		SendOrderConfirmation(mock.Anything, owner.Email, mock.Anything, mock.Anything).
		Return(assert.AnError)

	event := &service.OrderEvent{
		Kind:    service.OrderEventPlaced,
		OrderID: uuid.New().String(),
		OwnerID: owner.ID.String(),
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(pushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedBody_Rejected(t *testing.T) {
	h, _ := newPushHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte("{not json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_UnknownKind_AckedWithoutRetry(t *testing.T) {
	h, mocks := newPushHandler(t)

	owner := &entity.User{ID: uuid.New(), Email: "shopper@example.com"}
	mocks.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)

	event := &service.OrderEvent{
		Kind:    "order.archived",
		OrderID: uuid.New().String(),
		OwnerID: owner.ID.String(),
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(pushRequest(t, event), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
