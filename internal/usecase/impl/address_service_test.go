package impl

import (
	"context"
	"testing"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	mockRepo "ecomshop/internal/mocks/repository"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedAddress(ownerID uuid.UUID) *entity.Address {
	return &entity.Address{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Fullname: "Ada Lovelace",
		Address1: "12 Analytical Way",
		City:     "London",
		ZipCode:  "EC1A",
		Phone:    "555-0100",
	}
}

func addressInputFrom(address *entity.Address) usecase.AddressInput {
	return usecase.AddressInput{
		Fullname: address.Fullname,
		Address1: address.Address1,
		Address2: address.Address2,
		City:     address.City,
		ZipCode:  address.ZipCode,
		Phone:    address.Phone,
	}
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	svc := NewAddressService(addressRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	address := storedAddress(userID)
	input := addressInputFrom(address)
	input.City = "Cambridge"

	addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	addressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, a *entity.Address) {
			assert.Equal(t, "Cambridge", a.City)
		}).
		Return(nil)

	updated, err := svc.UpdateAddress(ctx, userID, address.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Cambridge", updated.City)
}

func TestAddressService_UpdateAddress_NothingChanged(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	svc := NewAddressService(addressRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	address := storedAddress(userID)

	addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	_, err := svc.UpdateAddress(ctx, userID, address.ID, addressInputFrom(address))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNothingChanged)
}

func TestAddressService_GetAddress_ForeignAddress(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	svc := NewAddressService(addressRepo, newDiscardLogger())

	ctx := context.Background()
	address := storedAddress(uuid.New())

	addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	_, err := svc.GetAddress(ctx, uuid.New(), address.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	svc := NewAddressService(addressRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	address := storedAddress(userID)

	addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	addressRepo.EXPECT().DeleteAddress(ctx, address.ID).Return(nil)

	require.NoError(t, svc.DeleteAddress(ctx, userID, address.ID))
}
