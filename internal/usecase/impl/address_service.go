package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns all of the user's addresses, newest first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByOwner(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list addresses", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns a single address owned by the user.
func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	return srv.ownedAddress(ctx, userID, addressID)
}

// CreateAddress stores a new address for the user.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Creating address", slog.Any("user_id", userID))

	address := &entity.Address{
		OwnerID:  userID,
		Fullname: input.Fullname,
		Address1: input.Address1,
		Address2: input.Address2,
		City:     input.City,
		ZipCode:  input.ZipCode,
		Phone:    input.Phone,
	}

	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress overwrites an address the user owns. A payload identical to
// the stored address is rejected.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Updating address", slog.Any("user_id", userID), slog.Any("address_id", addressID))

	address, err := srv.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if addressUnchanged(address, input) {
		return nil, domainerrors.ErrNothingChanged
	}

	address.Fullname = input.Fullname
	address.Address1 = input.Address1
	address.Address2 = input.Address2
	address.City = input.City
	address.ZipCode = input.ZipCode
	address.Phone = input.Phone

	if err := srv.addressRepo.UpdateAddress(ctx, address); err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("error", err), slog.Any("address_id", addressID))

		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address the user owns.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Deleting address", slog.Any("user_id", userID), slog.Any("address_id", addressID))

	if _, err := srv.ownedAddress(ctx, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		srv.log(ctx).Error("Failed to delete address", slog.Any("error", err), slog.Any("address_id", addressID))

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// ownedAddress loads an address and verifies the user owns it.
func (srv *addressService) ownedAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		srv.log(ctx).Error("Failed to find address", slog.Any("error", err), slog.Any("address_id", addressID))

		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.OwnerID != userID {
		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	return address, nil
}

// addressUnchanged reports whether the payload matches the stored address field by field.
func addressUnchanged(address *entity.Address, input usecase.AddressInput) bool {
	return address.Fullname == input.Fullname &&
		address.Address1 == input.Address1 &&
		address.Address2 == input.Address2 &&
		address.City == input.City &&
		address.ZipCode == input.ZipCode &&
		address.Phone == input.Phone
}
