package errors

import (
	"net/http"

	"ecomshop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"The email provided isn't registered.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_IN_USE",
		"The email is already in use.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create the user.",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update the user.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"The password provided is incorrect.",
		"",
	)

	ErrPendingPasswordReset = NewBaseError(
		http.StatusBadRequest,
		"PENDING_PASSWORD_RESET",
		"A password reset is pending for this account. Check your inbox.",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"The reset token is invalid or has expired.",
		"",
	)

	ErrSamePassword = NewBaseError(
		http.StatusBadRequest,
		"SAME_PASSWORD",
		"The new password must differ from the old one.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process the password.",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"No active session was found.",
		"",
	)

	ErrSessionCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_CREATION_FAILED",
		"Failed to create a session.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The request payload failed validation.",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"The product doesn't exist.",
		"",
	)

	ErrInsufficientInventory = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_INVENTORY",
		"Not enough items in stock.",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"The cart item doesn't exist.",
		"",
	)

	ErrNegativeQuantity = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_QUANTITY",
		"The resulting quantity can't be negative.",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"The address doesn't exist.",
		"",
	)

	ErrAddressOwnershipViolation = NewBaseError(
		http.StatusUnauthorized,
		"ADDRESS_OWNERSHIP_VIOLATION",
		"The address doesn't belong to this account.",
		"",
	)

	ErrNothingChanged = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_CHANGED",
		"Nothing changed.",
		"",
	)

	// Checkout-related errors
	ErrNoShippingAddress = NewBaseError(
		http.StatusBadRequest,
		"NO_SHIPPING_ADDRESS",
		"Select a shipping address before checking out.",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"The cart is empty.",
		"",
	)

	ErrCheckoutIncomplete = NewBaseError(
		http.StatusBadRequest,
		"CHECKOUT_INCOMPLETE",
		"Complete the checkout before placing the order.",
		"",
	)

	ErrNoPaymentProfile = NewBaseError(
		http.StatusBadRequest,
		"NO_PAYMENT_PROFILE",
		"No payment profile exists for this account yet.",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_FAILED",
		"The payment provider rejected the request.",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"The order doesn't exist.",
		"",
	)

	ErrInvalidShipmentStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SHIPMENT_STATUS",
		"The shipment status isn't valid.",
		"",
	)

	ErrShipmentStatusUnchanged = NewBaseError(
		http.StatusBadRequest,
		"SHIPMENT_STATUS_UNCHANGED",
		"The order already has that shipment status.",
		"",
	)

	// Admin-related errors
	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"The role isn't valid.",
		"",
	)

	ErrRoleUnchanged = NewBaseError(
		http.StatusBadRequest,
		"ROLE_UNCHANGED",
		"The user already has that role.",
		"",
	)

	ErrSelfRoleEdit = NewBaseError(
		http.StatusBadRequest,
		"SELF_ROLE_EDIT",
		"You can't edit your own account.",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"The image exceeds the allowed size.",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Failed to upload the image.",
		"",
	)

	ErrEmailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_SEND_FAILED",
		"Failed to send the email.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"The database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong on our side.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication is required.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The resource doesn't exist.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"The resource conflicts with an existing one.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "The database operation failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
