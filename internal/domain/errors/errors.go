package errors

import (
	"net/http"

	"landmarket/internal/errors"
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

// Is matches any BaseError with the same error code, so sentinels still match
// after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Session and authorization errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrAuthorizationRequired = NewBaseError(
		http.StatusForbidden,
		"AUTHORIZATION_REQUIRED",
		"You are not allowed to perform this action",
		"",
	)

	ErrInvalidIDToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ID_TOKEN",
		"Invalid or expired identity token",
		"",
	)

	// Profile errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"A profile already exists for this account",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Role is not allowed",
		"",
	)

	// Listing errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrListingNotAvailable = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_AVAILABLE",
		"This listing is not available",
		"",
	)

	ErrRejectionReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECTION_REASON_REQUIRED",
		"A rejection reason is required when rejecting a listing",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown status",
		"",
	)

	ErrInvalidBadge = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BADGE",
		"Unknown badge",
		"",
	)

	ErrBulkLimitExceeded = NewBaseError(
		http.StatusBadRequest,
		"BULK_LIMIT_EXCEEDED",
		"Too many listings in one bulk update",
		"",
	)

	ErrInvalidBoundary = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDARY",
		"Boundary must be a GeoJSON polygon",
		"",
	)

	ErrTooManyEvidenceFiles = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_EVIDENCE_FILES",
		"Too many evidence files",
		"",
	)

	// Evidence errors
	ErrEvidenceNotFound = NewBaseError(
		http.StatusNotFound,
		"EVIDENCE_NOT_FOUND",
		"Evidence not found",
		"",
	)

	ErrBlobWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"BLOB_WRITE_FAILED",
		"Failed to store uploaded file",
		"",
	)

	// AI errors
	ErrAIUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"AI_UNAVAILABLE",
		"The assistant is unavailable, please try again later",
		"",
	)

	// Messaging errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrSavedSearchNotFound = NewBaseError(
		http.StatusNotFound,
		"SAVED_SEARCH_NOT_FOUND",
		"Saved search not found",
		"",
	)

	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"Message or report not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please provide a valid email address",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
