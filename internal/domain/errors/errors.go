package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Business info
	ErrBusinessInfoFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_INFO_FETCH_FAILED",
		"Failed to fetch business info",
		"",
	)

	ErrBusinessInfoUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_INFO_UPDATE_FAILED",
		"Failed to update business info",
		"",
	)

	ErrBusinessHoursFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_HOURS_FETCH_FAILED",
		"Failed to fetch business hours",
		"",
	)

	ErrBusinessHoursUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"BUSINESS_HOURS_UPDATE_FAILED",
		"Failed to update business hours",
		"",
	)

	ErrSocialProfilesFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SOCIAL_PROFILES_FETCH_FAILED",
		"Failed to fetch social profiles",
		"",
	)

	ErrSocialProfilesUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SOCIAL_PROFILES_UPDATE_FAILED",
		"Failed to update social profiles",
		"",
	)

	// Locations
	ErrLocationsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATIONS_FETCH_FAILED",
		"Failed to fetch locations",
		"",
	)

	ErrLocationsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATIONS_UPDATE_FAILED",
		"Failed to update locations",
		"",
	)

	// Testimonials
	ErrTestimonialNotFound = NewBaseError(
		http.StatusNotFound,
		"TESTIMONIAL_NOT_FOUND",
		"Testimonial not found",
		"",
	)

	ErrTestimonialsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"TESTIMONIALS_FETCH_FAILED",
		"Failed to fetch testimonials",
		"",
	)

	ErrTestimonialCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TESTIMONIAL_CREATE_FAILED",
		"Failed to create testimonial",
		"",
	)

	ErrTestimonialUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TESTIMONIAL_UPDATE_FAILED",
		"Failed to update testimonial",
		"",
	)

	ErrTestimonialDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"TESTIMONIAL_DELETE_FAILED",
		"Failed to delete testimonial",
		"",
	)

	// SEO settings
	ErrSeoSettingsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEO_SETTINGS_FETCH_FAILED",
		"Failed to fetch SEO settings",
		"",
	)

	ErrSeoSettingsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEO_SETTINGS_UPDATE_FAILED",
		"Failed to update SEO settings",
		"",
	)

	// Enquiries
	ErrEnquiryCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENQUIRY_CREATE_FAILED",
		"Failed to submit enquiry",
		"",
	)

	ErrEnquiriesFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENQUIRIES_FETCH_FAILED",
		"Failed to fetch enquiries",
		"",
	)

	ErrEnquiryContactMissing = NewBaseError(
		http.StatusBadRequest,
		"ENQUIRY_CONTACT_MISSING",
		"Please provide an email address or phone number",
		"",
	)

	// Media
	ErrMediaTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"MEDIA_TOO_LARGE",
		"File is too large",
		"",
	)

	ErrMediaUnsupportedType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"MEDIA_UNSUPPORTED_TYPE",
		"Only image uploads are supported",
		"",
	)

	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"Failed to upload file",
		"",
	)

	ErrMediaNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"MEDIA_NOT_CONFIGURED",
		"Media storage is not configured",
		"",
	)

	// Admin session
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Pages
	ErrPageRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAGE_RENDER_FAILED",
		"Failed to load page",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
