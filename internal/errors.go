package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeDuplicate    ErrorType = "DUPLICATE_ERROR"
	ErrorTypeReference    ErrorType = "INVALID_REFERENCE"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeFieldTooLong     ErrorCode = "FIELD_TOO_LONG"
	ErrCodeFieldRequired    ErrorCode = "FIELD_REQUIRED"

	ErrCodeDuplicateEmail ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeDuplicateKey   ErrorCode = "DUPLICATE_KEY"

	ErrCodeInvalidDepartment ErrorCode = "INVALID_DEPARTMENT"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeAlumniNotFound     ErrorCode = "ALUMNI_NOT_FOUND"

	ErrCodeAnnouncementNotFound ErrorCode = "ANNOUNCEMENT_NOT_FOUND"
	ErrCodeRouteNotFound        ErrorCode = "ROUTE_NOT_FOUND"
)

// AppError is the single failure type that crosses layer boundaries. Services and
// repositories return it; only the terminal response writer turns it into HTTP.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// FieldMessages flattens aggregated field errors for the response envelope.
func (e *AppError) FieldMessages() []string {
	details, ok := e.Details.(ValidationErrors)
	if !ok || len(details.Errors) == 0 {
		return nil
	}
	messages := make([]string, len(details.Errors))
	for i, fieldErr := range details.Errors {
		messages[i] = fieldErr.Message
	}
	return messages
}

func (e *AppError) GetDetailedMessage() string {
	if messages := e.FieldMessages(); len(messages) > 0 {
		return strings.Join(messages, "; ")
	}
	return e.Message
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation error",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

// NewDuplicateError maps a unique-index collision. The original API answered
// these with 400 rather than 409 and clients depend on that.
func NewDuplicateError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeDuplicate,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewReferenceError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeReference,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrDuplicateEmail    = NewDuplicateError("Alumni with this email already exists", ErrCodeDuplicateEmail)
	ErrDuplicateKey      = NewDuplicateError("Department name or code already exists", ErrCodeDuplicateKey)
	ErrInvalidDepartment = NewReferenceError("Invalid department ID", ErrCodeInvalidDepartment)

	// Login failures share one message so responses never reveal whether
	// the email exists.
	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeInvalidCredentials)

	ErrMissingToken   = NewUnauthorizedError("Access denied. No token provided.", ErrCodeMissingToken)
	ErrInvalidToken   = NewUnauthorizedError("Invalid token.", ErrCodeInvalidToken)
	ErrTokenExpired   = NewUnauthorizedError("Token expired.", ErrCodeTokenExpired)
	ErrAlumniNotFound = NewUnauthorizedError("Invalid token. Alumni not found.", ErrCodeAlumniNotFound)

	ErrAnnouncementNotFound = NewNotFoundError("Announcement not found", ErrCodeAnnouncementNotFound)
	ErrRouteNotFound        = NewNotFoundError("Route not found", ErrCodeRouteNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
