package errors

import (
	"fmt"
	"net/http"

	"github.com/travelmate-app/travelmate-backend/logger"
)

type ErrorType string

const (
	ValidationError            ErrorType = "VALIDATION_ERROR"
	NotFoundError              ErrorType = "NOT_FOUND"
	AuthError                  ErrorType = "AUTHENTICATION_ERROR"
	DatabaseError              ErrorType = "DATABASE_ERROR"
	ServerError                ErrorType = "SERVER_ERROR"
	ForbiddenError             ErrorType = "FORBIDDEN"
	ConflictError              ErrorType = "CONFLICT"
	RateLimitError             ErrorType = "RATE_LIMIT_EXCEEDED"
	PlanNotFoundError          ErrorType = "PLAN_NOT_FOUND"
	PlanAccessError            ErrorType = "PLAN_ACCESS_DENIED"
	DestinationNotFoundError   ErrorType = "DESTINATION_NOT_FOUND"
	ExternalServiceError       ErrorType = "EXTERNAL_SERVICE_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code for the error,
// falling back to the status derived from the error type.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewDatabaseError(err error) *AppError {
	// Log original error but return sanitized message
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func Forbidden(message string, details string) *AppError {
	return &AppError{
		Type:       ForbiddenError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusForbidden,
	}
}

func PlanNotFound(id string) *AppError {
	return &AppError{
		Type:       PlanNotFoundError,
		Message:    "Trip plan not found",
		Detail:     fmt.Sprintf("Plan ID: %s", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func PlanAccessDenied(userID, planID string) *AppError {
	return &AppError{
		Type:       PlanAccessError,
		Message:    "Access to trip plan denied",
		Detail:     fmt.Sprintf("User %s cannot access plan %s", userID, planID),
		HTTPStatus: http.StatusForbidden,
	}
}

func DestinationNotFound(id string) *AppError {
	return &AppError{
		Type:       DestinationNotFoundError,
		Message:    "Destination not found",
		Detail:     fmt.Sprintf("Destination ID: %s", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewConflictError(message string, detail string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

func RateLimitExceeded(message string, retryAfterSeconds int) *AppError {
	return &AppError{
		Type:       RateLimitError,
		Message:    message,
		Detail:     fmt.Sprintf("Retry after %d seconds", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func ExternalService(service string, err error) *AppError {
	return &AppError{
		Type:       ExternalServiceError,
		Message:    fmt.Sprintf("%s request failed", service),
		Detail:     err.Error(),
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

func Unauthorized(code, message string) error {
	return &AppError{
		Type:       AuthError,
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError, PlanNotFoundError, DestinationNotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError, PlanAccessError:
		return http.StatusForbidden
	case ConflictError:
		return http.StatusConflict
	case RateLimitError:
		return http.StatusTooManyRequests
	case ExternalServiceError:
		return http.StatusBadGateway
	case DatabaseError, ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
