package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yukikurage/user-hobbies-api/internal/response"
	"github.com/yukikurage/user-hobbies-api/internal/services"
	"github.com/yukikurage/user-hobbies-api/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Kind classifies a failure into the API error taxonomy.
type Kind string

const (
	KindValidationFailed          Kind = "VALIDATION_FAILED"
	KindNotFound                  Kind = "NOT_FOUND"
	KindReferencedResourceInvalid Kind = "REFERENCED_RESOURCE_INVALID"
	KindDuplicateEntry            Kind = "DUPLICATE_ENTRY"
	KindRateLimited               Kind = "RATE_LIMITED"
	KindInternal                  Kind = "INTERNAL"
)

// Postgres SQLSTATE codes surfaced by constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

const internalMessage = "Internal server error"

// APIError represents a classified failure ready to be rendered
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Details    any
	Cause      error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates a new APIError
func NewAPIError(kind Kind, statusCode int, message string) *APIError {
	return &APIError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ValidationDetails is the details payload of a validation failure.
type ValidationDetails struct {
	ValidationErrors validation.Errors `json:"validationErrors"`
}

// Predefined errors
var (
	ErrInvalidBody        = NewAPIError(KindValidationFailed, http.StatusBadRequest, "Invalid request body")
	ErrBodyTooLarge       = NewAPIError(KindValidationFailed, http.StatusRequestEntityTooLarge, "Request body too large")
	ErrRateLimited        = NewAPIError(KindRateLimited, http.StatusTooManyRequests, "Too many requests")
	ErrReferencedNotFound = NewAPIError(KindReferencedResourceInvalid, http.StatusBadRequest, "Referenced resource not found")
	ErrDuplicateEntry     = NewAPIError(KindDuplicateEntry, http.StatusConflict, "Duplicate entry")
)

// ValidationFailed wraps field errors.
func ValidationFailed(errs validation.Errors) *APIError {
	return &APIError{
		Kind:       KindValidationFailed,
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Details:    ValidationDetails{ValidationErrors: errs},
		Cause:      errs,
	}
}

// NotFound builds a 404 error with message.
func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return NewAPIError(KindNotFound, http.StatusNotFound, message)
}

// Internal wraps an unexpected failure.
func Internal(cause error) *APIError {
	return &APIError{
		Kind:       KindInternal,
		StatusCode: http.StatusInternalServerError,
		Message:    internalMessage,
		Cause:      cause,
	}
}

// FromError classifies any error returned by the service layer.
func FromError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var verrs validation.Errors
	if stderrors.As(err, &verrs) {
		return ValidationFailed(verrs)
	}

	switch {
	case stderrors.Is(err, services.ErrUserNotFound):
		return withCause(NotFound("User not found"), err)
	case stderrors.Is(err, services.ErrHobbyNotFound):
		return withCause(NotFound("Hobby not found"), err)
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return withCause(NotFound(""), err)
	case stderrors.Is(err, gorm.ErrForeignKeyViolated):
		return withCause(ErrReferencedNotFound, err)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return withCause(ErrDuplicateEntry, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return withCause(ErrReferencedNotFound, err)
		case pgUniqueViolation:
			return withCause(ErrDuplicateEntry, err)
		}
	}

	return Internal(err)
}

func withCause(base *APIError, cause error) *APIError {
	e := *base
	e.Cause = cause
	return &e
}

// Respond classifies err and writes the error envelope. Internal failures are
// logged with their cause; outside release mode the cause is also returned to the caller.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	apiErr := FromError(err)

	details := apiErr.Details
	if apiErr.Kind == KindInternal {
		log.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		if gin.Mode() != gin.ReleaseMode && apiErr.Cause != nil {
			details = gin.H{"cause": apiErr.Cause.Error()}
		}
	} else {
		log.Debug("Request rejected",
			zap.String("kind", string(apiErr.Kind)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	response.AbortWithError(c, apiErr.StatusCode, apiErr.Message, details)
}
