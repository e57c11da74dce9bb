package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across
// services. Per-entity sentinel errors live in the repositories package;
// these are the AppError forms handlers ultimately return.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation not allowed in the current state (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an invalid status or stage value (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrChannel wraps a notification-channel failure. Callers are expected to
// recover from it locally (log + count) rather than surface it.
func ErrChannel(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "notification", "Notification channel error", http.StatusServiceUnavailable)
}

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrLeadAlreadyConverted guards against double conversion.
var ErrLeadAlreadyConverted = New(
	CodeConflict,
	"leads",
	"Lead has already been converted to a candidate",
	http.StatusConflict,
)

// ErrInvalidPipelineStage is returned when a stage outside the enumerated
// pipeline set is requested.
var ErrInvalidPipelineStage = New(
	CodeInvalidStatus,
	"leads",
	"Invalid pipeline stage",
	http.StatusBadRequest,
)

// ErrSourceNotAllowed is returned when an intake source is not on the
// configured allow-list.
var ErrSourceNotAllowed = New(
	CodeValidationFailed,
	"leads",
	"Lead source is not allowed",
	http.StatusBadRequest,
)
