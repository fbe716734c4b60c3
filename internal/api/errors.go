package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/service/auth"
	"github.com/phrazzld/studious/internal/store"
	"github.com/phrazzld/studious/internal/timer"
)

// User-facing messages for rejected mutations.
const (
	MessageProfanity       = "inappropriate content"
	MessageInjection       = "invalid input"
	MessageCannotDeleteSet = "must keep at least one set"
	MessageEmpty           = "input is empty"
	MessageUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Content rejected by moderation
	case errors.Is(err, moderation.ErrProfanity),
		errors.Is(err, moderation.ErrInjection):
		return http.StatusUnprocessableEntity

	// Structural guards
	case errors.Is(err, store.ErrCannotDeleteLast):
		return http.StatusConflict

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, moderation.ErrEmpty),
		errors.Is(err, domain.ErrUnknownTemplate),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, timer.ErrInvalidDuration):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MessageUnexpected
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, moderation.ErrProfanity):
		return MessageProfanity

	case errors.Is(err, moderation.ErrInjection):
		return MessageInjection

	case errors.Is(err, moderation.ErrEmpty):
		return MessageEmpty

	case errors.Is(err, store.ErrCannotDeleteLast):
		return MessageCannotDeleteSet

	case errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"

	case errors.Is(err, domain.ErrUnknownTemplate):
		return "Unknown template"

	case errors.Is(err, timer.ErrInvalidDuration):
		return "Invalid timer duration"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return MessageUnexpected
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'SignInRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status code and safe message for err and logs
// the redacted detail. Authentication failures are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, logMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if logMessage != "" {
		err = fmt.Errorf("%s: %w", logMessage, err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
