package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/lexi-api/internal/platform/tts"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
	"github.com/phrazzld/lexi-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, scheduler.ErrInvalidMode),
		errors.Is(err, scheduler.ErrInvalidVerdict),
		errors.Is(err, scheduler.ErrCardMismatch),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// State errors: a verdict with nothing selected
	case errors.Is(err, scheduler.ErrNoCardInFocus):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, scheduler.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Upstream synthesis failures
	case errors.Is(err, tts.ErrUnavailable):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, scheduler.ErrInvalidMode):
		return "Invalid review mode"

	case errors.Is(err, scheduler.ErrInvalidVerdict):
		return "Invalid action"

	case errors.Is(err, scheduler.ErrCardMismatch):
		return "Submitted word does not match the word in focus"

	case errors.Is(err, scheduler.ErrNoCardInFocus):
		return "No word is currently in focus"

	case errors.Is(err, scheduler.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, tts.ErrUnavailable):
		return "Speech synthesis unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'SubmitResponseRequest.Action' Error:Field
	// validation for 'Action' failed on the 'oneof' tag"
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
	case "oneof":
		return "invalid value"
	case "uuid":
		return "invalid identifier"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
