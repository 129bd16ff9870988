package usecase

import (
	"errors"

	"resume-builder/internal/model"
)

var (
	// client errors
	ErrMissingOwner    = errors.New("user ID is required")
	ErrInvalidPayload  = errors.New("invalid resume payload")
	ErrInvalidTemplate = model.ErrInvalidTemplate

	ErrNotFound = errors.New("resume not found")

	// server errors; the cause is joined for logging
	ErrPersistence = errors.New("resume persistence failed")
	ErrExport      = errors.New("resume export failed")
)

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingOwner) || errors.Is(err, ErrInvalidPayload) || errors.Is(err, ErrInvalidTemplate)
}
