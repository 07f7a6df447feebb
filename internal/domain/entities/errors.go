package entities

import "errors"

// Domain errors
var (
	// Transcript errors
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrUnsupportedFormat  = errors.New("unsupported transcript format")
	ErrTranscriptTooLarge = errors.New("transcript exceeds size limit")

	// Record errors
	ErrRecordNotFound = errors.New("meeting record not found")
	ErrRecordExpired  = errors.New("meeting record expired")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
