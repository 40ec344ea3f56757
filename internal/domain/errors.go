package domain

import "errors"

var (
	// Credential errors
	ErrCredentialMissing = errors.New("api credential missing")

	// Fetch errors
	ErrSourceUnavailable = errors.New("payment source unavailable")
	ErrMalformedRecord   = errors.New("malformed upstream record")

	// Filter errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidCategory  = errors.New("invalid category filter")
)
