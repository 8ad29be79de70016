package domain

import "errors"

var (
	// ErrInvalidRecord is returned when a post record is missing a required
	// field (post ID or author handle) and cannot be rendered.
	ErrInvalidRecord = errors.New("post record missing required fields")

	// ErrSpanOutOfRange is returned when an entity span does not fit the
	// tokenized post text. Entity indices must match the original text in
	// count and units; a mismatch is an upstream contract violation.
	ErrSpanOutOfRange = errors.New("entity span out of range")

	// ErrInvalidURL is returned when a status URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid status URL format")

	// ErrTweetNotFound is returned when the requested post does not exist.
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrSourceUnavailable is returned when the upstream source failed.
	ErrSourceUnavailable = errors.New("post source unavailable")

	// ErrRateLimited is returned when the per-client fetch limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)
