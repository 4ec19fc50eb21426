package repositories

import "errors"

// Typed failures surfaced by the repositories. Handlers translate these to
// HTTP; storage-level faults (unique violations, missing rows) never leak
// past this package in raw form.
var (
	// ErrDuplicateIdentity signals a username or email collision on signup
	// or profile edit.
	ErrDuplicateIdentity = errors.New("username or email already taken")

	// ErrNotFound signals that a referenced user or message does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized signals that the actor lacks rights for a mutation,
	// e.g. deleting another user's message without moderation rights.
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidOperation signals a structurally forbidden edge, e.g.
	// following oneself or liking one's own message.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidCredential signals a failed password re-entry when
	// authorizing a profile change.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrValidation signals empty or oversized input text.
	ErrValidation = errors.New("validation failed")
)
