// Package common defines sentinel errors shared across the server layers.
// Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential verification errors. They are kept distinct on purpose:
	// the login endpoint reports unknown users and wrong passwords with
	// different messages, matching the established API contract.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	// Token errors.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// Authorization errors.
	ErrForbidden = errors.New("forbidden")

	// Bootstrap errors.
	ErrLeaderExists = errors.New("a leader account already exists")

	// Generic internal failure surfaced to clients without detail.
	ErrInternal = errors.New("internal error")
)
