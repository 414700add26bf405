package app

import "errors"

var (
	ErrEmailAndPasswordRequired = errors.New("email and password required")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidToken             = errors.New("invalid token")
	ErrUserNotFound             = errors.New("user not found")

	ErrPersonaNotFound = errors.New("persona not found")
	ErrChatNotFound    = errors.New("chat not found")
	// ErrPremiumRequired gates premium personas and the free message quota.
	ErrPremiumRequired = errors.New("premium required")
	ErrMessageRequired = errors.New("message content required")

	ErrQuoteNotFound = errors.New("quote not found")
	ErrBlockNotFound = errors.New("block not found")
	ErrInvalidDate   = errors.New("invalid date")

	// ErrExportUnavailable is returned when no object store is configured.
	ErrExportUnavailable = errors.New("export storage not configured")
)
