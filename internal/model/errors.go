package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrUsageNotFound   = errors.New("usage not found")

	// Validation errors
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidLetter   = errors.New("letter must be a single alphabetic character")

	// Game rule errors
	ErrAlreadyGuessed = errors.New("letter was already guessed")
	ErrGameOver       = errors.New("game is over")

	// Authorization errors
	ErrWrongGameScope = errors.New("credential is not scoped to this game")

	// Seed data errors
	ErrNoUsageForLanguage = errors.New("no usage available for language")
)
