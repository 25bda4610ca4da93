package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInputRead = errors.New("failed to read line")

	// Guess errors
	ErrGuessParse = errors.New("guess is not a valid number")
)
