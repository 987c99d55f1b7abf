package model

import "errors"

// Common errors used across the application
var (
	// Dictionary errors
	ErrEmptyDictionary    = errors.New("dictionary has no words")
	ErrDictionaryNotFound = errors.New("dictionary not found")

	// Game state errors
	ErrInvalidWord            = errors.New("invalid secret word")
	ErrInvalidMaxWrongGuesses = errors.New("max wrong guesses must be positive")
	ErrInvalidGuess           = errors.New("invalid guess")
	ErrGameAlreadyOver        = errors.New("game is already over")

	// Scoring errors
	ErrGameNotOver = errors.New("game is not over")

	// Controller errors
	ErrNoActiveRound = errors.New("no active round")
)
