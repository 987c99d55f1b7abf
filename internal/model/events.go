package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRoundStarted   EventType = "round_started"
	EventGuessApplied   EventType = "guess_applied"
	EventRoundConcluded EventType = "round_concluded"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoundID   RoundID
	Payload   any // Type-specific data
}

// RoundStartedPayload contains data for round started events
type RoundStartedPayload struct {
	DictionaryName  string
	WordLength      int
	MaxWrongGuesses int
}

// GuessAppliedPayload contains data for guess applied events
type GuessAppliedPayload struct {
	Result            GuessResult
	Pattern           []rune
	RemainingAttempts int
}

// RoundConcludedPayload contains data for round concluded events
type RoundConcludedPayload struct {
	Summary RoundSummary
}
