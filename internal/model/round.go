package model

import "time"

// RoundID uniquely identifies a round
type RoundID string

// RoundPhase represents the controller's position in the round lifecycle
type RoundPhase string

const (
	PhaseNoRound     RoundPhase = "no_round"     // No round has been started
	PhaseRoundActive RoundPhase = "round_active" // Accepting guesses
	PhaseRoundOver   RoundPhase = "round_over"   // Concluded, waiting for a new game
)

// Round is one play-through from word selection to conclusion
type Round struct {
	ID                 RoundID
	DictionaryName     string
	DictionaryCategory string
	State              *GameState

	// ScoreDelta is set once the round concludes
	ScoreDelta int

	StartedAt   time.Time
	ConcludedAt time.Time // Zero while the round is in progress
}

// IsConcluded returns true if the round has been scored
func (r *Round) IsConcluded() bool {
	return !r.ConcludedAt.IsZero()
}

// Summary returns a lightweight record of the round
func (r *Round) Summary() RoundSummary {
	return RoundSummary{
		ID:           r.ID,
		Word:         r.State.SecretWord(),
		Status:       r.State.Status(),
		WrongGuesses: r.State.WrongGuessCount(),
		ScoreDelta:   r.ScoreDelta,
		Duration:     r.Duration(),
		ConcludedAt:  r.ConcludedAt,
	}
}

// Duration returns how long the round took, or 0 while it is in progress
func (r *Round) Duration() time.Duration {
	if !r.IsConcluded() {
		return 0
	}
	return r.ConcludedAt.Sub(r.StartedAt)
}

// RoundSummary is a lightweight record of a concluded round
type RoundSummary struct {
	ID           RoundID
	Word         string
	Status       GameStatus
	WrongGuesses int
	ScoreDelta   int
	Duration     time.Duration
	ConcludedAt  time.Time
}
