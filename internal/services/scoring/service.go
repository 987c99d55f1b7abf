package scoring

import (
	"fmt"

	"github.com/mcoot/hangman-go/internal/model"
)

// Policy holds the tunable scale factors for a won round.
// All factors must be non-negative so that each extra wrong guess can only
// lower the delta.
type Policy struct {
	WinBonus            int // Flat award for any win
	PerRemainingAttempt int // Award per unused wrong guess
	PerDistinctLetter   int // Award per distinct letter in the word
}

// DefaultPolicy returns the default scoring policy
func DefaultPolicy() Policy {
	return Policy{
		WinBonus:            5,
		PerRemainingAttempt: 1,
		PerDistinctLetter:   0,
	}
}

// Validate checks that every factor is non-negative
func (p Policy) Validate() error {
	if p.WinBonus < 0 || p.PerRemainingAttempt < 0 || p.PerDistinctLetter < 0 {
		return fmt.Errorf("scoring factors must be non-negative: %+v", p)
	}
	return nil
}

// Service computes score deltas for concluded rounds
type Service struct {
	policy Policy
}

// New creates a new ScoringService
func New(policy Policy) (*Service, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Service{policy: policy}, nil
}

// Policy returns the policy in use
func (s *Service) Policy() Policy {
	return s.policy
}

// ComputeDelta returns the score delta for a concluded game.
// Lost games score zero; won games score the win bonus plus the remaining
// attempt and distinct letter awards.
func (s *Service) ComputeDelta(state *model.GameState) (int, error) {
	switch state.Status() {
	case model.StatusWon:
		return s.policy.WinBonus +
			s.policy.PerRemainingAttempt*state.RemainingAttempts() +
			s.policy.PerDistinctLetter*state.DistinctLetters(), nil
	case model.StatusLost:
		return 0, nil
	default:
		return 0, model.ErrGameNotOver
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ComputeDelta(state *model.GameState) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
