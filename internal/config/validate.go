package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Game.MaxWrongGuesses < 1 {
		return fmt.Errorf("game.max_wrong_guesses must be >= 1 (got %d)", c.Game.MaxWrongGuesses)
	}
	if strings.TrimSpace(c.Game.Dictionary) == "" {
		return fmt.Errorf("game.dictionary must not be empty")
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}

	return nil
}

func (s *ScoringConfig) validate() error {
	if s.WinBonus < 0 {
		return fmt.Errorf("win_bonus must be >= 0 (got %d)", s.WinBonus)
	}
	if s.PerRemainingAttempt < 0 {
		return fmt.Errorf("per_remaining_attempt must be >= 0 (got %d)", s.PerRemainingAttempt)
	}
	if s.PerDistinctLetter < 0 {
		return fmt.Errorf("per_distinct_letter must be >= 0 (got %d)", s.PerDistinctLetter)
	}
	return nil
}
