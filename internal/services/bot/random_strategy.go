package bot

import (
	"github.com/mcoot/hangman-go/internal/dependencies/random"
)

// RandomStrategy picks a random unguessed letter
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseLetter returns a random letter that has not been guessed
func (s *RandomStrategy) ChooseLetter(view View) rune {
	candidates := view.Unguessed()
	if len(candidates) == 0 {
		return 0
	}
	return candidates[s.random.Intn(len(candidates))]
}
