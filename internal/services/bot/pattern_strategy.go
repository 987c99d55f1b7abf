package bot

import (
	"unicode"

	"github.com/mcoot/hangman-go/internal/model"
)

// PatternStrategy narrows a word list down to the words consistent with the
// revealed pattern and wrong letters, then guesses the unguessed letter that
// appears in the most candidates. With no candidates left it falls back to
// letter frequency.
type PatternStrategy struct {
	words    [][]rune
	fallback Strategy
}

// NewPatternStrategy creates a PatternStrategy over the given words
func NewPatternStrategy(words []string) *PatternStrategy {
	normalized := make([][]rune, 0, len(words))
	for _, w := range words {
		word, err := model.NormalizeWord(w)
		if err != nil {
			continue
		}
		normalized = append(normalized, []rune(word))
	}
	return &PatternStrategy{
		words:    normalized,
		fallback: NewFrequencyStrategy(),
	}
}

// ChooseLetter returns the unguessed letter shared by the most candidate words
func (s *PatternStrategy) ChooseLetter(view View) rune {
	candidates := s.Candidates(view)

	counts := make(map[rune]int)
	for _, word := range candidates {
		seen := make(map[rune]bool)
		for _, r := range word {
			if seen[r] || view.HasGuessed(r) {
				continue
			}
			seen[r] = true
			counts[r]++
		}
	}

	best := rune(0)
	bestCount := 0
	for _, letter := range Alphabet {
		if counts[letter] > bestCount {
			best = letter
			bestCount = counts[letter]
		}
	}
	if best != 0 {
		return best
	}
	return s.fallback.ChooseLetter(view)
}

// Candidates returns the words still consistent with the view
func (s *PatternStrategy) Candidates(view View) [][]rune {
	wrong := make(map[rune]bool, len(view.Wrong))
	for _, r := range view.Wrong {
		wrong[unicode.ToUpper(r)] = true
	}

	var result [][]rune
	for _, word := range s.words {
		if matches(word, view, wrong) {
			result = append(result, word)
		}
	}
	return result
}

func matches(word []rune, view View, wrong map[rune]bool) bool {
	if len(word) != len(view.Pattern) {
		return false
	}
	for i, r := range word {
		if wrong[r] {
			return false
		}
		p := view.Pattern[i]
		if p == model.Blank {
			// A hidden position cannot hold a letter that was already guessed
			if view.HasGuessed(r) {
				return false
			}
			continue
		}
		if p != r {
			return false
		}
	}
	return true
}
