package bot

import "unicode"

// Alphabet is the set of letters bots guess from
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// View is what a guesser can see of a round in progress
type View struct {
	Pattern []rune // Revealed pattern, model.Blank for hidden positions
	Guessed []rune // All letters guessed so far
	Wrong   []rune // Letters guessed that are not in the word
}

// HasGuessed reports whether the letter appears in Guessed
func (v View) HasGuessed(letter rune) bool {
	letter = unicode.ToUpper(letter)
	for _, g := range v.Guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// Unguessed returns the alphabet letters not yet guessed, in order
func (v View) Unguessed() []rune {
	var result []rune
	for _, letter := range Alphabet {
		if !v.HasGuessed(letter) {
			result = append(result, letter)
		}
	}
	return result
}

// Strategy defines how a bot chooses its next letter
type Strategy interface {
	// ChooseLetter selects an unguessed letter, or 0 if none remain
	ChooseLetter(view View) rune
}
