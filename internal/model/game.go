package model

import (
	"fmt"
	"slices"
	"unicode"
)

// GameStatus represents the outcome state of a single round
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusLost       GameStatus = "lost"
)

// Blank marks an unrevealed position in a revealed pattern
const Blank = '_'

// GuessResult describes the effect of a single guess
type GuessResult struct {
	Letter     rune
	WasNew     bool // false for a repeat of an earlier guess
	WasCorrect bool
	Status     GameStatus // Status after the guess was applied
}

// GameState is the guess state machine for one secret word.
//
// guessed only grows, and wrongCount always equals the number of guessed
// letters absent from the word. Once the status leaves StatusInProgress the
// state is frozen.
type GameState struct {
	secretWord      []rune
	letters         map[rune]struct{} // distinct letters of secretWord
	guessed         map[rune]bool     // letter -> was correct
	maxWrongGuesses int
	wrongCount      int
	status          GameStatus
}

// NewGameState creates a game state for the given secret word.
// The word is normalized to uppercase and must consist of letters only.
func NewGameState(secretWord string, maxWrongGuesses int) (*GameState, error) {
	word, err := NormalizeWord(secretWord)
	if err != nil {
		return nil, err
	}
	if maxWrongGuesses < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxWrongGuesses, maxWrongGuesses)
	}

	runes := []rune(word)
	letters := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		letters[r] = struct{}{}
	}

	return &GameState{
		secretWord:      runes,
		letters:         letters,
		guessed:         make(map[rune]bool),
		maxWrongGuesses: maxWrongGuesses,
		status:          StatusInProgress,
	}, nil
}

// NormalizeWord uppercases a word, rejecting empty words and words with
// non-letter characters
func NormalizeWord(word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	runes := []rune(word)
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q contains non-letter %q", ErrInvalidWord, word, r)
		}
		runes[i] = unicode.ToUpper(r)
	}
	return string(runes), nil
}

// ApplyGuess records a letter guess and returns its effect.
// Repeated guesses are idempotent and report WasNew=false.
func (g *GameState) ApplyGuess(letter rune) (GuessResult, error) {
	if !unicode.IsLetter(letter) {
		return GuessResult{}, fmt.Errorf("%w: %q is not a letter", ErrInvalidGuess, letter)
	}
	if g.status != StatusInProgress {
		return GuessResult{}, ErrGameAlreadyOver
	}

	letter = unicode.ToUpper(letter)

	if correct, seen := g.guessed[letter]; seen {
		return GuessResult{
			Letter:     letter,
			WasNew:     false,
			WasCorrect: correct,
			Status:     g.status,
		}, nil
	}

	_, correct := g.letters[letter]
	g.guessed[letter] = correct
	if !correct {
		g.wrongCount++
	}
	g.status = g.computeStatus()

	return GuessResult{
		Letter:     letter,
		WasNew:     true,
		WasCorrect: correct,
		Status:     g.status,
	}, nil
}

// computeStatus checks for a win before a loss
func (g *GameState) computeStatus() GameStatus {
	if g.allLettersGuessed() {
		return StatusWon
	}
	if g.wrongCount >= g.maxWrongGuesses {
		return StatusLost
	}
	return StatusInProgress
}

func (g *GameState) allLettersGuessed() bool {
	for r := range g.letters {
		if _, ok := g.guessed[r]; !ok {
			return false
		}
	}
	return true
}

// RevealedPattern returns the secret word with unguessed positions as Blank
func (g *GameState) RevealedPattern() []rune {
	pattern := make([]rune, len(g.secretWord))
	for i, r := range g.secretWord {
		if _, ok := g.guessed[r]; ok {
			pattern[i] = r
		} else {
			pattern[i] = Blank
		}
	}
	return pattern
}

// RemainingAttempts returns how many more wrong guesses end the round
func (g *GameState) RemainingAttempts() int {
	return g.maxWrongGuesses - g.wrongCount
}

// IsOver returns true once the round is won or lost
func (g *GameState) IsOver() bool {
	return g.status != StatusInProgress
}

// Status returns the current status
func (g *GameState) Status() GameStatus {
	return g.status
}

// WrongGuessCount returns the number of incorrect distinct guesses
func (g *GameState) WrongGuessCount() int {
	return g.wrongCount
}

// MaxWrongGuesses returns the wrong guess limit for this round
func (g *GameState) MaxWrongGuesses() int {
	return g.maxWrongGuesses
}

// SecretWord returns the normalized secret word
func (g *GameState) SecretWord() string {
	return string(g.secretWord)
}

// DistinctLetters returns the number of distinct letters in the secret word
func (g *GameState) DistinctLetters() int {
	return len(g.letters)
}

// HasGuessed reports whether the letter (case-insensitive) has been guessed
func (g *GameState) HasGuessed(letter rune) bool {
	_, ok := g.guessed[unicode.ToUpper(letter)]
	return ok
}

// GuessedLetters returns all guessed letters in alphabetical order
func (g *GameState) GuessedLetters() []rune {
	result := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		result = append(result, r)
	}
	slices.Sort(result)
	return result
}

// WrongLetters returns the incorrectly guessed letters in alphabetical order
func (g *GameState) WrongLetters() []rune {
	var result []rune
	for r, correct := range g.guessed {
		if !correct {
			result = append(result, r)
		}
	}
	slices.Sort(result)
	return result
}
