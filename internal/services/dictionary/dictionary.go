package dictionary

import (
	"fmt"
	"slices"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// Dictionary is an immutable, named collection of candidate secret words
type Dictionary struct {
	name     string
	category string
	words    []string // uppercase, in construction order
	index    map[string]struct{}
	random   random.Random
}

// New creates a Dictionary from an in-memory word list.
// Words are normalized to uppercase and must use only the letters A-Z, the
// alphabet the bots guess from; anything else is rejected with
// model.ErrInvalidWord. An empty list is accepted, but
// PickWord will fail on it.
func New(name, category string, words []string, rnd random.Random) (*Dictionary, error) {
	normalized := make([]string, 0, len(words))
	index := make(map[string]struct{}, len(words))
	for _, word := range words {
		w, err := model.NormalizeWord(word)
		if err != nil {
			return nil, fmt.Errorf("dictionary %q: %w", name, err)
		}
		if !isASCIIWord(w) {
			return nil, fmt.Errorf("dictionary %q: %w: %q must use A-Z only", name, model.ErrInvalidWord, word)
		}
		normalized = append(normalized, w)
		index[w] = struct{}{}
	}

	return &Dictionary{
		name:     name,
		category: category,
		words:    normalized,
		index:    index,
		random:   rnd,
	}, nil
}

func isASCIIWord(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// PickWord returns a uniformly random word from the dictionary
func (d *Dictionary) PickWord() (string, error) {
	if len(d.words) == 0 {
		return "", fmt.Errorf("dictionary %q: %w", d.name, model.ErrEmptyDictionary)
	}
	return d.words[d.random.Intn(len(d.words))], nil
}

// Name returns the display name of the dictionary
func (d *Dictionary) Name() string {
	return d.name
}

// Category returns the category label of the dictionary
func (d *Dictionary) Category() string {
	return d.category
}

// Len returns the number of words, counting duplicates
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the normalized word list
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

// Contains checks if a word exists in the dictionary (case-insensitive)
func (d *Dictionary) Contains(word string) bool {
	w, err := model.NormalizeWord(word)
	if err != nil {
		return false
	}
	_, ok := d.index[w]
	return ok
}

// WithRandom returns a copy of the dictionary drawing from a different random source
func (d *Dictionary) WithRandom(rnd random.Random) *Dictionary {
	clone := *d
	clone.random = rnd
	return &clone
}

// WordSource is the part of a Dictionary the game controller depends on
type WordSource interface {
	PickWord() (string, error)
	Name() string
	Category() string
}

var _ WordSource = (*Dictionary)(nil)
