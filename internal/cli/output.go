package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/hangman-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoundView:
		o.printRoundView(v)
	case GuessView:
		o.printGuessView(v)
	case RoundResult:
		o.printRoundResult(v)
	case AutoResult:
		o.printAutoResult(v)
	case []DictionaryInfo:
		o.printDictionaries(v)
	case SessionSummary:
		o.printSessionSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoundView is the visible state of a round in progress
type RoundView struct {
	Type              string `json:"type"`
	RoundID           string `json:"round_id"`
	Dictionary        string `json:"dictionary"`
	Category          string `json:"category"`
	Pattern           string `json:"pattern"`
	WrongLetters      string `json:"wrong_letters"`
	RemainingAttempts int    `json:"remaining_attempts"`
	Status            string `json:"status"`
}

// GuessView is the result of one guess
type GuessView struct {
	Type              string `json:"type"`
	Letter            string `json:"letter"`
	New               bool   `json:"new"`
	Correct           bool   `json:"correct"`
	Pattern           string `json:"pattern"`
	WrongLetters      string `json:"wrong_letters"`
	RemainingAttempts int    `json:"remaining_attempts"`
	Status            string `json:"status"`
}

// RoundResult is the outcome of a concluded round
type RoundResult struct {
	Type         string `json:"type"`
	RoundID      string `json:"round_id"`
	Word         string `json:"word"`
	Status       string `json:"status"`
	WrongGuesses int    `json:"wrong_guesses"`
	ScoreDelta   int    `json:"score_delta"`
	TotalScore   int    `json:"total_score"`
}

// AutoResult summarizes rounds played by a bot
type AutoResult struct {
	Strategy   string        `json:"strategy"`
	Dictionary string        `json:"dictionary"`
	Rounds     []RoundResult `json:"rounds"`
	Won        int           `json:"won"`
	Lost       int           `json:"lost"`
	TotalScore int           `json:"total_score"`
}

// SessionSummary is printed when an interactive session ends
type SessionSummary struct {
	Type       string `json:"type"`
	Rounds     int    `json:"rounds"`
	Won        int    `json:"won"`
	Lost       int    `json:"lost"`
	TotalScore int    `json:"total_score"`
}

// DictionaryInfo describes a registered dictionary
type DictionaryInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Words    int    `json:"words"`
}

// spaced renders a pattern with a space between letters
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func (o *Output) printRoundView(r RoundView) {
	fmt.Fprintf(o.w, "New round (%s): guess the %s\n", r.RoundID, strings.ToLower(r.Category))
	fmt.Fprintf(o.w, "Word: %s\n", spaced(r.Pattern))
	fmt.Fprintf(o.w, "Attempts left: %d\n", r.RemainingAttempts)
}

func (o *Output) printGuessView(g GuessView) {
	switch {
	case !g.New:
		fmt.Fprintf(o.w, "You already guessed %s\n", g.Letter)
	case g.Correct:
		fmt.Fprintf(o.w, "Yes, there is a %s\n", g.Letter)
	default:
		fmt.Fprintf(o.w, "No %s in the word\n", g.Letter)
	}
	fmt.Fprintf(o.w, "Word: %s\n", spaced(g.Pattern))
	if g.WrongLetters != "" {
		fmt.Fprintf(o.w, "Misses: %s\n", spaced(g.WrongLetters))
	}
	fmt.Fprintf(o.w, "Attempts left: %d\n", g.RemainingAttempts)
}

func (o *Output) printRoundResult(r RoundResult) {
	if r.Status == "won" {
		fmt.Fprintf(o.w, "You win! The word was %s (+%d points)\n", r.Word, r.ScoreDelta)
	} else {
		fmt.Fprintf(o.w, "You lose. The word was %s\n", r.Word)
	}
	fmt.Fprintf(o.w, "Score: %d\n", r.TotalScore)
}

func (o *Output) printAutoResult(a AutoResult) {
	fmt.Fprintf(o.w, "Strategy: %s\n", model.BotStrategyDisplayName(a.Strategy))
	fmt.Fprintf(o.w, "Dictionary: %s\n", a.Dictionary)
	for i, r := range a.Rounds {
		fmt.Fprintf(o.w, "  %d. %-14s %-4s wrong=%d +%d\n", i+1, r.Word, r.Status, r.WrongGuesses, r.ScoreDelta)
	}
	fmt.Fprintf(o.w, "Won: %d  Lost: %d\n", a.Won, a.Lost)
	fmt.Fprintf(o.w, "Total score: %d\n", a.TotalScore)
}

func (o *Output) printSessionSummary(s SessionSummary) {
	fmt.Fprintf(o.w, "Rounds played: %d (won %d, lost %d)\n", s.Rounds, s.Won, s.Lost)
	fmt.Fprintf(o.w, "Final score: %d\n", s.TotalScore)
}

func (o *Output) printDictionaries(ds []DictionaryInfo) {
	for _, d := range ds {
		fmt.Fprintf(o.w, "%-12s %-12s %d words\n", d.Name, d.Category, d.Words)
	}
}
