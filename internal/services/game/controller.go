package game

import (
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/scoring"
)

const (
	// RoundIDAlphabet is the character set for generating round IDs
	RoundIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// RoundIDLength is the length of generated round IDs
	RoundIDLength = 12
	// DefaultMaxWrongGuesses matches the nine-stage hangman drawing
	DefaultMaxWrongGuesses = 9
)

// ScoreListener receives the score delta of each concluded round
type ScoreListener func(delta int)

// EventListener receives every round event
type EventListener func(event model.Event)

// Controller runs rounds end-to-end: it draws words, owns the current
// GameState, applies guesses and notifies listeners when a round concludes.
//
// A Controller is not safe for concurrent use; callers serialize access.
type Controller struct {
	words           dictionary.WordSource
	scoringService  scoring.ServiceInterface
	clock           clock.Clock
	random          random.Random
	logger          *slog.Logger
	maxWrongGuesses int

	phase model.RoundPhase
	round *model.Round

	scoreListeners []ScoreListener
	eventListeners []EventListener
}

// NewController creates a new GameController
func NewController(
	words dictionary.WordSource,
	scoringService scoring.ServiceInterface,
	maxWrongGuesses int,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if maxWrongGuesses < 1 {
		maxWrongGuesses = DefaultMaxWrongGuesses
	}
	return &Controller{
		words:           words,
		scoringService:  scoringService,
		clock:           clock,
		random:          random,
		logger:          logger.With(slog.String("component", "game-controller")),
		maxWrongGuesses: maxWrongGuesses,
		phase:           model.PhaseNoRound,
	}
}

// OnScoreUpdate registers a listener for round score deltas
func (c *Controller) OnScoreUpdate(listener ScoreListener) {
	c.scoreListeners = append(c.scoreListeners, listener)
}

// Subscribe registers a listener for all round events
func (c *Controller) Subscribe(listener EventListener) {
	c.eventListeners = append(c.eventListeners, listener)
}

// NewGame starts a fresh round, discarding any previous one.
// If no word can be drawn the previous round is kept and the error returned.
func (c *Controller) NewGame() (*model.Round, error) {
	word, err := c.words.PickWord()
	if err != nil {
		c.logger.Error("failed to pick word",
			slog.String("dictionary", c.words.Name()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	state, err := model.NewGameState(word, c.maxWrongGuesses)
	if err != nil {
		return nil, err
	}

	if c.phase == model.PhaseRoundActive {
		c.logger.Info("round discarded",
			slog.String("round_id", string(c.round.ID)),
		)
	}

	now := c.clock.Now()
	c.round = &model.Round{
		ID:                 model.RoundID(c.random.String(RoundIDLength, RoundIDAlphabet)),
		DictionaryName:     c.words.Name(),
		DictionaryCategory: c.words.Category(),
		State:              state,
		StartedAt:          now,
	}
	c.phase = model.PhaseRoundActive

	c.logger.Info("round started",
		slog.String("round_id", string(c.round.ID)),
		slog.String("dictionary", c.round.DictionaryName),
		slog.Int("word_length", len(state.RevealedPattern())),
		slog.Int("max_wrong_guesses", c.maxWrongGuesses),
	)

	c.emit(c.round.ID, model.EventRoundStarted, model.RoundStartedPayload{
		DictionaryName:  c.round.DictionaryName,
		WordLength:      len(state.RevealedPattern()),
		MaxWrongGuesses: c.maxWrongGuesses,
	})

	return c.round, nil
}

// Guess applies a letter to the active round. GameState errors are returned
// unchanged. The guess that concludes the round triggers scoring and the
// score notification.
func (c *Controller) Guess(letter rune) (model.GuessResult, error) {
	if c.phase != model.PhaseRoundActive {
		return model.GuessResult{}, model.ErrNoActiveRound
	}

	round := c.round
	state := round.State
	result, err := state.ApplyGuess(letter)
	if err != nil {
		return model.GuessResult{}, err
	}

	c.logger.Debug("guess applied",
		slog.String("round_id", string(round.ID)),
		slog.String("letter", string(result.Letter)),
		slog.Bool("new", result.WasNew),
		slog.Bool("correct", result.WasCorrect),
		slog.Int("remaining_attempts", state.RemainingAttempts()),
	)

	c.emit(round.ID, model.EventGuessApplied, model.GuessAppliedPayload{
		Result:            result,
		Pattern:           state.RevealedPattern(),
		RemainingAttempts: state.RemainingAttempts(),
	})

	if state.IsOver() {
		if err := c.concludeRound(); err != nil {
			return result, err
		}
	}

	return result, nil
}

// concludeRound scores the round and notifies listeners. Listeners may start
// a new round, so only the captured round is read after they run.
func (c *Controller) concludeRound() error {
	round := c.round
	delta, err := c.scoringService.ComputeDelta(round.State)
	if err != nil {
		return err
	}

	c.phase = model.PhaseRoundOver
	round.ScoreDelta = delta
	round.ConcludedAt = c.clock.Now()
	summary := round.Summary()

	c.logger.Info("round concluded",
		slog.String("round_id", string(round.ID)),
		slog.String("status", string(summary.Status)),
		slog.Int("wrong_guesses", summary.WrongGuesses),
		slog.Int("score_delta", delta),
		slog.Duration("duration", c.clock.Since(round.StartedAt)),
	)

	for _, listener := range c.scoreListeners {
		listener(delta)
	}

	c.emit(round.ID, model.EventRoundConcluded, model.RoundConcludedPayload{
		Summary: summary,
	})

	return nil
}

func (c *Controller) emit(roundID model.RoundID, eventType model.EventType, payload any) {
	if len(c.eventListeners) == 0 {
		return
	}
	event := model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		RoundID:   roundID,
		Payload:   payload,
	}
	for _, listener := range c.eventListeners {
		listener(event)
	}
}

// Phase returns the current round lifecycle phase
func (c *Controller) Phase() model.RoundPhase {
	return c.phase
}

// Round returns the current round, or nil if none has started
func (c *Controller) Round() *model.Round {
	return c.round
}

// DictionaryName returns the name of the dictionary words are drawn from
func (c *Controller) DictionaryName() string {
	return c.words.Name()
}

// MaxWrongGuesses returns the wrong guess limit applied to new rounds
func (c *Controller) MaxWrongGuesses() int {
	return c.maxWrongGuesses
}

// Status returns the current round status, or "" if no round has started
func (c *Controller) Status() model.GameStatus {
	if c.round == nil {
		return ""
	}
	return c.round.State.Status()
}

// RevealedPattern returns the current round's pattern, or nil if none has started
func (c *Controller) RevealedPattern() []rune {
	if c.round == nil {
		return nil
	}
	return c.round.State.RevealedPattern()
}

// RemainingAttempts returns the wrong guesses left in the current round
func (c *Controller) RemainingAttempts() int {
	if c.round == nil {
		return 0
	}
	return c.round.State.RemainingAttempts()
}

// IsOver returns true if the current round has concluded
func (c *Controller) IsOver() bool {
	return c.phase == model.PhaseRoundOver
}

// GuessedLetters returns the letters guessed in the current round
func (c *Controller) GuessedLetters() []rune {
	if c.round == nil {
		return nil
	}
	return c.round.State.GuessedLetters()
}

// WrongLetters returns the incorrect letters guessed in the current round
func (c *Controller) WrongLetters() []rune {
	if c.round == nil {
		return nil
	}
	return c.round.State.WrongLetters()
}

// Answer returns the secret word once the round is over
func (c *Controller) Answer() (string, bool) {
	if c.phase != model.PhaseRoundOver {
		return "", false
	}
	return c.round.State.SecretWord(), true
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame() (*model.Round, error)
	Guess(letter rune) (model.GuessResult, error)
	OnScoreUpdate(listener ScoreListener)
	Subscribe(listener EventListener)
	Phase() model.RoundPhase
	Round() *model.Round
	Status() model.GameStatus
	RevealedPattern() []rune
	RemainingAttempts() int
	IsOver() bool
	GuessedLetters() []rune
	WrongLetters() []rune
	Answer() (string, bool)
}

var _ ControllerInterface = (*Controller)(nil)
