package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

// MaxBotIterations is a safety limit for the PlayRound loop
const MaxBotIterations = 1000

// ErrNoLetterAvailable is returned when a strategy runs out of letters
var ErrNoLetterAvailable = errors.New("strategy has no letter to guess")

// BotAction represents a single guess taken by a bot during PlayRound
type BotAction struct {
	Letter  rune
	Correct bool
	Pattern string
}

// Service plays rounds automatically using named strategies
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies builds every strategy in model.ValidBotStrategies.
// The pattern strategy searches the given word list.
func DefaultStrategies(rnd random.Random, words []string) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyRandom:    NewRandomStrategy(rnd),
		model.BotStrategyFrequency: NewFrequencyStrategy(),
		model.BotStrategyPattern:   NewPatternStrategy(words),
	}
}

// Strategy returns the strategy registered under name
func (s *Service) Strategy(name string) (Strategy, error) {
	strategy, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", name)
	}
	return strategy, nil
}

// ViewOf captures what a guesser can see of the controller's current round
func ViewOf(ctrl game.ControllerInterface) View {
	return View{
		Pattern: ctrl.RevealedPattern(),
		Guessed: ctrl.GuessedLetters(),
		Wrong:   ctrl.WrongLetters(),
	}
}

// PlayRound starts a new round on the controller and guesses until it concludes
func (s *Service) PlayRound(ctrl game.ControllerInterface, strategyName string) (*model.Round, []BotAction, error) {
	strategy, err := s.Strategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	round, err := ctrl.NewGame()
	if err != nil {
		return nil, nil, err
	}

	var actions []BotAction
	for i := 0; i < MaxBotIterations && !ctrl.IsOver(); i++ {
		letter := strategy.ChooseLetter(ViewOf(ctrl))
		if letter == 0 {
			return round, actions, ErrNoLetterAvailable
		}

		result, err := ctrl.Guess(letter)
		if err != nil {
			return round, actions, err
		}

		actions = append(actions, BotAction{
			Letter:  result.Letter,
			Correct: result.WasCorrect,
			Pattern: string(ctrl.RevealedPattern()),
		})
	}

	s.logger.Debug("bot round finished",
		slog.String("round_id", string(round.ID)),
		slog.String("strategy", strategyName),
		slog.Int("guesses", len(actions)),
		slog.String("status", string(ctrl.Status())),
	)

	return round, actions, nil
}
