package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/config"
	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/services/scoring"
)

// App contains all wired application components
type App struct {
	Config config.Config

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Catalog        *dictionary.Catalog
	Dictionary     *dictionary.Dictionary
	ScoringService *scoring.Service
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// App is the loaded application configuration
	App config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Random overrides the random source (optional)
	// If nil, App.Game.Seed selects a seeded or crypto source
	Random random.Random
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rnd := cfg.Random
	if rnd == nil {
		if cfg.App.Game.Seed != 0 {
			rnd = random.NewSeeded(cfg.App.Game.Seed)
		} else {
			rnd = random.New()
		}
	}

	return newWithDependencies(cfg.App, clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(appCfg config.Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	catalog, err := dictionary.NewBuiltinCatalog(rnd)
	if err != nil {
		return nil, err
	}

	dict, err := catalog.Get(appCfg.Game.Dictionary)
	if err != nil {
		return nil, err
	}

	scoringService, err := scoring.New(scoring.Policy{
		WinBonus:            appCfg.Scoring.WinBonus,
		PerRemainingAttempt: appCfg.Scoring.PerRemainingAttempt,
		PerDistinctLetter:   appCfg.Scoring.PerDistinctLetter,
	})
	if err != nil {
		return nil, err
	}

	gameController := game.NewController(dict, scoringService, appCfg.Game.MaxWrongGuesses, clk, rnd, logger)
	botService := bot.NewService(bot.DefaultStrategies(rnd, dict.Words()), logger)

	return &App{
		Config:         appCfg,
		Clock:          clk,
		Random:         rnd,
		Catalog:        catalog,
		Dictionary:     dict,
		ScoringService: scoringService,
		GameController: gameController,
		BotService:     botService,
	}, nil
}

// DefaultAppConfig returns the configuration used when nothing is loaded
func DefaultAppConfig() config.Config {
	policy := scoring.DefaultPolicy()
	return config.Config{
		Game: config.GameConfig{
			MaxWrongGuesses: game.DefaultMaxWrongGuesses,
			Dictionary:      dictionary.NameAnimals,
		},
		Scoring: config.ScoringConfig{
			WinBonus:            policy.WinBonus,
			PerRemainingAttempt: policy.PerRemainingAttempt,
			PerDistinctLetter:   policy.PerDistinctLetter,
		},
		Log: config.LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
