package config

// Config is the root application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds round settings.
type GameConfig struct {
	MaxWrongGuesses int    `yaml:"max_wrong_guesses" env:"HANGMAN_MAX_WRONG_GUESSES" env-default:"9"`
	Dictionary      string `yaml:"dictionary"        env:"HANGMAN_DICTIONARY"        env-default:"animals"`
	// Seed selects a deterministic random source; 0 uses crypto/rand.
	Seed uint64 `yaml:"seed" env:"HANGMAN_SEED" env-default:"0"`
}

// ScoringConfig holds the score policy factors for won rounds.
type ScoringConfig struct {
	WinBonus            int `yaml:"win_bonus"             env:"HANGMAN_SCORE_WIN_BONUS"             env-default:"5"`
	PerRemainingAttempt int `yaml:"per_remaining_attempt" env:"HANGMAN_SCORE_PER_REMAINING_ATTEMPT" env-default:"1"`
	PerDistinctLetter   int `yaml:"per_distinct_letter"   env:"HANGMAN_SCORE_PER_DISTINCT_LETTER"   env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"HANGMAN_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"HANGMAN_LOG_FORMAT" env-default:"text"`
}
