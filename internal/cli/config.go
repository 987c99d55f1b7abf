package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration
type Config struct {
	Dictionary      string
	MaxWrongGuesses int
	Seed            uint64
	EnvFile         string
	Output          string
	Verbose         bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile: getEnvOrDefault("HANGMAN_ENV_FILE", ".env"),
		Output:  "text",
		Verbose: false,
	}
}

// LoadEnvFile loads variables from the env file into the process environment.
// A missing file is not an error; variables already set are not overridden.
func (c *Config) LoadEnvFile() error {
	if c.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
