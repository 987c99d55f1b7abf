package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/config"
	"github.com/mcoot/hangman-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil

	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Play hangman in the terminal",
		Long: `hangman is a terminal front end for the hangman game engine.

Play rounds interactively, let a bot play them for you, or list the
built-in dictionaries. Settings come from HANGMAN_* environment variables,
an optional YAML file named by HANGMAN_CONFIG, and the flags below.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := buildApp(cmd)
			if err != nil {
				return err
			}
			app = built
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Dictionary, "dictionary", "d", "", "Dictionary to draw words from (env: HANGMAN_DICTIONARY)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxWrongGuesses, "max-wrong", 0, "Wrong guesses allowed per round (env: HANGMAN_MAX_WRONG_GUESSES)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for deterministic word selection (env: HANGMAN_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Env file to load before reading config (env: HANGMAN_ENV_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newAutoCmd())
	rootCmd.AddCommand(newDictionariesCmd())

	return rootCmd
}

// buildApp loads configuration, applies flag overrides and wires the application
func buildApp(cmd *cobra.Command) (*factory.App, error) {
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
	}

	if err := cfg.LoadEnvFile(); err != nil {
		return nil, err
	}

	appCfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dictionary") {
		appCfg.Game.Dictionary = cfg.Dictionary
	}
	if flags.Changed("max-wrong") {
		appCfg.Game.MaxWrongGuesses = cfg.MaxWrongGuesses
	}
	if flags.Changed("seed") {
		appCfg.Game.Seed = cfg.Seed
	}
	if cfg.Verbose {
		appCfg.Log.Level = "debug"
	}
	if err := appCfg.Validate(); err != nil {
		return nil, err
	}

	logger := factory.NewLogger(appCfg.Log, cmd.ErrOrStderr())

	return factory.New(factory.Config{
		App:    *appCfg,
		Logger: logger,
	})
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
