package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

const playAgainHint = "Type :new to play again or :quit to exit"

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play hangman interactively",
		Long: `Play hangman interactively.

Enter one letter per line. ":new" abandons the current round and starts
another, ":quit" ends the session and prints the final score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(app.GameController, cmd.InOrStdin(), NewOutput(cfg.Output, cmd.OutOrStdout()))
		},
	}
}

// runPlay reads guesses from in until EOF or :quit
func runPlay(ctrl game.ControllerInterface, in io.Reader, out *Output) error {
	scoreboard := NewScoreboard(ctrl)

	if err := startRound(ctrl, out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
loop:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case ":quit", ":q":
			break loop
		case ":new", ":n":
			if err := startRound(ctrl, out); err != nil {
				return err
			}
			continue
		}

		letters := []rune(line)
		if len(letters) != 1 {
			out.PrintError(fmt.Errorf("enter a single letter, :new or :quit"))
			continue
		}

		result, err := ctrl.Guess(letters[0])
		if errors.Is(err, model.ErrNoActiveRound) {
			out.PrintMessage("The round is over. " + playAgainHint)
			continue
		}
		if err != nil {
			out.PrintError(err)
			continue
		}

		out.Print(guessView(ctrl, result))
		if ctrl.IsOver() {
			out.Print(roundResult(ctrl.Round().Summary(), scoreboard.Total))
			out.PrintMessage(playAgainHint)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	out.Print(scoreboard.Summary())
	return nil
}

func startRound(ctrl game.ControllerInterface, out *Output) error {
	round, err := ctrl.NewGame()
	if err != nil {
		return err
	}
	out.Print(roundView(round))
	return nil
}
