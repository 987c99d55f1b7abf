package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/model"
)

func newAutoCmd() *cobra.Command {
	var strategy string
	var rounds int

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Let a bot play rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1")
			}

			scoreboard := NewScoreboard(app.GameController)
			result := AutoResult{
				Strategy:   strategy,
				Dictionary: app.GameController.DictionaryName(),
			}

			for i := 0; i < rounds; i++ {
				round, _, err := app.BotService.PlayRound(app.GameController, strategy)
				if err != nil {
					return err
				}

				result.Rounds = append(result.Rounds, roundResult(round.Summary(), scoreboard.Total))
				if round.State.Status() == model.StatusWon {
					result.Won++
				} else {
					result.Lost++
				}
			}
			result.TotalScore = scoreboard.Total

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", model.BotStrategyPattern, fmt.Sprintf("Bot strategy: %v", model.ValidBotStrategies()))
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 1, "Number of rounds to play")

	return cmd
}
