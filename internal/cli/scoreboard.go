package cli

import (
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

// Scoreboard accumulates score deltas and concluded rounds for one session
type Scoreboard struct {
	Total   int
	History []model.RoundSummary
}

// NewScoreboard creates a Scoreboard listening to the controller
func NewScoreboard(ctrl game.ControllerInterface) *Scoreboard {
	sb := &Scoreboard{}
	ctrl.OnScoreUpdate(sb.add)
	ctrl.Subscribe(sb.record)
	return sb
}

func (sb *Scoreboard) add(delta int) {
	sb.Total += delta
}

func (sb *Scoreboard) record(event model.Event) {
	if event.Type != model.EventRoundConcluded {
		return
	}
	if payload, ok := event.Payload.(model.RoundConcludedPayload); ok {
		sb.History = append(sb.History, payload.Summary)
	}
}

// Summary returns the session totals
func (sb *Scoreboard) Summary() SessionSummary {
	summary := SessionSummary{
		Type:       "session",
		Rounds:     len(sb.History),
		TotalScore: sb.Total,
	}
	for _, r := range sb.History {
		if r.Status == model.StatusWon {
			summary.Won++
		} else {
			summary.Lost++
		}
	}
	return summary
}

func roundView(round *model.Round) RoundView {
	return RoundView{
		Type:              "round",
		RoundID:           string(round.ID),
		Dictionary:        round.DictionaryName,
		Category:          round.DictionaryCategory,
		Pattern:           string(round.State.RevealedPattern()),
		WrongLetters:      string(round.State.WrongLetters()),
		RemainingAttempts: round.State.RemainingAttempts(),
		Status:            string(round.State.Status()),
	}
}

func guessView(ctrl game.ControllerInterface, result model.GuessResult) GuessView {
	return GuessView{
		Type:              "guess",
		Letter:            string(result.Letter),
		New:               result.WasNew,
		Correct:           result.WasCorrect,
		Pattern:           string(ctrl.RevealedPattern()),
		WrongLetters:      string(ctrl.WrongLetters()),
		RemainingAttempts: ctrl.RemainingAttempts(),
		Status:            string(result.Status),
	}
}

func roundResult(summary model.RoundSummary, total int) RoundResult {
	return RoundResult{
		Type:         "result",
		RoundID:      string(summary.ID),
		Word:         summary.Word,
		Status:       string(summary.Status),
		WrongGuesses: summary.WrongGuesses,
		ScoreDelta:   summary.ScoreDelta,
		TotalScore:   total,
	}
}
