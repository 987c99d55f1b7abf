package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	service, err := New(DefaultPolicy())
	s.Require().NoError(err)
	s.service = service
}

// Helper to play a sequence of guesses against a fresh state
func (s *ServiceSuite) play(word string, maxWrong int, guesses string) *model.GameState {
	state, err := model.NewGameState(word, maxWrong)
	s.Require().NoError(err)
	for _, letter := range guesses {
		_, err := state.ApplyGuess(letter)
		s.Require().NoError(err)
	}
	return state
}

func (s *ServiceSuite) TestWonRoundScoresPositive() {
	state := s.play("CAT", 3, "CAT")

	delta, err := s.service.ComputeDelta(state)
	s.Require().NoError(err)
	s.Equal(5+3, delta)
}

func (s *ServiceSuite) TestLostRoundScoresZero() {
	state := s.play("DOG", 1, "Z")

	delta, err := s.service.ComputeDelta(state)
	s.Require().NoError(err)
	s.Equal(0, delta)
}

func (s *ServiceSuite) TestInProgressFails() {
	state := s.play("DOG", 3, "D")

	_, err := s.service.ComputeDelta(state)
	s.ErrorIs(err, model.ErrGameNotOver)
}

func (s *ServiceSuite) TestFewerWrongGuessesScoreAtLeastAsMuch() {
	service, err := New(Policy{WinBonus: 2, PerRemainingAttempt: 3, PerDistinctLetter: 1})
	s.Require().NoError(err)

	clean := s.play("CAT", 6, "CAT")
	oneWrong := s.play("CAT", 6, "CXAT")
	threeWrong := s.play("CAT", 6, "XYCZAT")

	cleanDelta, _ := service.ComputeDelta(clean)
	oneDelta, _ := service.ComputeDelta(oneWrong)
	threeDelta, _ := service.ComputeDelta(threeWrong)

	s.Equal(2+18+3, cleanDelta)
	s.GreaterOrEqual(cleanDelta, oneDelta)
	s.GreaterOrEqual(oneDelta, threeDelta)
	s.Positive(threeDelta)
}

func (s *ServiceSuite) TestLostAlwaysZeroRegardlessOfPolicy() {
	service, err := New(Policy{WinBonus: 100, PerRemainingAttempt: 10, PerDistinctLetter: 10})
	s.Require().NoError(err)

	delta, err := service.ComputeDelta(s.play("CAT", 2, "XY"))
	s.Require().NoError(err)
	s.Equal(0, delta)
}

func (s *ServiceSuite) TestComputeDeltaIsPure() {
	state := s.play("BANANA", 4, "QBAN")

	first, _ := s.service.ComputeDelta(state)
	second, _ := s.service.ComputeDelta(state)
	s.Equal(first, second)
}

func (s *ServiceSuite) TestNegativePolicyRejected() {
	_, err := New(Policy{WinBonus: -1})
	s.Error(err)
}
