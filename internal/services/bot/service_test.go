package bot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/services/scoring"
	"github.com/mcoot/hangman-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	controller *game.Controller
	service    *bot.Service
	words      []string
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.words = []string{"cat", "dog", "banana"}

	dict, err := dictionary.New("test", "", s.words, s.random)
	s.Require().NoError(err)
	scoringService, err := scoring.New(scoring.DefaultPolicy())
	s.Require().NoError(err)

	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = game.NewController(dict, scoringService, 6, clk, s.random, testutil.NopLogger())
	s.service = bot.NewService(bot.DefaultStrategies(s.random, s.words), testutil.NopLogger())
}

func (s *ServiceSuite) TestUnknownStrategy() {
	_, _, err := s.service.PlayRound(s.controller, "psychic")
	s.Error(err)
	s.Equal(model.PhaseNoRound, s.controller.Phase())
}

func (s *ServiceSuite) TestPatternStrategyWins() {
	s.random.QueueIntn(2) // BANANA

	round, actions, err := s.service.PlayRound(s.controller, model.BotStrategyPattern)
	s.Require().NoError(err)

	s.Equal(model.StatusWon, round.State.Status())
	s.True(s.controller.IsOver())
	s.Equal("BANANA", actions[len(actions)-1].Pattern)
	s.Positive(round.ScoreDelta)
}

func (s *ServiceSuite) TestFrequencyStrategyConcludes() {
	s.random.QueueIntn(1) // DOG

	round, actions, err := s.service.PlayRound(s.controller, model.BotStrategyFrequency)
	s.Require().NoError(err)

	s.True(round.State.IsOver())
	s.Equal('E', actions[0].Letter)
	s.False(actions[0].Correct)
}

func (s *ServiceSuite) TestEveryStrategyConcludesRound() {
	for _, name := range model.ValidBotStrategies() {
		round, _, err := s.service.PlayRound(s.controller, name)
		s.Require().NoError(err, name)
		s.True(round.State.IsOver(), name)
		s.Equal(model.PhaseRoundOver, s.controller.Phase(), name)
	}
}

func (s *ServiceSuite) TestEveryStrategyCanFinishEveryBuiltinWord() {
	rnd := random.NewSeeded(1)
	catalog, err := dictionary.NewBuiltinCatalog(rnd)
	s.Require().NoError(err)
	scoringService, err := scoring.New(scoring.DefaultPolicy())
	s.Require().NoError(err)
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	for _, d := range catalog.All() {
		service := bot.NewService(bot.DefaultStrategies(rnd, d.Words()), testutil.NopLogger())
		for _, word := range d.Words() {
			single, err := dictionary.New(d.Name(), d.Category(), []string{word}, rnd)
			s.Require().NoError(err)
			ctrl := game.NewController(single, scoringService, len(bot.Alphabet), clk, rnd, testutil.NopLogger())

			for _, name := range model.ValidBotStrategies() {
				round, _, err := service.PlayRound(ctrl, name)
				s.Require().NoError(err, "%s/%s", name, word)
				s.Equal(model.StatusWon, round.State.Status(), "%s/%s", name, word)
			}
		}
	}
}
