package factory

import (
	"time"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(DefaultAppConfig(), mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// UseTestDictionary swaps in a small dictionary and rebuilds the controller
func (t *TestApp) UseTestDictionary(words ...string) error {
	dict, err := dictionary.New("test", "Testing", words, t.MockRandom)
	if err != nil {
		return err
	}
	t.Catalog.Register(dict)
	t.Dictionary = dict
	t.GameController = game.NewController(
		dict,
		t.ScoringService,
		t.Config.Game.MaxWrongGuesses,
		t.MockClock,
		t.MockRandom,
		testutil.NopLogger(),
	)
	return nil
}
