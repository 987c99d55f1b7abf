package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hangmanEnv = []string{
	"HANGMAN_CONFIG",
	"HANGMAN_ENV_FILE",
	"HANGMAN_MAX_WRONG_GUESSES",
	"HANGMAN_DICTIONARY",
	"HANGMAN_SEED",
	"HANGMAN_SCORE_WIN_BONUS",
	"HANGMAN_SCORE_PER_REMAINING_ATTEMPT",
	"HANGMAN_SCORE_PER_DISTINCT_LETTER",
	"HANGMAN_LOG_LEVEL",
	"HANGMAN_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range hangmanEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// execute runs the root command and returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDictionariesJSON(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "", "dictionaries", "-o", "json")
	require.NoError(t, err)

	var infos []DictionaryInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.Positive(t, info.Words, info.Name)
		assert.NotEmpty(t, info.Category, info.Name)
	}
	assert.Equal(t, []string{"animals", "countries", "fruits", "programming"}, names)
}

func TestDictionariesText(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "", "dicts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "animals")
	assert.Contains(t, stdout, "words")
}

func TestAutoPlaysRequestedRounds(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "", "auto", "--seed", "7", "-n", "3", "-s", "frequency", "-d", "fruits", "-o", "json")
	require.NoError(t, err)

	var result AutoResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "frequency", result.Strategy)
	assert.Equal(t, "fruits", result.Dictionary)
	require.Len(t, result.Rounds, 3)
	assert.Equal(t, 3, result.Won+result.Lost)

	sum := 0
	for _, r := range result.Rounds {
		assert.NotEmpty(t, r.Word)
		assert.Contains(t, []string{"won", "lost"}, r.Status)
		if r.Status == "lost" {
			assert.Equal(t, 0, r.ScoreDelta)
		}
		sum += r.ScoreDelta
		assert.Equal(t, sum, r.TotalScore)
	}
	assert.Equal(t, sum, result.TotalScore)
}

func TestAutoIsDeterministicWithSeed(t *testing.T) {
	clearEnv(t)

	first, _, err := execute(t, "", "auto", "--seed", "42", "-n", "2", "-o", "json")
	require.NoError(t, err)
	second, _, err := execute(t, "", "auto", "--seed", "42", "-n", "2", "-o", "json")
	require.NoError(t, err)

	assert.JSONEq(t, first, second)
}

func TestAutoRejectsUnknownStrategy(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", "auto", "-s", "psychic")
	assert.Error(t, err)
}

func TestAutoRejectsZeroRounds(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", "auto", "-n", "0")
	assert.Error(t, err)
}

func TestUnknownDictionaryFails(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", "dictionaries", "-d", "nope")
	assert.Error(t, err)
}

func TestInvalidOutputFormatFails(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", "dictionaries", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestMaxWrongFlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HANGMAN_MAX_WRONG_GUESSES", "4")

	stdout, _, err := execute(t, ":quit\n", "play", "--max-wrong", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Attempts left: 2")
}

func TestPlayQuitsOnEOF(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "", "play", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "New round (")
	assert.Contains(t, stdout, "Attempts left: 9")
	assert.Contains(t, stdout, "Rounds played: 0 (won 0, lost 0)")
}

func TestEnvFileIsLoaded(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), "hangman.env")
	require.NoError(t, os.WriteFile(envFile, []byte("HANGMAN_MAX_WRONG_GUESSES=5\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HANGMAN_MAX_WRONG_GUESSES") })

	stdout, _, err := execute(t, "", "play", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Attempts left: 5")
}

func TestVerboseLogsToStderr(t *testing.T) {
	clearEnv(t)

	stdout, stderr, err := execute(t, "", "auto", "-v", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "round started")
	assert.NotContains(t, stdout, "round started")
}

func TestAutoTextShowsStrategyName(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "", "auto", "--seed", "2", "-s", "frequency")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Strategy: Letter frequency")
	assert.Contains(t, stdout, "Dictionary: animals")
	assert.Contains(t, stdout, "Total score:")
}
