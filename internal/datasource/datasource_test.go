package datasource

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"1": Random, "random": Random,
		"2": Date, "DATE": Date,
		"3": WordList, " words ": WordList, "word-list": WordList,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("4")
	require.Error(t, err)

	assert.Equal(t, "Random-Integer", Random.Label())
	assert.Equal(t, "Date-Long", Date.Label())
	assert.Equal(t, "Word-List", WordList.Label())
}

func TestRandomIntsDeterministic(t *testing.T) {
	a := RandomInts(rand.New(rand.NewSource(1)), 1000)
	b := RandomInts(rand.New(rand.NewSource(1)), 1000)
	require.Len(t, a, 1000)
	assert.Equal(t, a, b)

	negative := 0
	for _, v := range a {
		if v < 0 {
			negative++
		}
	}
	assert.Greater(t, negative, 0)
}

func TestDates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	keys := Dates(start, time.Second, 3)
	require.Len(t, keys, 3)
	assert.Equal(t, start, keys[0])
	assert.Equal(t, start.Add(2*time.Second), keys[2])
}

func TestWords(t *testing.T) {
	input := "apple\n\n  banana  \n\t\ncherry\ndate\n"

	words, err := Words(strings.NewReader(input), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)

	// running out is not an error
	words, err = Words(strings.NewReader(input), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry", "date"}, words)
}

func TestWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word-list.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\none\n"), 0644))

	words, err := WordsFile(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "one"}, words)

	_, err = WordsFile(filepath.Join(t.TempDir(), "missing.txt"), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestKeyCount(t *testing.T) {
	assert.Equal(t, 47896, KeyCount(0.5, 95791))
	assert.Equal(t, 95791, KeyCount(1, 95791))
	assert.Equal(t, 1, KeyCount(0.01, 11))
}
