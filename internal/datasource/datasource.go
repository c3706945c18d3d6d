// Package datasource produces the key sequences fed into the experiment tables.
package datasource

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Kind selects the data source.
type Kind uint8

const (
	Random Kind = iota + 1
	Date
	WordList
)

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Date:
		return "date"
	case WordList:
		return "words"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Label is the input name printed in experiment summaries.
func (k Kind) Label() string {
	switch k {
	case Random:
		return "Random-Integer"
	case Date:
		return "Date-Long"
	case WordList:
		return "Word-List"
	}
	return "Unknown"
}

// ParseKind accepts the numeric selectors 1, 2, 3 or the names returned by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "random":
		return Random, nil
	case "2", "date":
		return Date, nil
	case "3", "words", "word", "word-list":
		return WordList, nil
	}
	return 0, fmt.Errorf("unknown data source %q (want 1|2|3 or random|date|words)", s)
}

// RandomInts returns n values drawn from the full signed 32-bit range.
func RandomInts(rng *rand.Rand, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = int(int32(rng.Uint32()))
	}
	return keys
}

// Dates returns n timestamps starting at start and spaced by step.
func Dates(start time.Time, step time.Duration, n int) []time.Time {
	keys := make([]time.Time, n)
	current := start
	for i := range keys {
		keys[i] = current
		current = current.Add(step)
	}
	return keys
}

// Words reads up to n non-blank, trimmed lines from r. Fewer are returned
// when r runs out.
func Words(r io.Reader, n int) ([]string, error) {
	words := make([]string, 0, capHint(n))
	sc := bufio.NewScanner(r)
	for len(words) < n && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return words, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// WordsFile is Words over the file at path.
func WordsFile(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return Words(f, n)
}

// KeyCount returns ceil(loadFactor * capacity), the number of keys an
// experiment presents to each table.
func KeyCount(loadFactor float64, capacity int) int {
	return int(math.Ceil(loadFactor * float64(capacity)))
}

func capHint(n int) int {
	const maxHint = 1 << 20
	if n > maxHint {
		return maxHint
	}
	if n < 0 {
		return 0
	}
	return n
}
