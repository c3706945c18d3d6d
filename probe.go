package probehash

import (
	"fmt"
	"strings"
)

// Strategy selects how a table walks its slots after a collision.
type Strategy uint8

const (
	// Linear probes primary, primary+1, primary+2, ...
	Linear Strategy = iota + 1
	// DoubleHashing probes primary + attempt*step with a key-dependent step.
	DoubleHashing
)

// Strategies returns every supported strategy in reporting order.
func Strategies() []Strategy {
	return []Strategy{Linear, DoubleHashing}
}

func (s Strategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case DoubleHashing:
		return "double"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Label is the human-readable strategy name used in summaries.
func (s Strategy) Label() string {
	switch s {
	case Linear:
		return "Linear Probing"
	case DoubleHashing:
		return "Double Hashing"
	}
	return s.String()
}

// ParseStrategy accepts the names produced by String plus a few aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "linear-probing", "lp":
		return Linear, nil
	case "double", "double-hashing", "dh":
		return DoubleHashing, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// PositiveMod returns dividend mod divisor in [0, divisor) for any sign of dividend.
func PositiveMod(dividend, divisor int64) int64 {
	return ((dividend % divisor) + divisor) % divisor
}

// Step returns the distance between consecutive probes for a primary hash.
// For double hashing it lies in [1, capacity-2].
func (s Strategy) Step(primary, capacity int) int {
	if s == DoubleHashing {
		return 1 + int(PositiveMod(int64(primary), int64(capacity-2)))
	}
	return 1
}

// Index returns the slot examined on the given 0-based attempt.
func (s Strategy) Index(primary, attempt, capacity int) int {
	return s.index(primary, attempt, s.Step(primary, capacity), capacity)
}

func (s Strategy) index(primary, attempt, step, capacity int) int {
	return int(PositiveMod(int64(primary)+int64(attempt)*int64(step), int64(capacity)))
}

func (s Strategy) validate(capacity int) error {
	switch s {
	case Linear:
		if capacity <= 0 {
			return fmt.Errorf("%w: %d (linear probing needs capacity > 0)", ErrInvalidCapacity, capacity)
		}
	case DoubleHashing:
		if capacity <= 2 {
			return fmt.Errorf("%w: %d (double hashing needs capacity > 2)", ErrInvalidCapacity, capacity)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	return nil
}
