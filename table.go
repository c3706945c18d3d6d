package probehash

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
)

var (
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrUnknownStrategy = errors.New("unknown probing strategy")
	ErrNilHasher       = errors.New("nil hasher")
	ErrNilKey          = errors.New("nil key")
	ErrTableFull       = errors.New("hash table full")
)

// Status is the outcome of a single Insert.
type Status uint8

const (
	// Inserted means the key was placed in a previously empty slot.
	Inserted Status = iota + 1
	// Duplicate means the key was already present; its frequency was bumped.
	Duplicate
	// Full means every probe hit a different key and nothing changed.
	Full
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Result describes what Insert did. Probes is non-zero only for Inserted.
type Result struct {
	Status Status
	Probes int
}

// Stats is a point-in-time copy of a table's counters.
type Stats struct {
	Capacity      int
	Inserted      int
	Duplicates    int
	TotalProbes   int
	LoadFactor    float64
	AverageProbes float64
}

// Table is a fixed-capacity open-addressing hash table
type Table[K comparable] struct {
	slots    []*Entry[K]
	strategy Strategy
	hash     Hasher[K]
	equal    func(a, b K) bool
	nilable  bool

	inserted    int
	duplicates  int
	totalProbes int
}

// New creates an empty table with capacity slots probed by strategy
func New[K comparable](capacity int, strategy Strategy, hasher Hasher[K]) (*Table[K], error) {
	if err := strategy.validate(capacity); err != nil {
		return nil, err
	}
	if hasher == nil {
		return nil, ErrNilHasher
	}

	return &Table[K]{
		slots:    make([]*Entry[K], capacity),
		strategy: strategy,
		hash:     hasher,
		equal:    keyEqual[K](),
		nilable:  nilableKind[K](),
	}, nil
}

// Insert places key in the table or records it as a duplicate
func (t *Table[K]) Insert(key K) (Result, error) {
	if t.nilable && isNil(key) {
		return Result{}, ErrNilKey
	}

	capacity := len(t.slots)
	primary := t.primary(key)
	step := t.strategy.Step(primary, capacity)

	for attempt := 0; attempt < capacity; attempt++ {
		idx := t.strategy.index(primary, attempt, step, capacity)

		entry := t.slots[idx]
		if entry == nil {
			probes := attempt + 1
			entry = NewEntry(key)
			entry.SetProbeCount(probes)
			t.slots[idx] = entry
			t.inserted++
			t.totalProbes += probes
			return Result{Status: Inserted, Probes: probes}, nil
		}

		if t.equal(entry.Key, key) {
			entry.RecordDuplicate()
			t.duplicates++
			return Result{Status: Duplicate}, nil
		}
	}

	return Result{Status: Full}, fmt.Errorf("%w: no slot for %v after %d probes", ErrTableFull, key, capacity)
}

// Search returns the entry holding key, stopping at the first empty slot
func (t *Table[K]) Search(key K) (*Entry[K], bool) {
	entry, _ := t.search(key)
	return entry, entry != nil
}

// search also returns the number of slots examined.
func (t *Table[K]) search(key K) (*Entry[K], int) {
	if t.nilable && isNil(key) {
		return nil, 0
	}

	capacity := len(t.slots)
	primary := t.primary(key)
	step := t.strategy.Step(primary, capacity)

	for attempt := 0; attempt < capacity; attempt++ {
		entry := t.slots[t.strategy.index(primary, attempt, step, capacity)]
		switch {
		case entry == nil:
			return nil, attempt + 1
		case t.equal(entry.Key, key):
			return entry, attempt + 1
		}
	}

	return nil, capacity
}

func (t *Table[K]) primary(key K) int {
	return int(PositiveMod(t.hash(key), int64(len(t.slots))))
}

// Dump writes one "slot[<index>]: <key> <frequency> <probeCount>" line per
// occupied slot in ascending index order.
func (t *Table[K]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, entry := range t.slots {
		if entry == nil {
			continue
		}
		if _, err := fmt.Fprintf(bw, "slot[%d]: %s\n", i, entry.Describe()); err != nil {
			return fmt.Errorf("failed to write slot %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush dump: %w", err)
	}
	return nil
}

// Capacity returns the number of slots.
func (t *Table[K]) Capacity() int { return len(t.slots) }

// Strategy returns the probing strategy the table was built with.
func (t *Table[K]) Strategy() Strategy { return t.strategy }

// InsertCount returns the number of distinct keys stored.
func (t *Table[K]) InsertCount() int { return t.inserted }

// DuplicateCount returns how many presentations hit a key already stored.
func (t *Table[K]) DuplicateCount() int { return t.duplicates }

// TotalProbes returns the sum of probe counts over all unique insertions.
func (t *Table[K]) TotalProbes() int { return t.totalProbes }

// LoadFactor returns the share of occupied slots.
func (t *Table[K]) LoadFactor() float64 {
	return float64(t.inserted) / float64(len(t.slots))
}

// AverageProbes returns total probes per unique insertion, or 0 for an empty table.
func (t *Table[K]) AverageProbes() float64 {
	if t.inserted == 0 {
		return 0
	}
	return float64(t.totalProbes) / float64(t.inserted)
}

// Stats returns a copy of the table's counters.
func (t *Table[K]) Stats() Stats {
	return Stats{
		Capacity:      len(t.slots),
		Inserted:      t.inserted,
		Duplicates:    t.duplicates,
		TotalProbes:   t.totalProbes,
		LoadFactor:    t.LoadFactor(),
		AverageProbes: t.AverageProbes(),
	}
}

// nilableKind reports whether a K value can be nil.
func nilableKind[K comparable]() bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return true
	}
	return false
}

// isNil catches nil interfaces and nil pointers used as keys.
func isNil[K comparable](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}
