package probehash

import "fmt"

// Entry is the payload of one occupied slot.
type Entry[K comparable] struct {
	Key K
	// Frequency counts how many times Key was presented, starting at 1.
	Frequency int
	// ProbeCount is the number of attempts spent placing Key the first time.
	// Zero means not yet placed.
	ProbeCount int
}

// NewEntry returns an entry for key that has been seen once.
func NewEntry[K comparable](key K) *Entry[K] {
	return &Entry[K]{Key: key, Frequency: 1}
}

// RecordDuplicate notes another presentation of the same key.
func (e *Entry[K]) RecordDuplicate() {
	e.Frequency++
}

// SetProbeCount records the first-insertion cost. It may only be called once.
func (e *Entry[K]) SetProbeCount(n int) {
	if e.ProbeCount != 0 {
		panic(fmt.Sprintf("probehash: probe count for %v already set to %d", e.Key, e.ProbeCount))
	}
	if n < 1 {
		panic(fmt.Sprintf("probehash: invalid probe count %d", n))
	}
	e.ProbeCount = n
}

// equaler is implemented by keys with their own notion of equality, such as time.Time.
type equaler[K any] interface {
	Equal(K) bool
}

// keyEqual returns the equality used for keys of type K: the key's Equal
// method when it has one, == otherwise.
func keyEqual[K comparable]() func(a, b K) bool {
	var zero K
	if _, ok := any(zero).(equaler[K]); ok {
		return func(a, b K) bool { return any(a).(equaler[K]).Equal(b) }
	}
	return func(a, b K) bool { return a == b }
}

// Equal reports whether the entry holds key, using the key's Equal method
// when it has one. Frequency and ProbeCount are ignored.
func (e *Entry[K]) Equal(key K) bool {
	if eq, ok := any(e.Key).(equaler[K]); ok {
		return eq.Equal(key)
	}
	return e.Key == key
}

// Describe formats the entry as "<key> <frequency> <probeCount>".
func (e *Entry[K]) Describe() string {
	return fmt.Sprintf("%v %d %d", e.Key, e.Frequency, e.ProbeCount)
}
