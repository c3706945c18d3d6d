/*
Package probehash provides a fixed-capacity open-addressing hash table used to
compare collision-resolution strategies.

A Table stores each distinct key once, together with how often the key was
presented and how many probe attempts its first insertion needed. Two probing
strategies are available: linear probing and double hashing.

Basic usage:

	import "github.com/theflywheel/probehash"

	// Create a table with a twin-prime capacity
	t, err := probehash.New[int](95791, probehash.DoubleHashing, probehash.HashInt)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	res, err := t.Insert(12345)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Status, res.Probes)

	// Look it up again
	if e, ok := t.Search(12345); ok {
		fmt.Println(e.Describe())
	}

	fmt.Printf("avg probes: %.2f\n", t.AverageProbes())

Features:

  - Fixed-size slot array, never resized
  - Linear probing and double hashing over the same table type
  - Pluggable key hashers: integers, timestamps, and strings (polynomial,
    FNV-1a, xxhash, xxh3)
  - Per-entry frequency and first-insertion probe count
  - Plain-text dump of occupied slots

Implementation Details:

The primary hash of a key is its hash code reduced into [0, capacity) with a
true modulo, so negative hash codes are fine. Attempt i examines

	linear: (primary + i) mod capacity
	double: (primary + i*step) mod capacity, step = 1 + primary mod (capacity-2)

Double hashing needs capacity > 2. Choosing the larger member of a twin-prime
pair as capacity keeps every step coprime with capacity, so the probe sequence
visits every slot.

Insert reports one of three outcomes: Inserted (with the probe count),
Duplicate, or Full. Full means all capacity attempts hit other keys; the table
is left unchanged and ErrTableFull is returned. There is no deletion, which is
what lets Search stop at the first empty slot.

A Table is not safe for concurrent use.
*/
package probehash
