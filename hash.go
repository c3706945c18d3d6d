package probehash

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a signed hash code. Negative codes are allowed; the
// table reduces them with PositiveMod.
type Hasher[K comparable] func(K) int64

// HashInt returns the integer itself.
func HashInt(v int) int64 {
	return int64(v)
}

// HashTime folds the millisecond timestamp into 32 bits.
func HashTime(t time.Time) int64 {
	ms := t.UnixMilli()
	return int64(int32(ms ^ int64(uint64(ms)>>32)))
}

// String hasher names accepted by StringHasher.
const (
	HashPoly31 = "poly31"
	HashFNV    = "fnv"
	HashXXHash = "xxhash"
	HashXXH3   = "xxh3"
)

// StringHashers lists the names accepted by StringHasher.
func StringHashers() []string {
	return []string{HashPoly31, HashFNV, HashXXHash, HashXXH3}
}

// StringHasher returns the string hasher registered under name.
func StringHasher(name string) (Hasher[string], error) {
	switch name {
	case HashPoly31, "":
		return HashPoly31String, nil
	case HashFNV:
		return HashFNVString, nil
	case HashXXHash:
		return HashXXHashString, nil
	case HashXXH3:
		return HashXXH3String, nil
	}
	return nil, fmt.Errorf("unknown string hasher %q", name)
}

// HashPoly31String computes the 32-bit signed polynomial hash h = 31*h + c.
func HashPoly31String(s string) int64 {
	var h int32
	for _, c := range s {
		h = 31*h + int32(c)
	}
	return int64(h)
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// HashFNVString computes a 32-bit FNV-1a hash of s, read as a signed value.
func HashFNVString(s string) int64 {
	hash := uint32(offset32)
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= prime32
	}
	return int64(int32(hash))
}

// HashXXHashString is xxhash64 of s, reinterpreted as a signed value.
func HashXXHashString(s string) int64 {
	return int64(xxhash.Sum64String(s))
}

// HashXXH3String is xxh3 of s, reinterpreted as a signed value.
func HashXXH3String(s string) int64 {
	return int64(xxh3.HashString(s))
}
