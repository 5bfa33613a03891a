package Probe_Table

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to an unsigned integer. Tables call it on every probe, so it must be deterministic for the
// lifetime of the table that uses it and total over the key domain.
type HashFunc[K any] func(K) uint

// Hasher is a seed for the xxhash based hash functions. Two Hasher with the same value always give the same hashes,
// which makes them suitable for tests and for tables that must be rebuilt identically. 0 is the unseeded xxhash.
type Hasher uint64

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	if u == 0 {
		return uint(xxhash.Sum64(b))
	}
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.Write(b)
	return uint(d.Sum64())
}

// HashString directly hashes a string, it's faster than HashBytes([]byte(s)).
func (u Hasher) HashString(s string) uint {
	if u == 0 {
		return uint(xxhash.Sum64String(s))
	}
	d := xxhash.NewWithSeed(uint64(u))
	_, _ = d.WriteString(s)
	return uint(d.Sum64())
}

// HashUint64 hashes the little endian bytes of v.
func (u Hasher) HashUint64(v uint64) uint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return u.HashBytes(b[:])
}

// StringHash returns a HashFunc for string keys using seed.
func StringHash(seed Hasher) HashFunc[string] {
	return seed.HashString
}

// IntHash returns a HashFunc for any integer key type using seed.
func IntHash[T constraints.Integer](seed Hasher) HashFunc[T] {
	return func(v T) uint {
		return seed.HashUint64(uint64(v))
	}
}

// IdentityHash uses the integer itself as the hash. Useful when the caller wants to control slot placement.
func IdentityHash[T constraints.Integer]() HashFunc[T] {
	return func(v T) uint {
		return uint(v)
	}
}

// ComparableHash returns a HashFunc for any comparable type backed by hash/maphash. Every call makes a new random seed,
// so the returned function is only stable within a process.
func ComparableHash[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint {
		return uint(maphash.Comparable(seed, k))
	}
}
