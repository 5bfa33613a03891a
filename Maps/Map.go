package Maps

import "errors"

// ErrKeyNotFound is returned by Get when the key isn't in the map. Implementations may wrap it with the key.
var ErrKeyNotFound = errors.New("key not found")

// Map is a single-threaded associative container. Add doesn't replace an existing key: a second Add of the same key
// stores another entry, and Get and Delete act on the first entry reachable in probe order, which isn't necessarily the
// oldest one.
type Map[K comparable, V any] interface {
	Add(K, V)
	Delete(K)
	Find(K) bool
	Get(K) (V, error)
	//Size is the number of occupied slots, including the ones that were deleted but not yet reclaimed.
	Size() uint
	Capacity() uint
	//UsedElements is the number of retrievable entries.
	UsedElements() uint
}

// Stats is a snapshot of the counters of a map.
type Stats struct {
	Size, Capacity, UsedElements, Deleted uint
	Resizes, Rehashes                     uint //number of maintenance rebuilds since creation
}

type StatsSource interface {
	Stats() Stats
}
