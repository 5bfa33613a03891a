// Package ProbeMap implements an open addressing hash map with a fixed step probe sequence and tombstone deletion.
//
// # Duplicates
// Add never looks for an existing entry of the key. Adding a key twice stores two entries; lookups walk the probe
// sequence from the home slot and stop at the first match, so Get returns the first reachable entry in probe order and
// Delete removes that same entry, after which the next one becomes visible. Without deletes that's the oldest entry.
// It stops being the oldest once an Add reuses a tombstone that lies ahead of an older copy, and a rebuild re-inserts
// entries in slot order rather than probe order, which can reorder the copies too. Callers that want upsert semantics
// should Delete first, or check Find, see Sets/ProbeSet.
//
// # Maintenance
// Size counts live entries and tombstones. When it exceeds ResizeLoadFactor of the capacity after an Add, the table is
// rebuilt into twice the capacity, or more if the live entries alone would still be over the threshold. When tombstones exceed RehashLoadFactor of the capacity after a Delete, the table is
// rebuilt at the same capacity. Both rebuilds only carry live entries over, in slot order, and run inside the call
// that triggered them.
//
// ProbeMap isn't safe for concurrent use, wrap it in SyncMap for that.
package ProbeMap

import (
	"fmt"
	"math"

	Probe_Table "github.com/g-m-twostay/probe-table"
	"github.com/g-m-twostay/probe-table/Maps"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("probemap")

const maxCapacity = uint(math.MaxInt)

type ProbeMap[K comparable, V any] struct {
	slots             []slot[K, V]
	stride            uint //ProbeStep reduced modulo the capacity.
	size, deleted     uint
	resizes, rehashes uint
	cfg               Config
	HashF             Probe_Table.HashFunc[K]
}

// New ProbeMap using hash for the keys. A nil hash uses Probe_Table.ComparableHash.
func New[K comparable, V any](hash Probe_Table.HashFunc[K], opts ...Option) (*ProbeMap[K, V], error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if hash == nil {
		hash = Probe_Table.ComparableHash[K]()
	}
	u := &ProbeMap[K, V]{cfg: cfg, HashF: hash}
	u.alloc(cfg.InitialCapacity)
	return u, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew[K comparable, V any](hash Probe_Table.HashFunc[K], opts ...Option) *ProbeMap[K, V] {
	u, err := New[K, V](hash, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *ProbeMap[K, V]) alloc(capacity uint) {
	u.slots = make([]slot[K, V], capacity)
	u.stride = u.cfg.ProbeStep % capacity
	u.size, u.deleted = 0, 0
}

func (u *ProbeMap[K, V]) next(i uint) uint {
	return (i + u.stride) % uint(len(u.slots))
}

// seekFree walks from the home slot of key while slots are used. Lands on a free slot or a tombstone.
func (u *ProbeMap[K, V]) seekFree(key K) uint {
	i := u.HashF(key) % uint(len(u.slots))
	for u.slots[i].state == used {
		i = u.next(i)
	}
	return i
}

// seek walks from the home slot of key until a free slot or a live slot holding key.
func (u *ProbeMap[K, V]) seek(key K) uint {
	i := u.HashF(key) % uint(len(u.slots))
	for u.slots[i].state != free && !u.slots[i].holds(key) {
		i = u.next(i)
	}
	return i
}

func (u *ProbeMap[K, V]) place(key K, val V) {
	s := &u.slots[u.seekFree(key)]
	if s.state == deleted {
		u.deleted--
	} else {
		u.size++
	}
	s.fill(key, val)
}

func (u *ProbeMap[K, V]) over(n uint, factor float64) bool {
	return float64(n) > factor*float64(len(u.slots))
}

// Add key with val. An existing entry of key isn't replaced and may end up behind the new one, see the package doc.
func (u *ProbeMap[K, V]) Add(key K, val V) {
	u.place(key, val)
	if u.over(u.size, u.cfg.ResizeLoadFactor) {
		u.resize()
	}
}

// Delete the first reachable entry of key. Does nothing if key is absent.
func (u *ProbeMap[K, V]) Delete(key K) {
	s := &u.slots[u.seek(key)]
	if s.state == free {
		return
	}
	s.bury()
	u.deleted++
	if u.over(u.deleted, u.cfg.RehashLoadFactor) {
		u.rehash()
	}
}

// Find returns true if key is in the map.
func (u *ProbeMap[K, V]) Find(key K) bool {
	return u.slots[u.seek(key)].state != free
}

// Get the value of the first reachable entry of key. The error wraps Maps.ErrKeyNotFound if key is absent.
func (u *ProbeMap[K, V]) Get(key K) (V, error) {
	if s := &u.slots[u.seek(key)]; s.state != free {
		return s.val, nil
	}
	return *new(V), fmt.Errorf("%w: %v", Maps.ErrKeyNotFound, key)
}

// Size counts both live entries and tombstones.
func (u *ProbeMap[K, V]) Size() uint {
	return u.size
}

func (u *ProbeMap[K, V]) Capacity() uint {
	return uint(len(u.slots))
}

// UsedElements is the number of live entries.
func (u *ProbeMap[K, V]) UsedElements() uint {
	return u.size - u.deleted
}

func (u *ProbeMap[K, V]) Stats() Maps.Stats {
	return Maps.Stats{
		Size:         u.size,
		Capacity:     uint(len(u.slots)),
		UsedElements: u.size - u.deleted,
		Deleted:      u.deleted,
		Resizes:      u.resizes,
		Rehashes:     u.rehashes,
	}
}

func (u *ProbeMap[K, V]) resize() {
	u.resizes++
	u.rebuild(double(u.Capacity()))
}

func (u *ProbeMap[K, V]) rehash() {
	u.rehashes++
	u.rebuild(u.Capacity())
}

// rebuild moves every live entry, in slot order, into a fresh table of at least the given capacity. The capacity keeps
// doubling while the live entries alone would trip the resize threshold, so with a tiny capacity and a low
// ResizeLoadFactor a single resize can grow the table more than twice. The defaults never get there.
func (u *ProbeMap[K, V]) rebuild(capacity uint) {
	old, live, purged := u.slots, u.size-u.deleted, u.deleted
	for float64(live) > u.cfg.ResizeLoadFactor*float64(capacity) {
		capacity = double(capacity)
	}
	u.alloc(capacity)
	for i := range old {
		if old[i].state == used {
			u.place(old[i].key, old[i].val)
		}
	}
	log.Debugf("rebuilt: capacity %d -> %d, %d live, %d tombstones purged", len(old), capacity, live, purged)
}

func double(capacity uint) uint {
	if capacity > maxCapacity>>1 {
		panic(fmt.Sprintf("probe map capacity overflow doubling %d", capacity))
	}
	return capacity << 1
}
