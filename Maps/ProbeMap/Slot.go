package ProbeMap

type state byte

const (
	free    state = iota //never used since the last rebuild; ends every probe.
	used                 //holds a live pair.
	deleted              //tombstone; skipped by lookups, reused by inserts.
)

type slot[K comparable, V any] struct {
	key K
	val V
	state
}

// holds reports whether the slot is live with the given key. Tombstones have their key reset to the zero value, so they
// must never match even when key is the zero value.
func (s *slot[K, V]) holds(key K) bool {
	return s.state == used && s.key == key
}

func (s *slot[K, V]) fill(key K, val V) {
	s.key, s.val, s.state = key, val, used
}

func (s *slot[K, V]) bury() {
	*s = slot[K, V]{state: deleted}
}
