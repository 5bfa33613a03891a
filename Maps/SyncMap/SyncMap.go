// Package SyncMap guards a single-threaded Maps.Map with a read-write lock.
package SyncMap

import (
	"sync"

	"github.com/g-m-twostay/probe-table/Maps"
)

// SyncMap takes the write lock for Add and Delete, which may rebuild the whole table, and the read lock for everything
// else. The wrapped map must not be used directly once wrapped.
type SyncMap[K comparable, V any] struct {
	sync.RWMutex
	m Maps.Map[K, V]
}

func New[K comparable, V any](m Maps.Map[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: m}
}

func (u *SyncMap[K, V]) Add(key K, val V) {
	u.Lock()
	defer u.Unlock()
	u.m.Add(key, val)
}

func (u *SyncMap[K, V]) Delete(key K) {
	u.Lock()
	defer u.Unlock()
	u.m.Delete(key)
}

func (u *SyncMap[K, V]) Find(key K) bool {
	u.RLock()
	defer u.RUnlock()
	return u.m.Find(key)
}

func (u *SyncMap[K, V]) Get(key K) (V, error) {
	u.RLock()
	defer u.RUnlock()
	return u.m.Get(key)
}

func (u *SyncMap[K, V]) Size() uint {
	u.RLock()
	defer u.RUnlock()
	return u.m.Size()
}

func (u *SyncMap[K, V]) Capacity() uint {
	u.RLock()
	defer u.RUnlock()
	return u.m.Capacity()
}

func (u *SyncMap[K, V]) UsedElements() uint {
	u.RLock()
	defer u.RUnlock()
	return u.m.UsedElements()
}

// Stats of the wrapped map. Maintenance counters are only filled if the wrapped map is a Maps.StatsSource.
func (u *SyncMap[K, V]) Stats() Maps.Stats {
	u.RLock()
	defer u.RUnlock()
	if src, ok := u.m.(Maps.StatsSource); ok {
		return src.Stats()
	}
	size, used := u.m.Size(), u.m.UsedElements()
	return Maps.Stats{Size: size, Capacity: u.m.Capacity(), UsedElements: used, Deleted: size - used}
}
