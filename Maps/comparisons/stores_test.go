package comparisons

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	godsmap "github.com/emirpasic/gods/maps/hashmap"
	Probe_Table "github.com/g-m-twostay/probe-table"
	"github.com/g-m-twostay/probe-table/Maps/ProbeMap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

// store is the common ground of the compared maps. Keys put into a store are always distinct, since ProbeMap keeps
// duplicates where the others replace.
type store interface {
	put(k, v int)
	get(k int) (int, bool)
	del(k int)
}

type probeStore struct{ m *ProbeMap.ProbeMap[int, int] }

func newProbeStore() store {
	return probeStore{ProbeMap.MustNew[int, int](Probe_Table.IdentityHash[int](), ProbeMap.WithInitialCapacity(64))}
}
func (s probeStore) put(k, v int) { s.m.Add(k, v) }
func (s probeStore) get(k int) (int, bool) {
	v, err := s.m.Get(k)
	return v, err == nil
}
func (s probeStore) del(k int) { s.m.Delete(k) }

type nativeStore map[int]int

func newNativeStore() store        { return nativeStore{} }
func (s nativeStore) put(k, v int) { s[k] = v }
func (s nativeStore) get(k int) (int, bool) {
	v, ok := s[k]
	return v, ok
}
func (s nativeStore) del(k int) { delete(s, k) }

type haxStore struct{ m *haxmap.Map[int, int] }

func newHaxStore() store                 { return haxStore{haxmap.New[int, int]()} }
func (s haxStore) put(k, v int)          { s.m.Set(k, v) }
func (s haxStore) get(k int) (int, bool) { return s.m.Get(k) }
func (s haxStore) del(k int)             { s.m.Del(k) }

type cornelkStore struct{ m *hashmap.Map[int, int] }

func newCornelkStore() store                 { return cornelkStore{hashmap.New[int, int]()} }
func (s cornelkStore) put(k, v int)          { s.m.Set(k, v) }
func (s cornelkStore) get(k int) (int, bool) { return s.m.Get(k) }
func (s cornelkStore) del(k int)             { s.m.Del(k) }

type xsyncStore struct{ m *xsync.MapOf[int, int] }

func newXSyncStore() store                 { return xsyncStore{xsync.NewMapOf[int, int]()} }
func (s xsyncStore) put(k, v int)          { s.m.Store(k, v) }
func (s xsyncStore) get(k int) (int, bool) { return s.m.Load(k) }
func (s xsyncStore) del(k int)             { s.m.Delete(k) }

type godsStore struct{ m *godsmap.Map }

func newGodsStore() store        { return godsStore{godsmap.New()} }
func (s godsStore) put(k, v int) { s.m.Put(k, v) }
func (s godsStore) get(k int) (int, bool) {
	if v, ok := s.m.Get(k); ok {
		return v.(int), true
	}
	return 0, false
}
func (s godsStore) del(k int) { s.m.Remove(k) }

type pair struct{ k, v int }

func (p pair) Less(than llrb.Item) bool { return p.k < than.(pair).k }

type btreeStore struct{ t *btree.BTreeG[pair] }

func newBTreeStore() store {
	return btreeStore{btree.NewG[pair](32, func(a, b pair) bool { return a.k < b.k })}
}
func (s btreeStore) put(k, v int) { s.t.ReplaceOrInsert(pair{k, v}) }
func (s btreeStore) get(k int) (int, bool) {
	p, ok := s.t.Get(pair{k: k})
	return p.v, ok
}
func (s btreeStore) del(k int) { s.t.Delete(pair{k: k}) }

type llrbStore struct{ t *llrb.LLRB }

func newLLRBStore() store        { return llrbStore{llrb.New()} }
func (s llrbStore) put(k, v int) { s.t.ReplaceOrInsert(pair{k, v}) }
func (s llrbStore) get(k int) (int, bool) {
	if p := s.t.Get(pair{k: k}); p != nil {
		return p.(pair).v, true
	}
	return 0, false
}
func (s llrbStore) del(k int) { s.t.Delete(pair{k: k}) }

var stores = []struct {
	name string
	make func() store
}{
	{"ProbeMap", newProbeStore},
	{"Native", newNativeStore},
	{"HaxMap", newHaxStore},
	{"HashMap", newCornelkStore},
	{"XSync", newXSyncStore},
	{"Gods", newGodsStore},
	{"BTree", newBTreeStore},
	{"LLRB", newLLRBStore},
}
