package ProbeSet

import (
	Probe_Table "github.com/g-m-twostay/probe-table"
	"github.com/g-m-twostay/probe-table/Maps/ProbeMap"
)

// ProbeSet is a set backed by a ProbeMap with empty values. Put checks for the element first, so the duplicate entries
// a ProbeMap allows never appear.
type ProbeSet[E comparable] struct {
	m *ProbeMap.ProbeMap[E, struct{}]
}

// New ProbeSet of type E. hash and opts are passed to ProbeMap.New.
func New[E comparable](hash Probe_Table.HashFunc[E], opts ...ProbeMap.Option) (*ProbeSet[E], error) {
	m, err := ProbeMap.New[E, struct{}](hash, opts...)
	if err != nil {
		return nil, err
	}
	return &ProbeSet[E]{m: m}, nil
}

// Put e into the set. Returns true if e wasn't present.
func (u *ProbeSet[E]) Put(e E) bool {
	if u.m.Find(e) {
		return false
	}
	u.m.Add(e, struct{}{})
	return true
}

// Has e in the set.
func (u *ProbeSet[E]) Has(e E) bool {
	return u.m.Find(e)
}

// Remove e from the set. Returns true if e was present.
func (u *ProbeSet[E]) Remove(e E) bool {
	if !u.m.Find(e) {
		return false
	}
	u.m.Delete(e)
	return true
}

// Size of the set.
func (u *ProbeSet[E]) Size() uint {
	return u.m.UsedElements()
}
