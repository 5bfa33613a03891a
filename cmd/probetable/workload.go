package main

import (
	"math/rand/v2"
	"slices"

	"github.com/g-m-twostay/probe-table/Maps"
)

type statsMap interface {
	Maps.Map[uint32, uint32]
	Maps.StatsSource
}

// workload is a random mix of Add, Delete and Get checked against a model of the expected contents.
type workload struct {
	ops        uint
	keys       uint32
	add, del   float64 //shares of the operations; Get takes the rest.
	duplicates bool    //add keys that are already present instead of skipping them.
}

type result struct {
	Adds, Deletes, Hits, Misses uint
	Mismatches                  uint
	Stats                       Maps.Stats
}

func (w workload) run(m statsMap, r *rand.Rand) (res result) {
	//every stored value of a key. With duplicates the table may reach any of them first: a reused tombstone or a
	//rebuild changes the probe order of the copies, so the model only checks that Get returns one of them.
	model := make(map[uint32][]uint32)
	var entries uint
	for i := uint(0); i < w.ops; i++ {
		k, p := r.Uint32N(w.keys), r.Float64()
		switch {
		case p < w.add:
			if !w.duplicates && len(model[k]) > 0 {
				continue
			}
			m.Add(k, uint32(i))
			model[k] = append(model[k], uint32(i))
			entries++
			res.Adds++
		case p < w.add+w.del:
			//Delete removes the copy Get would have returned, so ask first.
			v, ok := w.check(m, model[k], k, &res)
			m.Delete(k)
			if ok {
				if model[k] = slices.DeleteFunc(model[k], func(x uint32) bool { return x == v }); len(model[k]) == 0 {
					delete(model, k)
				}
				entries--
			}
			res.Deletes++
		default:
			if _, ok := w.check(m, model[k], k, &res); ok {
				res.Hits++
			}
		}
	}
	if res.Stats = m.Stats(); res.Stats.UsedElements != entries {
		log.Warningf("map holds %d entries, expected %d", res.Stats.UsedElements, entries)
		res.Mismatches++
	}
	return
}

// check Get of k against vals, the stored values of k. Returns the value and whether k was present; counts misses and
// mismatches in res.
func (w workload) check(m statsMap, vals []uint32, k uint32, res *result) (uint32, bool) {
	v, err := m.Get(k)
	switch {
	case len(vals) == 0 && err != nil:
		res.Misses++
		return 0, false
	case len(vals) > 0 && err == nil && slices.Contains(vals, v):
		return v, true
	}
	log.Warningf("get %d returned %d, %v; expected one of %v", k, v, err, vals)
	res.Mismatches++
	return 0, false
}
