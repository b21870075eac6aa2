package ecs

import (
	"sort"

	"github.com/milk9111/fruitmerge/ecs/component"
)

// Query returns the alive entities that carry every given kind, sorted by
// slot. The result is a fresh slice.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		ok := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-slot entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return NoEntity, false
	}
	return ents[0], true
}
