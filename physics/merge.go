package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
)

// MergeEngine commits the contact pairs flagged during a frame.
type MergeEngine struct {
	world *World
}

// Process removes both bodies of every pair and returns the spawn requests
// it emitted. Pairs whose bodies are gone or already consumed are skipped.
func (m *MergeEngine) Process(pairs []ContactPair) []SpawnRequest {
	if len(pairs) == 0 {
		return nil
	}
	w := m.world
	consumed := make(map[ecs.Entity]struct{}, 2*len(pairs))
	var spawns []SpawnRequest
	for _, p := range pairs {
		_, usedA := consumed[p.A]
		_, usedB := consumed[p.B]
		if usedA || usedB || p.A == p.B {
			w.log.Warn("merge pair reuses a body", "a", p.A, "b", p.B, "frame", w.frame)
			continue
		}
		a, okA := w.registered(p.A)
		b, okB := w.registered(p.B)
		if !okA || !okB {
			w.log.Warn("merge pair references a removed body", "a", p.A, "b", p.B, "frame", w.frame)
			continue
		}
		if a.Tier != b.Tier {
			w.log.Warn("merge pair tiers differ", "a", a.Tier, "b", b.Tier)
			continue
		}

		tier := a.Tier
		pos := a.Current.Lerp(b.Current, 0.5).Add(cp.Vector{X: 0, Y: -a.Radius})

		consumed[p.A] = struct{}{}
		consumed[p.B] = struct{}{}
		w.remove(p.A, CauseMerged)
		w.remove(p.B, CauseMerged)
		w.emit(EventMerge, Merge{Tier: tier, Position: pos, A: p.A, B: p.B})

		next, ok := w.cfg.Tiers.Next(tier)
		if !ok {
			w.log.Debug("largest tier merged", "tier", tier, "frame", w.frame)
			continue
		}
		req := SpawnRequest{Tier: next, Position: pos}
		w.emit(EventSpawn, req)
		spawns = append(spawns, req)
		w.log.Debug("merge", "tier", tier, "next", next, "x", pos.X, "y", pos.Y)
	}
	return spawns
}
