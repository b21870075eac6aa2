package system

import (
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// ScoreSystem consumes merge events. OnMerge lets viewers react (sound,
// counters) without draining the queue themselves.
type ScoreSystem struct {
	Spec    *prefabs.WorldSpec
	OnMerge func(physics.Merge)
}

func NewScoreSystem(spec *prefabs.WorldSpec) *ScoreSystem {
	return &ScoreSystem{Spec: spec}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	merges := physics.DrainMerges(w.Events())
	if len(merges) == 0 {
		return
	}

	var score *component.Score
	if e, ok := w.First(component.ScoreComponent.Kind()); ok {
		score, _ = ecs.Get(w, e, component.ScoreComponent.Kind())
	}

	for _, m := range merges {
		if score != nil {
			score.Merges++
			score.Points += s.points(m.Tier)
			if made := s.produced(m.Tier); made > score.Best {
				score.Best = made
			}
		}
		if s.OnMerge != nil {
			s.OnMerge(m)
		}
	}
}

// produced is the tier a merge of tier creates. The largest tier merges
// into nothing and counts as itself.
func (s *ScoreSystem) produced(tier component.Tier) component.Tier {
	if s.Spec != nil && int(tier)+1 < len(s.Spec.Tiers) {
		return tier + 1
	}
	return tier
}

// points awards the merged tier's value, or tier+1 without a spec.
func (s *ScoreSystem) points(tier component.Tier) int {
	if p := s.Spec.TierPoints(int(tier)); p > 0 {
		return p
	}
	return int(tier) + 1
}
