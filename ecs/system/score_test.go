package system

import (
	"testing"

	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
)

func TestScoreSystemBestTier(t *testing.T) {
	tests := []struct {
		name   string
		merges []component.Tier
		want   component.Tier
	}{
		{name: "single", merges: []component.Tier{0}, want: 1},
		{name: "keeps_largest", merges: []component.Tier{4, 1}, want: 5},
		{name: "largest_tier", merges: []component.Tier{10}, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, pw, spec := newGame(t, true)
			if pw.Config().Tiers.Max() != 10 {
				t.Fatalf("expected the default 11 tiers, got %d", pw.Config().Tiers.Len())
			}
			dropper, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
			if err != nil {
				t.Fatal(err)
			}
			for _, tier := range tt.merges {
				w.Events().Push(ecs.Event{Type: physics.EventMerge, Data: physics.Merge{Tier: tier}})
			}

			NewScoreSystem(spec).Update(w)

			sc, _ := ecs.Get(w, dropper, component.ScoreComponent.Kind())
			if sc.Merges != len(tt.merges) || sc.Best != tt.want {
				t.Fatalf("unexpected score %+v, want best %d", sc, tt.want)
			}
		})
	}
}
