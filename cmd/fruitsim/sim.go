package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/ecs/system"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

type options struct {
	WorldFile string
	Frames    int
	DropEvery int
	Seed      uint64
	Snapshot  bool
}

// summary is the yaml report of a headless run.
type summary struct {
	World    string            `yaml:"world"`
	Seed     uint64            `yaml:"seed"`
	Frames   uint64            `yaml:"frames"`
	Drops    int               `yaml:"drops"`
	Merges   map[string]int    `yaml:"merges"`
	Deaths   map[string]int    `yaml:"deaths"`
	Score    int               `yaml:"score"`
	Best     string            `yaml:"best"`
	Bodies   map[string]int    `yaml:"bodies"`
	Snapshot *physics.Snapshot `yaml:"snapshot,omitempty"`
}

// simulate drops fruit at seeded random positions every DropEvery frames
// and reports what happened after Frames frames.
func simulate(opts options) (*summary, error) {
	if opts.Frames < 0 || opts.DropEvery <= 0 {
		return nil, fmt.Errorf("fruitsim: frames must be >= 0 and drop interval > 0")
	}

	spec, err := prefabs.LoadWorldSpec(opts.WorldFile)
	if err != nil {
		return nil, err
	}
	cfg, err := spec.PhysicsConfig()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	pw, err := physics.NewWorld(w, cfg)
	if err != nil {
		return nil, err
	}
	dropper, err := entity.NewDropper(w, cfg.Arena, spec.Drop)
	if err != nil {
		return nil, err
	}
	picker, err := system.NewDropPicker(spec.Drop.Script)
	if err != nil {
		return nil, err
	}

	sum := &summary{
		World:  spec.Name,
		Seed:   opts.Seed,
		Merges: map[string]int{},
		Deaths: map[string]int{},
	}
	pipeline := system.NewPipeline(pw, spec, picker)
	pipeline.Score.OnMerge = func(m physics.Merge) { sum.Merges[tierName(spec, m.Tier)]++ }
	pipeline.Death.OnDeath = func(d physics.Death) { sum.Deaths[d.Cause]++ }
	sched := pipeline.Scheduler()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	arena := cfg.Arena
	for frame := 0; frame < opts.Frames; frame++ {
		if frame%opts.DropEvery == 0 && !ecs.Has(w, dropper, component.DropRequestComponent.Kind()) {
			x := arena.Left + rng.Float64()*arena.Width()
			if err := ecs.Add(w, dropper, component.DropRequestComponent.Kind(), &component.DropRequest{X: x}); err != nil {
				return nil, err
			}
		}
		sched.Update(w)
	}

	snap := pw.Snapshot()
	sum.Frames = snap.Frame
	sum.Bodies = snap.CountByTier()
	if d, ok := ecs.Get(w, dropper, component.DropperComponent.Kind()); ok {
		sum.Drops = d.Drops
	}
	if sc, ok := ecs.Get(w, dropper, component.ScoreComponent.Kind()); ok {
		sum.Score = sc.Points
		if sc.Merges > 0 {
			sum.Best = tierName(spec, sc.Best)
		}
	}
	if opts.Snapshot {
		sum.Snapshot = &snap
	}
	return sum, nil
}

func tierName(spec *prefabs.WorldSpec, tier component.Tier) string {
	if name := spec.TierName(int(tier)); name != "" {
		return name
	}
	return fmt.Sprintf("tier%d", tier)
}
