package system

import (
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// Pipeline is the standard set of game systems around one physics world.
type Pipeline struct {
	Physics *PhysicsSystem
	Restart *RestartSystem
	Drop    *DropSystem
	Spawn   *SpawnSystem
	Score   *ScoreSystem
	Death   *DeathSystem
	TTL     *TTLSystem
}

func NewPipeline(pw *physics.World, spec *prefabs.WorldSpec, picker *DropPicker) *Pipeline {
	burst := 0
	if spec != nil {
		burst = spec.Effects.BurstFrames
	}
	return &Pipeline{
		Physics: NewPhysicsSystem(pw),
		Restart: NewRestartSystem(pw),
		Drop:    NewDropSystem(pw, spec, picker),
		Spawn:   NewSpawnSystem(pw, spec),
		Score:   NewScoreSystem(spec),
		Death:   NewDeathSystem(burst),
		TTL:     NewTTLSystem(),
	}
}

// HotReload returns a reload system wired to every system of the pipeline.
func (p *Pipeline) HotReload(source ChangeSource, worldFile string) *HotReloadSystem {
	s := NewHotReloadSystem(source, worldFile, p.Physics.World)
	s.Spawn, s.Drop, s.Score, s.Death = p.Spawn, p.Drop, p.Score, p.Death
	return s
}

// Scheduler orders the pipeline after the given input-side systems: drops
// land before the step, and merge products are materialized in the same tick.
func (p *Pipeline) Scheduler(before ...ecs.System) *ecs.Scheduler {
	s := ecs.NewScheduler(before...)
	s.Add(p.Restart)
	s.Add(p.Drop)
	s.Add(p.Physics)
	s.Add(p.Spawn)
	s.Add(p.Score)
	s.Add(p.Death)
	s.Add(p.TTL)
	return s
}
