package system

import (
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
)

// DeathSystem turns death notifications into burst effects and destroys the
// dead entities. OnDeath sees every notification, whatever the cause.
type DeathSystem struct {
	BurstFrames int
	OnDeath     func(physics.Death)
}

func NewDeathSystem(burstFrames int) *DeathSystem {
	return &DeathSystem{BurstFrames: burstFrames}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, d := range physics.DrainDeaths(w.Events()) {
		if s.OnDeath != nil {
			s.OnDeath(d)
		}
		if d.Cause != physics.CauseMerged {
			continue
		}
		fruit, ok := ecs.Get(w, d.Entity, component.FruitComponent.Kind())
		body, okBody := ecs.Get(w, d.Entity, component.BodyComponent.Kind())
		if !ok || !okBody {
			continue
		}
		_, _ = entity.NewBurst(w, d.Position, body.Radius, fruit.Color, s.BurstFrames)
	}

	// sweep every dead entity, including ones whose notification was dropped
	for _, e := range w.Query(component.DeadComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
}
