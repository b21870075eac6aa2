package system

import (
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/physics"
)

// RestartSystem clears the arena when a ReloadRequest entity appears. The
// removed bodies go through the usual death path.
type RestartSystem struct {
	Physics *physics.World
}

func NewRestartSystem(pw *physics.World) *RestartSystem {
	return &RestartSystem{Physics: pw}
}

func (s *RestartSystem) Update(w *ecs.World) {
	if s == nil || s.Physics == nil || w == nil {
		return
	}
	requests := w.Query(component.ReloadRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}

	for _, e := range s.Physics.Bodies() {
		s.Physics.RemoveBody(e)
	}
	ecs.ForEach(w, component.ScoreComponent.Kind(), func(_ ecs.Entity, sc *component.Score) {
		*sc = component.Score{}
	})
	ecs.ForEach(w, component.DropperComponent.Kind(), func(_ ecs.Entity, d *component.Dropper) {
		d.Drops = 0
		d.Cooldown = 0
		d.NextTier = 0
	})
}

// RequestRestart queues a restart for the next RestartSystem update.
func RequestRestart(w *ecs.World) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
}
