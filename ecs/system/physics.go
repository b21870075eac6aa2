package system

import (
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/physics"
)

// FixedDt is the frame delta the game loop runs at.
const FixedDt = 1.0 / 60.0

// PhysicsSystem advances the physics world once per tick.
type PhysicsSystem struct {
	World  *physics.World
	Dt     float64
	Paused bool
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{World: world, Dt: FixedDt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || s.World == nil || w == nil || s.Paused {
		return
	}
	s.World.Step(s.Dt)
}
