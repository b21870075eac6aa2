package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// SpawnSystem materializes the spawn requests emitted by merges.
type SpawnSystem struct {
	World *physics.World
	Spec  *prefabs.WorldSpec
	log   *log.Logger
}

func NewSpawnSystem(world *physics.World, spec *prefabs.WorldSpec) *SpawnSystem {
	return &SpawnSystem{World: world, Spec: spec, log: common.NewLogger("spawn")}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.World == nil || w == nil {
		return
	}
	for _, req := range physics.DrainSpawnRequests(w.Events()) {
		if _, err := entity.NewFruit(w, s.World, s.Spec, req.Tier, req.Position); err != nil {
			s.log.Warn("spawn failed", "tier", req.Tier, "err", err)
		}
	}
}
