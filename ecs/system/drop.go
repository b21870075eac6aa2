package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

const defaultDropSpeed = 240.0

// DropSystem moves the dropper from its Input and releases fruit. A
// DropRequest on the dropper entity releases at the requested x once the
// cooldown has run out.
type DropSystem struct {
	World  *physics.World
	Spec   *prefabs.WorldSpec
	Picker *DropPicker
	Drop   prefabs.DropSpec
	log    *log.Logger
}

func NewDropSystem(world *physics.World, spec *prefabs.WorldSpec, picker *DropPicker) *DropSystem {
	s := &DropSystem{World: world, Spec: spec, Picker: picker, log: common.NewLogger("drop")}
	if spec != nil {
		s.Drop = spec.Drop
	}
	return s
}

func (s *DropSystem) Update(w *ecs.World) {
	if s == nil || s.World == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.DropperComponent.Kind(), func(e ecs.Entity, d *component.Dropper) {
		if d.Cooldown > 0 {
			d.Cooldown--
		}
		// a reload may have shrunk the tier table under the queued tier
		if top := s.World.Config().Tiers.Max(); d.NextTier > top {
			d.NextTier = max(top, 0)
		}

		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			speed := s.Drop.Speed
			if speed == 0 {
				speed = defaultDropSpeed
			}
			d.X = s.clampX(in.AimX+in.MoveX*speed*FixedDt, d.NextTier)
			in.AimX = d.X
			if in.DropPressed && !ecs.Has(w, e, component.DropRequestComponent.Kind()) {
				_ = ecs.Add(w, e, component.DropRequestComponent.Kind(), &component.DropRequest{X: d.X})
			}
			in.DropPressed = false
		}

		req, ok := ecs.Get(w, e, component.DropRequestComponent.Kind())
		if !ok || d.Cooldown > 0 {
			return
		}
		ecs.Remove(w, e, component.DropRequestComponent.Kind())
		s.release(w, d, req.X)
	})
}

func (s *DropSystem) release(w *ecs.World, d *component.Dropper, x float64) {
	x = s.clampX(x, d.NextTier)
	if _, err := entity.NewFruit(w, s.World, s.Spec, d.NextTier, cp.Vector{X: x, Y: d.Y}); err != nil {
		s.log.Warn("drop failed", "tier", d.NextTier, "err", err)
		return
	}
	d.Drops++
	d.Cooldown = s.Drop.CooldownFrames

	maxTier := component.Tier(s.Drop.MaxTier)
	if top := s.World.Config().Tiers.Max(); maxTier > top || maxTier <= 0 {
		maxTier = min(top, 4)
	}
	next, err := s.Picker.Pick(d.Drops, maxTier)
	if err != nil {
		s.log.Warn("drop script failed", "script", s.Picker.Path(), "err", err)
	}
	d.NextTier = next
}

// clampX keeps a fruit of tier fully between the walls.
func (s *DropSystem) clampX(x float64, tier component.Tier) float64 {
	arena := s.World.Config().Arena
	r, ok := s.World.Config().Tiers.Radius(tier)
	if !ok {
		r = 0
	}
	return common.Clamp(x, arena.Left+r, arena.Right-r)
}
