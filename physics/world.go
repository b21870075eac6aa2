package physics

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

// defaultFrameDt is assumed by SetVelocity before the first Step.
const defaultFrameDt = 1.0 / 60.0

// World owns the ordered registry of active bodies and runs the substep
// loop. Bodies are stored as component.Body on entities of the ECS world;
// the registry order decides collision evaluation order and merge
// tie-breaks.
type World struct {
	ecs      *ecs.World
	cfg      Config
	boundary BoundaryConstraint
	resolver *CollisionResolver
	merger   *MergeEngine
	order    []ecs.Entity
	index    map[ecs.Entity]struct{}
	frame    uint64
	subDt    float64
	log      *log.Logger
}

func NewWorld(w *ecs.World, cfg Config) (*World, error) {
	if w == nil {
		return nil, fmt.Errorf("physics: new world: nil ecs world")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pw := &World{
		ecs:      w,
		resolver: NewCollisionResolver(cfg.JitterThreshold),
		index:    make(map[ecs.Entity]struct{}),
		log:      common.NewLogger("physics"),
	}
	pw.merger = &MergeEngine{world: pw}
	pw.applyConfig(cfg)
	return pw, nil
}

func (w *World) SetLogger(l *log.Logger) {
	if l != nil {
		w.log = l
	}
}

// SetConfig swaps the configuration between frames. Bodies keep the radius
// they were created with.
func (w *World) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.applyConfig(cfg)
	w.log.Info("config applied", "substeps", cfg.Substeps, "tiers", cfg.Tiers.Len(), "bodies", len(w.order))
	return nil
}

func (w *World) applyConfig(cfg Config) {
	cfg.Tiers = NewTierTable(cfg.Tiers.specs...)
	w.cfg = cfg
	w.boundary = BoundaryConstraint{Arena: cfg.Arena, JitterThreshold: cfg.JitterThreshold}
	w.resolver.JitterThreshold = cfg.JitterThreshold
}

func (w *World) Config() Config {
	return w.cfg
}

// Frame returns the number of completed steps.
func (w *World) Frame() uint64 {
	return w.frame
}

func (w *World) ECS() *ecs.World {
	return w.ecs
}

// AddBody registers a resting body of the given tier at pos.
func (w *World) AddBody(pos cp.Vector, tier component.Tier) (ecs.Entity, error) {
	radius, ok := w.cfg.Tiers.Radius(tier)
	if !ok {
		return ecs.NoEntity, fmt.Errorf("physics: add body: tier %d: %w", tier, ErrUnknownTier)
	}
	if !finiteVect(pos) {
		return ecs.NoEntity, fmt.Errorf("physics: add body: position %v is not finite", pos)
	}
	e := w.ecs.CreateEntity()
	body := &component.Body{Current: pos, Previous: pos, Radius: radius, Tier: tier}
	if err := ecs.Add(w.ecs, e, component.BodyComponent.Kind(), body); err != nil {
		w.ecs.DestroyEntity(e)
		return ecs.NoEntity, fmt.Errorf("physics: add body: %w", err)
	}
	w.order = append(w.order, e)
	w.index[e] = struct{}{}
	return e, nil
}

// RemoveBody takes e out of the simulation, marks it dead and emits a death
// notification. It reports false when e is not registered.
func (w *World) RemoveBody(e ecs.Entity) bool {
	return w.remove(e, CauseRemoved)
}

// Alive reports whether e is a registered body.
func (w *World) Alive(e ecs.Entity) bool {
	_, ok := w.registered(e)
	return ok
}

func (w *World) Len() int {
	return len(w.order)
}

// Bodies returns the registered entities in registration order.
func (w *World) Bodies() []ecs.Entity {
	return slices.Clone(w.order)
}

// Body returns a copy of e's body state.
func (w *World) Body(e ecs.Entity) (component.Body, bool) {
	b, ok := w.registered(e)
	if !ok {
		return component.Body{}, false
	}
	return *b, true
}

// SetVelocity imposes v on e using the substep delta of the last frame.
func (w *World) SetVelocity(e ecs.Entity, v cp.Vector) bool {
	b, ok := w.registered(e)
	if !ok {
		return false
	}
	SetVelocity(b, v, w.stepDt())
	return true
}

func (w *World) stepDt() float64 {
	if w.subDt > 0 {
		return w.subDt
	}
	return defaultFrameDt / float64(w.cfg.Substeps)
}

// Step advances the simulation by dt split into the configured number of
// substeps, then commits the merges flagged during the frame.
func (w *World) Step(dt float64) {
	if !(dt > 0) || !finite(dt) {
		w.log.Warn("ignoring step", "dt", dt)
		return
	}
	w.frame++
	w.subDt = dt / float64(w.cfg.Substeps)
	w.resolver.Reset()

	bodies := w.refs()
	for i := 0; i < w.cfg.Substeps; i++ {
		for _, ref := range bodies {
			Accelerate(ref.Body, w.cfg.Gravity)
		}
		for _, ref := range bodies {
			w.boundary.Apply(ref.Body)
		}
		w.resolver.Resolve(bodies)
		for _, ref := range bodies {
			Advance(ref.Body, w.subDt)
		}
	}
	for _, ref := range bodies {
		w.boundary.Apply(ref.Body)
	}

	w.merger.Process(w.resolver.Pairs())

	for _, ref := range bodies {
		if w.Alive(ref.Entity) && !(finiteVect(ref.Body.Current) && finiteVect(ref.Body.Previous)) {
			w.log.Warn("removing body with non-finite position", "entity", ref.Entity, "frame", w.frame)
			w.remove(ref.Entity, CauseInvalid)
		}
	}
}

// refs resolves the registry to body pointers, dropping entities that were
// destroyed behind the world's back.
func (w *World) refs() []BodyRef {
	out := make([]BodyRef, 0, len(w.order))
	kept := w.order[:0]
	for _, e := range w.order {
		b, ok := ecs.Get(w.ecs, e, component.BodyComponent.Kind())
		if !ok {
			w.log.Warn("dropping body destroyed outside the physics world", "entity", e)
			delete(w.index, e)
			continue
		}
		kept = append(kept, e)
		out = append(out, BodyRef{Entity: e, Body: b})
	}
	clear(w.order[len(kept):])
	w.order = kept
	return out
}

func (w *World) registered(e ecs.Entity) (*component.Body, bool) {
	if _, ok := w.index[e]; !ok {
		return nil, false
	}
	return ecs.Get(w.ecs, e, component.BodyComponent.Kind())
}

func (w *World) remove(e ecs.Entity, cause string) bool {
	if _, ok := w.index[e]; !ok {
		return false
	}
	delete(w.index, e)
	if i := slices.Index(w.order, e); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}

	death := Death{Entity: e, Cause: cause}
	if b, ok := ecs.Get(w.ecs, e, component.BodyComponent.Kind()); ok {
		death.Tier = b.Tier
		death.Position = b.Current
	}
	_ = ecs.Add(w.ecs, e, component.DeadComponent.Kind(), &component.Dead{Cause: cause})
	w.emit(EventDeath, death)
	return true
}

func (w *World) emit(typ string, data any) {
	w.ecs.Events().Push(ecs.Event{Type: typ, Data: data})
}
