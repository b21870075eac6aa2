package physics

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

// fallbackNormal separates bodies whose centers coincide.
var fallbackNormal = cp.Vector{X: 1, Y: 0}

// BodyRef pairs a registered entity with its body for one frame.
type BodyRef struct {
	Entity ecs.Entity
	Body   *component.Body
}

// ContactPair is two equal-tier bodies flagged for merging, A registered
// before B.
type ContactPair struct {
	A ecs.Entity
	B ecs.Entity
}

// CollisionResolver pushes overlapping bodies apart and flags equal-tier
// contacts. Flags live until Reset, so a body joins at most one pair per
// frame no matter how many substeps see it touching.
type CollisionResolver struct {
	JitterThreshold float64

	flagged map[ecs.Entity]struct{}
	pairs   []ContactPair
}

func NewCollisionResolver(jitterThreshold float64) *CollisionResolver {
	return &CollisionResolver{
		JitterThreshold: jitterThreshold,
		flagged:         make(map[ecs.Entity]struct{}),
	}
}

// Reset clears the flags collected during the previous frame.
func (r *CollisionResolver) Reset() {
	clear(r.flagged)
	r.pairs = r.pairs[:0]
}

// Resolve runs one pass over every pair in registration order and returns a
// copy of the pairs newly flagged by this pass.
func (r *CollisionResolver) Resolve(bodies []BodyRef) []ContactPair {
	if r.flagged == nil {
		r.flagged = make(map[ecs.Entity]struct{})
	}
	start := len(r.pairs)
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for k := i + 1; k < len(bodies); k++ {
			b := bodies[k]
			if !r.separate(a.Body, b.Body) {
				continue
			}
			if a.Body.Tier != b.Body.Tier || r.Flagged(a.Entity) || r.Flagged(b.Entity) {
				continue
			}
			r.flagged[a.Entity] = struct{}{}
			r.flagged[b.Entity] = struct{}{}
			r.pairs = append(r.pairs, ContactPair{A: a.Entity, B: b.Entity})
		}
	}
	return slices.Clone(r.pairs[start:])
}

// Pairs returns every pair flagged since the last Reset, in flag order.
func (r *CollisionResolver) Pairs() []ContactPair {
	out := make([]ContactPair, len(r.pairs))
	copy(out, r.pairs)
	return out
}

func (r *CollisionResolver) Flagged(e ecs.Entity) bool {
	_, ok := r.flagged[e]
	return ok
}

// separate moves a and b apart when they overlap and reports whether they
// were in contact.
func (r *CollisionResolver) separate(a, b *component.Body) bool {
	radiusSum := a.Radius + b.Radius
	if !cp.NewBBForCircle(a.Current, a.Radius).Intersects(cp.NewBBForCircle(b.Current, b.Radius)) {
		return false
	}
	dir := a.Current.Sub(b.Current)
	distance := dir.Length()
	if distance >= radiusSum {
		return false
	}

	normal := fallbackNormal
	if distance > 0 {
		normal = dir.Mult(1 / distance)
	}
	correction := normal.Mult((radiusSum - distance) / 2)
	a.Current = a.Current.Add(correction)
	b.Current = b.Current.Sub(correction)

	if correction.Length() > r.JitterThreshold {
		stop(a)
		stop(b)
	}
	return true
}
