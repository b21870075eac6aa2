package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs/component"
)

// BoundaryConstraint keeps bodies inside the bottom, left and right borders.
// The top is open so fruit can be dropped in from above.
type BoundaryConstraint struct {
	Arena           Arena
	JitterThreshold float64
}

// Apply clamps b and reports whether it moved. A correction longer than the
// jitter threshold also zeroes the body's velocity.
func (c BoundaryConstraint) Apply(b *component.Body) bool {
	r := b.Radius
	pos := b.Current
	clamped := cp.Vector{
		X: cp.Clamp(pos.X, c.Arena.Left+r, c.Arena.Right-r),
		Y: pos.Y,
	}
	if clamped.Y > c.Arena.Bottom-r {
		clamped.Y = c.Arena.Bottom - r
	}
	if clamped.Equal(pos) {
		return false
	}
	b.Current = clamped
	if clamped.Distance(pos) > c.JitterThreshold {
		stop(b)
	}
	return true
}
