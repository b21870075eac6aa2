package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs/component"
)

// Accelerate adds a to the body's accumulated acceleration.
func Accelerate(b *component.Body, a cp.Vector) {
	b.Acceleration = b.Acceleration.Add(a)
}

// Advance performs one Verlet step and clears the accumulated acceleration.
func Advance(b *component.Body, dt float64) {
	next := b.Current.
		Add(b.Current.Sub(b.Previous)).
		Add(b.Acceleration.Mult(dt * dt))
	b.Previous = b.Current
	b.Current = next
	b.Acceleration = cp.Vector{}
}

// SetVelocity imposes v by rewriting the previous position.
func SetVelocity(b *component.Body, v cp.Vector, dt float64) {
	b.Previous = b.Current.Sub(v.Mult(dt))
}

// Velocity returns the displacement covered during the last step.
func Velocity(b *component.Body) cp.Vector {
	return b.Current.Sub(b.Previous)
}

func stop(b *component.Body) {
	SetVelocity(b, cp.Vector{}, 0)
}
