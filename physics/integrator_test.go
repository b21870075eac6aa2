package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs/component"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		body component.Body
		dt   float64
		want cp.Vector
	}{
		{
			name: "rest",
			body: component.Body{Current: cp.Vector{X: 1, Y: 2}, Previous: cp.Vector{X: 1, Y: 2}},
			dt:   0.1,
			want: cp.Vector{X: 1, Y: 2},
		},
		{
			name: "inertia",
			body: component.Body{Current: cp.Vector{X: 3, Y: 0}, Previous: cp.Vector{X: 1, Y: 0}},
			dt:   0.1,
			want: cp.Vector{X: 5, Y: 0},
		},
		{
			name: "acceleration",
			body: component.Body{Current: cp.Vector{X: 0, Y: 0}, Previous: cp.Vector{X: 0, Y: 0}, Acceleration: cp.Vector{X: 0, Y: 100}},
			dt:   0.5,
			want: cp.Vector{X: 0, Y: 25},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			before := b.Current
			Advance(&b, tc.dt)
			if !nearVect(b.Current, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, b.Current)
			}
			if b.Previous != before {
				t.Fatalf("previous should be old current %v, got %v", before, b.Previous)
			}
			if b.Acceleration != (cp.Vector{}) {
				t.Fatalf("acceleration not cleared: %v", b.Acceleration)
			}
		})
	}
}

func TestAccelerateAccumulates(t *testing.T) {
	var b component.Body
	Accelerate(&b, cp.Vector{X: 1, Y: 2})
	Accelerate(&b, cp.Vector{X: 3, Y: 4})
	if b.Acceleration != (cp.Vector{X: 4, Y: 6}) {
		t.Fatalf("unexpected acceleration %v", b.Acceleration)
	}
}

func TestSetVelocity(t *testing.T) {
	b := component.Body{Current: cp.Vector{X: 10, Y: 10}, Previous: cp.Vector{X: 10, Y: 10}}
	SetVelocity(&b, cp.Vector{X: 60, Y: -30}, 0.1)
	if !nearVect(Velocity(&b), cp.Vector{X: 6, Y: -3}) {
		t.Fatalf("expected per-step displacement (6,-3), got %v", Velocity(&b))
	}
	Advance(&b, 0.1)
	if !nearVect(b.Current, cp.Vector{X: 16, Y: 7}) {
		t.Fatalf("imposed velocity not carried by Advance: %v", b.Current)
	}

	stop(&b)
	if Velocity(&b) != (cp.Vector{}) {
		t.Fatalf("expected zero velocity after stop, got %v", Velocity(&b))
	}
}
