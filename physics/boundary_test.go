package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs/component"
)

func TestBoundaryConstraint(t *testing.T) {
	c := BoundaryConstraint{
		Arena:           Arena{Top: 0, Bottom: 100, Left: 0, Right: 100},
		JitterThreshold: DefaultJitterThreshold,
	}

	tests := []struct {
		name      string
		pos       cp.Vector
		prev      cp.Vector
		want      cp.Vector
		moved     bool
		stopped   bool
		keepsVelo bool
	}{
		{name: "inside", pos: cp.Vector{X: 50, Y: 50}, prev: cp.Vector{X: 49, Y: 50}, want: cp.Vector{X: 50, Y: 50}, keepsVelo: true},
		{name: "floor_small", pos: cp.Vector{X: 50, Y: 91}, prev: cp.Vector{X: 50, Y: 90}, want: cp.Vector{X: 50, Y: 90}, moved: true},
		{name: "floor_deep", pos: cp.Vector{X: 50, Y: 120}, prev: cp.Vector{X: 50, Y: 110}, want: cp.Vector{X: 50, Y: 90}, moved: true, stopped: true},
		{name: "left_wall", pos: cp.Vector{X: -5, Y: 50}, prev: cp.Vector{X: -4, Y: 50}, want: cp.Vector{X: 10, Y: 50}, moved: true, stopped: true},
		{name: "right_wall", pos: cp.Vector{X: 92, Y: 50}, prev: cp.Vector{X: 91, Y: 50}, want: cp.Vector{X: 90, Y: 50}, moved: true},
		{name: "top_is_open", pos: cp.Vector{X: 50, Y: -200}, prev: cp.Vector{X: 50, Y: -201}, want: cp.Vector{X: 50, Y: -200}, keepsVelo: true},
		{name: "corner", pos: cp.Vector{X: 200, Y: 200}, prev: cp.Vector{X: 200, Y: 200}, want: cp.Vector{X: 90, Y: 90}, moved: true, stopped: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := component.Body{Current: tc.pos, Previous: tc.prev, Radius: 10}
			velocity := Velocity(&b)
			moved := c.Apply(&b)
			if moved != tc.moved {
				t.Fatalf("moved = %v, want %v", moved, tc.moved)
			}
			if !nearVect(b.Current, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, b.Current)
			}
			if tc.stopped && Velocity(&b) != (cp.Vector{}) {
				t.Fatalf("expected velocity zeroed, got %v", Velocity(&b))
			}
			if tc.keepsVelo && Velocity(&b) != velocity {
				t.Fatalf("velocity changed from %v to %v", velocity, Velocity(&b))
			}
			if !tc.stopped && b.Previous != tc.prev {
				t.Fatalf("previous position should be untouched, got %v", b.Previous)
			}
		})
	}
}
