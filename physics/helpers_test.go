package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

const eps = 1e-9

func newTestWorld(t *testing.T, mutate func(*Config)) (*World, *ecs.World) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	ew := ecs.NewWorld()
	w, err := NewWorld(ew, cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.SetLogger(common.DiscardLogger())
	return w, ew
}

func noGravity(cfg *Config) {
	cfg.Gravity = cp.Vector{}
}

func mustAdd(t *testing.T, w *World, x, y float64, tier component.Tier) ecs.Entity {
	t.Helper()
	e, err := w.AddBody(cp.Vector{X: x, Y: y}, tier)
	if err != nil {
		t.Fatalf("AddBody(%v, %v, %d): %v", x, y, tier, err)
	}
	return e
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVect(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
