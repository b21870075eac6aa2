package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

func newGame(t *testing.T, noGravity bool) (*ecs.World, *physics.World, *prefabs.WorldSpec) {
	t.Helper()
	t.Setenv(prefabs.DirEnv, t.TempDir())

	spec, err := prefabs.LoadWorldSpec(prefabs.DefaultWorldFile)
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	cfg, err := spec.PhysicsConfig()
	if err != nil {
		t.Fatalf("PhysicsConfig: %v", err)
	}
	if noGravity {
		cfg.Gravity = cp.Vector{}
	}
	w := ecs.NewWorld()
	pw, err := physics.NewWorld(w, cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	pw.SetLogger(common.DiscardLogger())
	return w, pw, spec
}
