package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/prefabs"
)

type fakeSource struct {
	changes [][]string
}

func (f *fakeSource) Poll() []string {
	if len(f.changes) == 0 {
		return nil
	}
	next := f.changes[0]
	f.changes = f.changes[1:]
	return next
}

const reloadWorld = `name: reloaded
arena: {top: 0, bottom: 300, left: 0, right: 300}
gravity: {x: 0, y: 500}
substeps: 2
tiers:
  - {name: pea, radius: 5, points: 2}
  - {name: bean, radius: 9, points: 4}
drop:
  y: 10
  cooldown_frames: 7
  script: drop.tengo
effects:
  burst_frames: 4
`

func TestHotReloadSystem(t *testing.T) {
	w, pw, spec := newGame(t, false)
	dir := os.Getenv(prefabs.DirEnv)

	spawn := NewSpawnSystem(pw, spec)
	drop := NewDropSystem(pw, spec, nil)
	death := NewDeathSystem(spec.Effects.BurstFrames)
	src := &fakeSource{}
	reload := NewHotReloadSystem(src, "world.yaml", pw)
	reload.log = common.DiscardLogger()
	reload.Spawn, reload.Drop, reload.Death = spawn, drop, death

	// irrelevant change is ignored
	src.changes = append(src.changes, []string{filepath.Join(dir, "notes.yaml")})
	reload.Update(w)
	if pw.Config().Substeps != 8 {
		t.Fatal("unrelated file triggered a reload")
	}

	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte(reloadWorld), 0o644); err != nil {
		t.Fatal(err)
	}
	src.changes = append(src.changes, []string{filepath.Join(dir, "world.yaml")})
	reload.Update(w)

	if pw.Config().Substeps != 2 || pw.Config().Tiers.Len() != 2 {
		t.Fatalf("config not reloaded: %+v", pw.Config())
	}
	if spawn.Spec.Name != "reloaded" || drop.Drop.CooldownFrames != 7 || death.BurstFrames != 4 {
		t.Fatal("systems did not receive the new spec")
	}
	if drop.Picker == nil {
		t.Fatal("expected the drop script to be recompiled")
	}

	// a broken spec keeps the running config
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte("substeps: 0\ntiers: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := reload.Reload(); err == nil {
		t.Fatal("expected an error for an invalid spec")
	}
	if pw.Config().Substeps != 2 {
		t.Fatal("invalid spec must not be applied")
	}
}

func TestHotReloadShrinksQueuedTier(t *testing.T) {
	w, pw, spec := newGame(t, false)
	dir := os.Getenv(prefabs.DirEnv)

	dropper, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	d, _ := ecs.Get(w, dropper, component.DropperComponent.Kind())
	d.NextTier = 4

	drop := NewDropSystem(pw, spec, nil)
	drop.log = common.DiscardLogger()
	reload := NewHotReloadSystem(&fakeSource{}, "world.yaml", pw)
	reload.log = common.DiscardLogger()
	reload.Drop = drop

	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), []byte(reloadWorld), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := reload.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	in, _ := ecs.Get(w, dropper, component.InputComponent.Kind())
	in.DropPressed = true
	drop.Update(w)

	if pw.Len() != 1 || d.Drops != 1 {
		t.Fatalf("expected a drop after the tier table shrank, bodies=%d drops=%d", pw.Len(), d.Drops)
	}
	if !pw.Config().Tiers.Valid(d.NextTier) {
		t.Fatalf("next tier %d outside the reloaded table", d.NextTier)
	}
	body, _ := pw.Body(pw.Bodies()[0])
	if body.Tier != 1 {
		t.Fatalf("expected the queued tier clamped to 1, got %d", body.Tier)
	}
}

func TestRestartSystem(t *testing.T) {
	w, pw, spec := newGame(t, false)
	dropper, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := ecs.Get(w, dropper, component.ScoreComponent.Kind())
	sc.Points = 10
	for i := 0; i < 3; i++ {
		if _, err := entity.NewFruit(w, pw, spec, 0, cp.Vector{X: 100 + 40*float64(i), Y: 300}); err != nil {
			t.Fatal(err)
		}
	}

	restart := NewRestartSystem(pw)
	restart.Update(w)
	if pw.Len() != 3 {
		t.Fatal("restart without a request should do nothing")
	}

	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}); err != nil {
		t.Fatal(err)
	}
	sched := ecs.NewScheduler(restart, NewDeathSystem(5))
	sched.Update(w)

	if pw.Len() != 0 {
		t.Fatalf("expected empty arena, got %d", pw.Len())
	}
	if w.IsAlive(req) {
		t.Fatal("request entity should be consumed")
	}
	if sc.Points != 0 {
		t.Fatalf("score not reset: %+v", sc)
	}
	if n := len(w.Query(component.FruitComponent.Kind())); n != 0 {
		t.Fatalf("fruit entities left behind: %d", n)
	}
}
