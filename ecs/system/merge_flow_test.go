package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
)

func TestMergeFlow(t *testing.T) {
	w, pw, spec := newGame(t, true)

	dropper, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	a, err := entity.NewFruit(w, pw, spec, 2, cp.Vector{X: 200, Y: 400})
	if err != nil {
		t.Fatal(err)
	}
	b, err := entity.NewFruit(w, pw, spec, 2, cp.Vector{X: 210, Y: 400})
	if err != nil {
		t.Fatal(err)
	}

	var merged []physics.Merge
	score := NewScoreSystem(spec)
	score.OnMerge = func(m physics.Merge) { merged = append(merged, m) }

	sched := ecs.NewScheduler(
		NewPhysicsSystem(pw),
		NewSpawnSystem(pw, spec),
		score,
		NewDeathSystem(5),
		NewTTLSystem(),
	)
	sched.Update(w)

	if w.IsAlive(a) || w.IsAlive(b) {
		t.Fatal("merged fruit entities should be destroyed")
	}
	if len(merged) != 1 || merged[0].Tier != 2 {
		t.Fatalf("expected one tier 2 merge, got %+v", merged)
	}

	bodies := pw.Bodies()
	if len(bodies) != 1 {
		t.Fatalf("expected the spawned fruit registered, got %v", bodies)
	}
	fruit, ok := ecs.Get(w, bodies[0], component.FruitComponent.Kind())
	if !ok || fruit.Name != "dekopon" {
		t.Fatalf("expected a dekopon, got %+v", fruit)
	}
	body, _ := pw.Body(bodies[0])
	if body.Tier != 3 {
		t.Fatalf("expected tier 3 body, got %d", body.Tier)
	}

	bursts := w.Query(component.BurstComponent.Kind())
	if len(bursts) != 2 {
		t.Fatalf("expected a burst per merged fruit, got %d", len(bursts))
	}

	sc, _ := ecs.Get(w, dropper, component.ScoreComponent.Kind())
	if sc.Merges != 1 || sc.Points != spec.Tiers[2].Points || sc.Best != 3 {
		t.Fatalf("unexpected score %+v", sc)
	}

	for i := 0; i < 5; i++ {
		sched.Update(w)
	}
	if n := len(w.Query(component.BurstComponent.Kind())); n != 0 {
		t.Fatalf("bursts should expire, %d left", n)
	}
	if w.Events().Len() != 0 {
		t.Fatal("scheduler should flush events")
	}
}

func TestDeathSystemRemovedBodyHasNoBurst(t *testing.T) {
	w, pw, spec := newGame(t, false)
	e, err := entity.NewFruit(w, pw, spec, 0, cp.Vector{X: 200, Y: 200})
	if err != nil {
		t.Fatal(err)
	}
	pw.RemoveBody(e)

	NewDeathSystem(5).Update(w)

	if w.IsAlive(e) {
		t.Fatal("removed fruit should be destroyed")
	}
	if n := len(w.Query(component.BurstComponent.Kind())); n != 0 {
		t.Fatalf("only merges leave bursts, got %d", n)
	}
}

func TestTTLSystem(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		alive  int
	}{
		{"expired", 0, 0},
		{"one", 1, 0},
		{"three", 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: tc.frames, Total: tc.frames}); err != nil {
				t.Fatal(err)
			}
			s := NewTTLSystem()
			ticks := 0
			for w.IsAlive(e) && ticks < 10 {
				s.Update(w)
				ticks++
			}
			if ticks-1 != tc.alive {
				t.Fatalf("expected entity to survive %d ticks, survived %d", tc.alive, ticks-1)
			}
		})
	}
}
