package system

import (
	"testing"

	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
)

func TestPipelineDropAndRestart(t *testing.T) {
	w, pw, spec := newGame(t, false)
	dropper, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	picker, err := NewDropPickerSource([]byte(`pick := func(count, max_tier) { return 0 }`))
	if err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(pw, spec, picker)
	sched := p.Scheduler()
	if got := len(sched.Systems()); got != 7 {
		t.Fatalf("expected 7 systems, got %d", got)
	}

	if err := ecs.Add(w, dropper, component.DropRequestComponent.Kind(), &component.DropRequest{X: 240}); err != nil {
		t.Fatal(err)
	}
	sched.Update(w)
	if pw.Len() != 1 {
		t.Fatalf("expected one dropped fruit, got %d", pw.Len())
	}

	for i := 0; i < 120; i++ {
		sched.Update(w)
	}
	body, _ := pw.Body(pw.Bodies()[0])
	if body.Current.Y+body.Radius > pw.Config().Arena.Bottom+1e-6 {
		t.Fatalf("fruit fell through the floor: %+v", body)
	}

	if err := RequestRestart(w); err != nil {
		t.Fatal(err)
	}
	sched.Update(w)
	if pw.Len() != 0 {
		t.Fatalf("restart should clear the arena, %d left", pw.Len())
	}
	d, _ := ecs.Get(w, dropper, component.DropperComponent.Kind())
	if d.Drops != 0 {
		t.Fatalf("dropper not reset: %+v", d)
	}
}
