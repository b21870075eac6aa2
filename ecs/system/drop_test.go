package system

import (
	"testing"

	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/prefabs"
)

func TestDropPickerEmbeddedScript(t *testing.T) {
	t.Setenv(prefabs.DirEnv, t.TempDir())
	p, err := NewDropPicker("drop.tengo")
	if err != nil {
		t.Fatalf("NewDropPicker: %v", err)
	}
	for drops := 0; drops < 3; drops++ {
		tier, err := p.Pick(drops, 4)
		if err != nil || tier != 0 {
			t.Fatalf("drop %d: expected tier 0, got %d (%v)", drops, tier, err)
		}
	}
	for drops := 3; drops < 50; drops++ {
		tier, err := p.Pick(drops, 4)
		if err != nil {
			t.Fatal(err)
		}
		if tier < 0 || tier > 4 {
			t.Fatalf("tier %d out of range", tier)
		}
	}
}

func TestDropPickerSource(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		drops   int
		max     component.Tier
		want    component.Tier
		wantErr bool
	}{
		{name: "identity", src: `pick := func(c, m) { return c }`, drops: 2, max: 4, want: 2},
		{name: "clamped_high", src: `pick := func(c, m) { return 99 }`, drops: 0, max: 3, want: 3},
		{name: "clamped_low", src: `pick := func(c, m) { return -5 }`, drops: 0, max: 3, want: 0},
		{name: "runtime_error", src: `pick := func(c, m) { f := c; return f() }`, drops: 1, max: 3, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewDropPickerSource([]byte(tc.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := p.Pick(tc.drops, tc.max)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestDropPickerCompileError(t *testing.T) {
	if _, err := NewDropPickerSource([]byte(`this is not tengo`)); err == nil {
		t.Fatal("expected compile error")
	}
	if _, err := NewDropPickerSource([]byte(`x := 1`)); err == nil {
		t.Fatal("expected error for a script without pick")
	}
	var nilPicker *DropPicker
	if tier, err := nilPicker.Pick(10, 4); err != nil || tier != 0 {
		t.Fatalf("nil picker should yield tier 0, got %d %v", tier, err)
	}
}

func TestDropSystem(t *testing.T) {
	w, pw, spec := newGame(t, false)
	spec.Drop.CooldownFrames = 3

	picker, err := NewDropPickerSource([]byte(`pick := func(c, m) { return 1 }`))
	if err != nil {
		t.Fatal(err)
	}
	drops := NewDropSystem(pw, spec, picker)

	e, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	d, _ := ecs.Get(w, e, component.DropperComponent.Kind())

	// aim far past the left wall and drop
	in.AimX = -1000
	in.DropPressed = true
	drops.Update(w)

	if pw.Len() != 1 {
		t.Fatalf("expected one fruit, got %d", pw.Len())
	}
	body, _ := pw.Body(pw.Bodies()[0])
	arena := pw.Config().Arena
	if body.Current.X != arena.Left+body.Radius || body.Tier != 0 {
		t.Fatalf("expected tier 0 clamped to the left wall, got %+v", body)
	}
	if d.Drops != 1 || d.NextTier != 1 || d.Cooldown != 3 {
		t.Fatalf("unexpected dropper state %+v", d)
	}
	if in.DropPressed {
		t.Fatal("drop press should be consumed")
	}

	// requests wait for the cooldown
	in.DropPressed = true
	drops.Update(w)
	if pw.Len() != 1 {
		t.Fatal("dropped during cooldown")
	}
	drops.Update(w)
	drops.Update(w)
	if pw.Len() != 2 {
		t.Fatalf("expected the pending drop after cooldown, got %d", pw.Len())
	}
}

func TestDropSystemMovesWithInput(t *testing.T) {
	w, pw, spec := newGame(t, false)
	drops := NewDropSystem(pw, spec, nil)
	e, err := entity.NewDropper(w, pw.Config().Arena, spec.Drop)
	if err != nil {
		t.Fatal(err)
	}
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	d, _ := ecs.Get(w, e, component.DropperComponent.Kind())
	start := d.X

	in.MoveX = 1
	drops.Update(w)
	if d.X <= start {
		t.Fatalf("expected dropper to move right from %v, got %v", start, d.X)
	}

	in.MoveX = 0
	in.AimX = 1e6
	drops.Update(w)
	r, _ := pw.Config().Tiers.Radius(d.NextTier)
	if d.X != pw.Config().Arena.Right-r {
		t.Fatalf("expected dropper clamped to the right wall, got %v", d.X)
	}
}
