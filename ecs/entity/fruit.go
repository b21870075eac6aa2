package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
	"golang.org/x/image/colornames"
)

// fallbackPalette colors tiers the world spec leaves uncolored.
var fallbackPalette = []color.RGBA{
	colornames.Crimson,
	colornames.Orangered,
	colornames.Blueviolet,
	colornames.Orange,
	colornames.Coral,
	colornames.Red,
	colornames.Khaki,
	colornames.Peachpuff,
	colornames.Gold,
	colornames.Yellowgreen,
	colornames.Seagreen,
}

// NewFruit registers a body of the given tier at pos and attaches its
// presentation. spec may be nil.
func NewFruit(w *ecs.World, pw *physics.World, spec *prefabs.WorldSpec, tier component.Tier, pos cp.Vector) (ecs.Entity, error) {
	e, err := pw.AddBody(pos, tier)
	if err != nil {
		return 0, fmt.Errorf("fruit: %w", err)
	}

	fruit := &component.Fruit{
		Name:  spec.TierName(int(tier)),
		Color: TierColor(spec, tier),
	}
	if fruit.Name == "" {
		if ts, ok := pw.Config().Tiers.Spec(tier); ok {
			fruit.Name = ts.Name
		}
	}
	if err := ecs.Add(w, e, component.FruitComponent.Kind(), fruit); err != nil {
		pw.RemoveBody(e)
		return 0, fmt.Errorf("fruit: add fruit: %w", err)
	}
	return e, nil
}

// TierColor returns the spec color of tier or a palette fallback.
func TierColor(spec *prefabs.WorldSpec, tier component.Tier) color.NRGBA {
	if c, ok := spec.TierColor(int(tier)); ok {
		return c
	}
	if tier < 0 {
		tier = 0
	}
	c := fallbackPalette[int(tier)%len(fallbackPalette)]
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
