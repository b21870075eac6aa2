package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

const defaultBurstFrames = 18

// NewBurst spawns the fading ring left behind by a popped fruit.
func NewBurst(w *ecs.World, pos cp.Vector, radius float64, c color.NRGBA, frames int) (ecs.Entity, error) {
	if frames <= 0 {
		frames = defaultBurstFrames
	}
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Scale: 1}); err != nil {
		return 0, fmt.Errorf("burst: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BurstComponent.Kind(), &component.Burst{Radius: radius, Color: c}); err != nil {
		return 0, fmt.Errorf("burst: add burst: %w", err)
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames, Total: frames}); err != nil {
		return 0, fmt.Errorf("burst: add ttl: %w", err)
	}
	return e, nil
}
