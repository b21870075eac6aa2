package entity

import (
	"fmt"

	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// NewDropper creates the player-controlled dropper centered over the arena.
func NewDropper(w *ecs.World, arena physics.Arena, drop prefabs.DropSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	y := drop.Y
	if y == 0 {
		y = arena.Top
	}
	mid := arena.Left + arena.Width()/2
	if err := ecs.Add(w, e, component.DropperComponent.Kind(), &component.Dropper{X: mid, Y: y}); err != nil {
		return 0, fmt.Errorf("dropper: add dropper: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{AimX: mid}); err != nil {
		return 0, fmt.Errorf("dropper: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("dropper: add score: %w", err)
	}
	return e, nil
}
