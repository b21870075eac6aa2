package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
)

const (
	EventSpawn = "physics.spawn"
	EventDeath = "physics.death"
	EventMerge = "physics.merge"
)

// Death causes.
const (
	CauseMerged  = "merged"
	CauseRemoved = "removed"
	CauseInvalid = "invalid"
)

// SpawnRequest asks the game layer to add a body of Tier at Position.
type SpawnRequest struct {
	Tier     component.Tier
	Position cp.Vector
}

// Death reports a body that left the simulation. The entity is marked with
// component.Dead but still exists until its owner destroys it.
type Death struct {
	Entity   ecs.Entity
	Tier     component.Tier
	Position cp.Vector
	Cause    string
}

// Merge reports two Tier bodies that merged at Position.
type Merge struct {
	Tier     component.Tier
	Position cp.Vector
	A        ecs.Entity
	B        ecs.Entity
}

func DrainSpawnRequests(q *ecs.EventQueue) []SpawnRequest {
	return drain[SpawnRequest](q, EventSpawn)
}

func DrainDeaths(q *ecs.EventQueue) []Death {
	return drain[Death](q, EventDeath)
}

func DrainMerges(q *ecs.EventQueue) []Merge {
	return drain[Merge](q, EventMerge)
}

func drain[T any](q *ecs.EventQueue, typ string) []T {
	events := q.DrainType(typ)
	if len(events) == 0 {
		return nil
	}
	out := make([]T, 0, len(events))
	for _, evt := range events {
		if v, ok := evt.Data.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
