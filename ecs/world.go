package ecs

import (
	"github.com/milk9111/fruitmerge/ecs/component"
)

// World owns entities, component storage and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Entities returns all alive entities in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(id, true).Set(e, v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(id, false)
	if s == nil || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Remove(e)
}

// HasComponent reports whether e carries a component of the given kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.getComponent(e, kind.ID())
	return ok
}
