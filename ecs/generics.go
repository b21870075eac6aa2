package ecs

import "github.com/milk9111/fruitmerge/ecs/component"

// Add attaches or replaces the component of type T on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, kind.ID(), value)
}

// Remove detaches the component of type T from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.removeComponent(e, kind.ID())
}

// Has reports whether e carries a component of type T.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := w.getComponent(e, kind.ID())
	return ok
}

// Get returns a pointer to e's component of type T. Mutations through the
// pointer are visible to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.getComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every alive entity carrying a component of kind.
// Entities are visited in slot order; fn may add or remove components and
// destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		v, ok := w.getComponent(e, kind.ID())
		if !ok {
			continue
		}
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}

// ForEach2 is ForEach over the intersection of two component kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		va, okA := w.getComponent(e, ka.ID())
		vb, okB := w.getComponent(e, kb.ID())
		if !okA || !okB {
			continue
		}
		a, okA := va.(*A)
		b, okB := vb.(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}
