package ecs

import "github.com/milk9111/hopper/ecs/component"

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind, value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, kind)
	return e, v, ok
}

// ForEach visits every entity with kind. fn may add or remove components on
// the visited entity; entities are snapshotted before iteration.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
