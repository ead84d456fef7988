package ecs

import "github.com/milk9111/hopper/ecs/component"

// World owns entities and their component storage.
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

// DestroyEntity removes every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
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

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for id := 1; id < len(w.entities.gen); id++ {
		if w.entities.alive[id] {
			out = append(out, makeEntity(entityID(id), w.entities.gen[id]))
		}
	}
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.count
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value for e, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// GetComponent returns the stored value for e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	return w.IsAlive(e) && w.store(kind.ID(), false).Has(e)
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	return w.store(kind.ID(), false).Remove(e)
}

// Query returns the entities that have every listed kind. The smallest store
// drives the iteration.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any entity that has kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := w.store(kind.ID(), false).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
