package ecs

import (
	"slices"

	"github.com/milk9111/zompocalypse/ecs/component"
)

// KindID is satisfied by every component.ComponentKind regardless of its
// type parameter, so untyped queries can mix kinds.
type KindID interface {
	ID() component.ComponentID
}

// World owns entities, their components and the event queue.
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
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in ascending id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.entities.gens))
	for i, gen := range w.entities.gens {
		if w.entities.alive[i] {
			out = append(out, makeEntity(entityID(i+1), gen))
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns live entities carrying every listed kind, ordered by id.
// The result is a snapshot; systems may create or destroy entities while
// walking it.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		matched := true
		for _, other := range sets[1:] {
			if !other.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entity) int { return int(a.id()) - int(b.id()) })
	return out
}

// First returns the lowest-id entity carrying kind.
func (w *World) First(kind KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	set := w.stores[id]
	if set == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
