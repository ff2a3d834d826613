package ecs

import "github.com/milk9111/zompocalypse/ecs/component"

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	set := w.store(kind.ID(), false)
	if set == nil {
		return nil, false
	}
	value, ok := set.Get(e).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	set := w.store(kind.ID(), false)
	return set != nil && set.Has(e)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	set := w.store(kind.ID(), false)
	return set != nil && set.Remove(e)
}

// First returns the lowest-id entity carrying kind together with its value.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, kind)
	return e, v, ok
}

// ForEach visits every entity carrying kind in id order over a snapshot.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds in id order over a snapshot.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
