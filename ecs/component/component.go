// Package component holds the simulation's plain data components and the
// typed handles the world uses to store them.
package component

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors returned by the world's generic accessors.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID numbers a component store. Zero is never assigned.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind ties a store id to the Go type kept in it, so
// ecs.Get(w, e, HealthComponent.Kind()) returns *Health without a cast.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates the next store id for T.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid reports whether the kind came from NewComponentKind.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the package-level registration for one component type,
// declared once per type (ActorComponent, HealthComponent, ...).
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
