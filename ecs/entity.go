package ecs

import (
	"reflect"
	"sync"
)

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value — no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
// Types are allocated on first use from a process-wide registry keyed by
// the component's Go type, so callers never assign them by hand.
type ComponentType uint32

var (
	regMu    sync.Mutex
	typeIDs  = make(map[reflect.Type]ComponentType)
	nextType ComponentType = 1
)

// TypeFor returns the ComponentType for T, registering it on first use.
func TypeFor[T any]() ComponentType {
	var zero T
	return typeOf(reflect.TypeOf(zero))
}

// TypeOf returns the ComponentType for c's dynamic type, registering it
// on first use.
func TypeOf(c any) ComponentType {
	return typeOf(reflect.TypeOf(c))
}

func typeOf(t reflect.Type) ComponentType {
	regMu.Lock()
	defer regMu.Unlock()
	if id, ok := typeIDs[t]; ok {
		return id
	}
	id := nextType
	nextType++
	typeIDs[t] = id
	return id
}
