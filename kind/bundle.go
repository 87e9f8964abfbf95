package kind

import (
	"fmt"
	"reflect"
)

// flattener is satisfied by Bundle of any instantiation; fields of a
// required bundle that flatten are spliced in instead of stored whole.
type flattener interface {
	Components() []any
}

// Bundle is the atomic insertion unit for kind K: the kind marker, K's
// default components, and the caller-supplied required bundle. It is an
// ephemeral value — inserting it decomposes it into individual
// components.
type Bundle[K EntityKind[R], R any] struct {
	Required R
}

// New builds a Bundle for K from its required components.
func New[K EntityKind[R], R any](required R) Bundle[K, R] {
	return Bundle[K, R]{Required: required}
}

// Components decomposes the bundle: marker first, then defaults, then
// the required bundle's fields in declaration order. A required field
// that is itself a kind bundle is flattened recursively, so one spawn
// can give an entity several kinds.
func (b Bundle[K, R]) Components() []any {
	var tag K
	out := []any{marker[K]{}}
	out = append(out, tag.Defaults()...)
	return appendFields(out, b.Required)
}

// appendFields appends the component values held in a required bundle
// struct. The zero-field struct{} is the empty bundle.
func appendFields(out []any, required any) []any {
	v := reflect.ValueOf(required)
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("kind: required bundle %T is not a struct", required))
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanInterface() {
			panic(fmt.Sprintf("kind: required bundle %T has unexported field %s", required, v.Type().Field(i).Name))
		}
		c := f.Interface()
		if nested, ok := c.(flattener); ok {
			out = append(out, nested.Components()...)
			continue
		}
		out = append(out, c)
	}
	return out
}
