package kind

import "kindly/ecs"

// Filter returns the component type of K's marker. Composing it into
// World.Query expresses the "has kind K" constraint alongside any other
// component requirements.
func Filter[K Tag]() ecs.ComponentType {
	return ecs.TypeFor[marker[K]]()
}

// Query returns a branded handle for every alive entity that has kind K
// and every extra component type. The matched set is the intersection
// of marker presence with the extra constraints, so a returned handle
// never points at an entity missing the marker.
func Query[K Tag](w *ecs.World, extra ...ecs.ComponentType) []Handle[K] {
	types := make([]ecs.ComponentType, 0, len(extra)+1)
	types = append(types, Filter[K]())
	types = append(types, extra...)
	ids := w.Query(types...)
	handles := make([]Handle[K], len(ids))
	for i, id := range ids {
		handles[i] = handleOf[K](id)
	}
	return handles
}
