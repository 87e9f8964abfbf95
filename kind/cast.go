package kind

import "kindly/ecs"

// TryCast checks whether the entity has kind K and, if so, returns its
// branded handle. A miss means only "not this kind" — it is the one
// runtime-fallible operation in the package and never an error. The
// check is a single marker lookup with no side effects.
func TryCast[K Tag](w *ecs.World, id ecs.EntityID) (Handle[K], bool) {
	if !w.Has(id, Filter[K]()) {
		return Handle[K]{}, false
	}
	return handleOf[K](id), true
}
