package core

// Lens projects one component's slice out of the global model. A lens must
// be pure (no side effects beyond the projection), total for every model
// value reachable while its component is alive, and stable across rebuilds
// of the same component.
//
// Totality is the component author's contract: a parent that removes an
// entry from a backing collection must close the child handle projecting
// that entry first, in the same logical step. The engine cannot validate
// this; a lens dereferencing removed state is undefined behavior.
type Lens[G, M any] func(*G) *M

// Compose applies outer and then inner, producing the child's lens from
// the parent's. No validation is performed; the composed lens must remain
// total for as long as the child exists.
func Compose[G, A, B any](outer Lens[G, A], inner Lens[A, B]) Lens[G, B] {
	return func(g *G) *B {
		return inner(outer(g))
	}
}

// Self returns the identity lens, used for root components whose slice is
// the whole model.
func Self[G any]() Lens[G, G] {
	return func(g *G) *G { return g }
}
