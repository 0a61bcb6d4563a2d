package core

// Ctx is the capability object passed to a component's build and rebuild
// hooks. It carries the component's identity and composed lens and shares
// the tree's internals, so copying it is cheap; hooks and event closures
// capture it by value.
type Ctx[G, M any] struct {
	id       ComponentID
	parentID ComponentID // 0 = root

	shared *shared[G]
	lens   Lens[G, M]
}

// ID returns the id of the component this ctx belongs to.
func (c Ctx[G, M]) ID() ComponentID {
	return c.id
}

// WithModel acquires exclusive access to the global model, applies this
// component's lens, and invokes f with the component's slice. The slice is
// passed by pointer for lens fidelity but must be treated as read-only;
// use WithModelMut for mutation so the component is marked dirty.
//
// Results come out by closure capture:
//
//	var name string
//	ctx.WithModel(func(t *Task) { name = t.Name })
//
// Calling WithModel while another access on the same tree is outstanding
// panics with *errors.AccessError.
func (c Ctx[G, M]) WithModel(f func(m *M)) {
	c.shared.gate.enter("core.Ctx.WithModel")
	defer c.shared.gate.leave()
	f(c.lens(&c.shared.model))
}

// WithModelMut marks this component dirty and invokes f with mutable
// access to its model slice. If the dirty set was empty immediately before
// the call, every first-change listener fires — in registration order,
// after access is released — so the host can schedule a flush. Subsequent
// mutations before that flush mark silently; listeners fire once per
// clean-to-dirty window.
//
// The same non-reentrancy contract as WithModel applies.
func (c Ctx[G, M]) WithModelMut(f func(m *M)) {
	wasClean := c.shared.table.isClean()
	c.shared.table.markDirty(c.id)

	func() {
		c.shared.gate.enter("core.Ctx.WithModelMut")
		defer c.shared.gate.leave()
		f(c.lens(&c.shared.model))
	}()

	if wasClean {
		c.shared.notifyFirstChange()
	}
}

// CreateChild builds a component that is a child of the component owning
// parent. The child's lens is the parent's lens composed with project, its
// build function runs first and its Rebuild immediately after, and the new
// node registers under a fresh id with the parent's id as its climb link.
// The returned handle is owning: the caller keeps it (typically inside its
// own component struct) for as long as the child should exist, and closes
// it to destroy the child.
func CreateChild[G, A, B, P any, C Component[G, B]](parent Ctx[G, A], project Lens[A, B], build BuildFunc[G, B, P, C], params P) *Handle[C] {
	return mount(parent.shared, parent.id, Compose(parent.lens, project), build, params)
}
