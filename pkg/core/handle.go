package core

// Handle is the exclusively-owning reference to one live component. The
// caller that created the component (its parent, or the host for roots)
// retains the handle for as long as the component should exist; Close is
// the only destruction path. The registry holds only a non-owning entry,
// so a closed component simply stops upgrading during lookups.
type Handle[C Renderer] struct {
	component C
	node      *node
	table     *table
}

// ID returns the component's id.
func (h *Handle[C]) ID() ComponentID {
	return h.node.id
}

// Component returns the typed component instance.
func (h *Handle[C]) Component() C {
	return h.component
}

// RenderHandle returns the component's opaque render handle.
func (h *Handle[C]) RenderHandle() any {
	return h.component.RenderHandle()
}

// Rebuild rebuilds the component immediately. You shouldn't need to call
// this manually if you've mutated the component's state through its Ctx;
// the next flush covers it.
func (h *Handle[C]) Rebuild() {
	if h.node.dead {
		return
	}
	h.node.rebuild()
}

// Close destroys the component: it deregisters the node, drops any pending
// dirty mark, and — if the component implements Disposer — lets it close
// the child handles it retains, cascading destruction down the ownership
// tree. Idempotent.
//
// A parent that removes a child's backing state from the model must Close
// the child's handle in the same logical step, before the next flush, so
// the child's lens is never applied to removed state.
func (h *Handle[C]) Close() {
	if h.node.dead {
		return
	}
	h.node.dead = true
	h.table.destroy(h.node.id)
	if d, ok := any(h.component).(Disposer); ok {
		d.Dispose()
	}
}
