package core

// ComponentID identifies a component for the lifetime of the process.
// Ids are allocated from a monotonic counter and never reused, and a
// parent's id is always allocated before any of its children's, so
// ascending-id order places ancestors before descendants within a lineage.
type ComponentID uint64

// Renderer exposes a component's opaque render handle. The engine stores
// and returns the handle but never inspects it; its concrete type is
// whatever the host toolkit uses (a widget, a view node, a draw list).
type Renderer interface {
	// RenderHandle returns the root output handle for this component.
	// It must have no side effects.
	RenderHandle() any
}

// Component is the behavior contract implemented by every component type.
//
// G is the global model type shared by the whole tree and M is this
// component's slice of it. Implementations are pointer types; Rebuild
// mutates the component's own derived rendering state.
type Component[G, M any] interface {
	Renderer

	// Rebuild re-renders the component from its current model slice.
	// It is called once immediately after build and again on every flush
	// that includes this component. It must be idempotent and must
	// reconcile any child handles it owns against the current model
	// (creating handles for new entries, closing handles for removed
	// ones) rather than assuming incremental diffs.
	Rebuild(ctx Ctx[G, M])
}

// BuildFunc constructs a component. It may call CreateChild on the ctx to
// build descendants, and must not assume Rebuild has run yet.
type BuildFunc[G, M, P any, C Component[G, M]] func(ctx Ctx[G, M], params P) C

// Disposer is implemented by components that hold resources of their own,
// most commonly child handles. Closing a component's handle calls Dispose,
// which is where the component closes the handles it retains so
// destruction cascades down the ownership tree.
type Disposer interface {
	Dispose()
}
