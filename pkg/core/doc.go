// Package core provides the reactive component tree engine.
//
// This package defines the foundational types for building component trees
// over one shared application model: Component, Tree, Ctx, Handle, and Lens.
// Every component is a projection of the global model — a lens addresses the
// component's own slice of it — and mutating that slice marks the component
// dirty so the next flush rebuilds it together with its ancestors, leaving
// clean subtrees untouched.
//
// # Core Types
//
// Tree owns the global model, the component registry, and the dirty set.
// It is created once per application with NewTree.
//
// Component is the behavior contract a component type implements: a Rebuild
// hook that re-renders from the current model slice, and a RenderHandle
// accessor exposing an opaque output handle (typically a toolkit widget)
// that the engine stores but never inspects. Component implementations are
// pointer types.
//
// Ctx is the capability object passed to build and rebuild hooks. It reads
// and mutates the component's model slice through the composed lens, spawns
// child components, and marks the component dirty on mutation.
//
// Handle is the exclusively-owning reference to a live component. Closing
// the handle is the only destruction path; the registry itself holds only
// non-owning entries.
//
// # Data Flow
//
// A host event mutates a slice via Ctx.WithModelMut, which marks the
// component dirty. On the dirty set's clean-to-dirty transition the tree's
// first-change listeners fire exactly once; the host uses one to schedule
// Tree.ExecRebuilds on its event loop, so any number of mutations within
// one logical user action coalesce into a single flush:
//
//	tree := core.NewTree(AppState{})
//	tree.OnFirstChange(func() {
//	    loop.Dispatch(tree.ExecRebuilds)
//	})
//
// ExecRebuilds climbs every dirty component to its ancestors, rebuilds the
// ancestor-closed set with each ancestor no later than its descendants, and
// clears those marks.
//
// # Threading
//
// The engine is single-threaded and cooperative: every call into a Tree and
// its contexts must happen on one logical thread, usually the host's event
// loop. Access to the shared model is exclusive and non-reentrant; a nested
// WithModel or WithModelMut on the same tree panics with *errors.AccessError.
//
// # Constructor Conventions
//
// Components are created with NewComponent (roots) and CreateChild (from a
// parent's Ctx). Both call the supplied build function and then Rebuild
// immediately, so a freshly created component is never observed
// un-rendered. These are free functions rather than methods because Go
// methods cannot introduce type parameters.
package core
