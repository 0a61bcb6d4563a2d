package core

import (
	"slices"
	"time"

	"github.com/go-reflow/reflow/pkg/errors"
)

// gate enforces exclusive, non-reentrant access to the shared model. The
// engine is single-threaded, so a plain flag suffices; a violation is a
// caller bug and fails fast instead of deadlocking.
type gate struct {
	holder string
}

func (g *gate) enter(op string) {
	if g.holder != "" {
		panic(&errors.AccessError{
			Op:         op,
			Holder:     g.holder,
			StackTrace: errors.CaptureStack(),
		})
	}
	g.holder = op
}

func (g *gate) leave() {
	g.holder = ""
}

// shared is the state every Ctx of one tree points at: the single global
// model instance, the registry, the access gate, and the first-change
// listener list. There is exactly one shared per Tree.
type shared[G any] struct {
	model     G
	gate      gate
	table     *table
	changeCBs []func()
}

func (s *shared[G]) notifyFirstChange() {
	for _, cb := range s.changeCBs {
		cb()
	}
}

// Tree is the root of a component tree. It owns the global model and the
// component registry and implements the coalesced rebuild flush.
type Tree[G any] struct {
	shared *shared[G]
}

// NewTree creates a tree that takes ownership of the given global model.
// The registry, dirty set, and listener list start empty.
func NewTree[G any](model G) *Tree[G] {
	return &Tree[G]{
		shared: &shared[G]{
			model: model,
			table: newTable(),
		},
	}
}

// OnFirstChange registers a listener invoked on every clean-to-dirty
// transition of the dirty set — exactly once per mutation window, however
// many components are marked before the next flush. The host uses it to
// bridge into its event loop, scheduling a callback that later calls
// ExecRebuilds. Multiple listeners may be registered; all fire on every
// edge, in registration order.
func (t *Tree[G]) OnFirstChange(fn func()) {
	t.shared.changeCBs = append(t.shared.changeCBs, fn)
}

// NeedsRebuild reports whether any component is marked dirty.
func (t *Tree[G]) NeedsRebuild() bool {
	return !t.shared.table.isClean()
}

// ExecRebuilds rebuilds every dirty component and its ancestors, top down.
//
// The dirty set is first closed over parents: repeatedly union in the
// parent ids of every known-dirty component (skipping ids whose node no
// longer upgrades) until a fixed point. Ancestors must be included even
// when their own state didn't change, because an ancestor's rebuild may
// restructure its children. The closed set is then visited in ascending id
// order — ids are allocated parent-before-child along any lineage, so
// every ancestor rebuilds no later than its descendants; order across
// unrelated lineages is an implementation detail.
//
// The dirty set is taken once, at the start: marks created by rebuild
// hooks during the flush land in a fresh window, fire first-change
// listeners as usual, and become part of the next flush — they are never
// re-examined by this one.
func (t *Tree[G]) ExecRebuilds() {
	tbl := t.shared.table

	newDirty := tbl.dirty
	tbl.dirty = make(map[ComponentID]struct{})

	allDirty := make(map[ComponentID]struct{}, len(newDirty))
	for len(newDirty) > 0 {
		parents := make(map[ComponentID]struct{})
		for id := range newDirty {
			if n := tbl.lookup(id); n != nil && n.parentID != 0 {
				parents[n.parentID] = struct{}{}
			}
		}
		for id := range newDirty {
			allDirty[id] = struct{}{}
		}
		newDirty = make(map[ComponentID]struct{})
		for id := range parents {
			if _, seen := allDirty[id]; !seen {
				newDirty[id] = struct{}{}
			}
		}
	}

	ids := make([]ComponentID, 0, len(allDirty))
	for id := range allDirty {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if n := tbl.lookup(id); n != nil {
			safeRebuild(n)
		}
	}
}

// safeRebuild runs a node's rebuild hook with panic recovery. Recovered
// hook panics are reported to the global error handler and the flush
// continues; access violations are usage bugs and re-panic untouched.
func safeRebuild(n *node) {
	defer func() {
		if r := recover(); r != nil {
			if _, usage := r.(*errors.AccessError); usage {
				panic(r)
			}
			errors.ReportRebuildError(&errors.RebuildError{
				Component:  uint64(n.id),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	n.rebuild()
}

// NewComponent creates a root component on the tree, with project as its
// lens from the global model. Semantics otherwise match CreateChild: build
// runs, Rebuild runs immediately after, the node registers, and the caller
// owns the returned handle.
func NewComponent[G, M, P any, C Component[G, M]](t *Tree[G], project Lens[G, M], build BuildFunc[G, M, P, C], params P) *Handle[C] {
	return mount(t.shared, 0, project, build, params)
}

// mount is the one creation path for components: reserve an id, build,
// render once, register the non-owning node, hand ownership to the caller.
func mount[G, M, P any, C Component[G, M]](sh *shared[G], parentID ComponentID, lens Lens[G, M], build BuildFunc[G, M, P, C], params P) *Handle[C] {
	id := sh.table.reserveID()
	ctx := Ctx[G, M]{
		id:       id,
		parentID: parentID,
		shared:   sh,
		lens:     lens,
	}

	component := build(ctx, params)
	component.Rebuild(ctx)

	n := &node{
		id:       id,
		parentID: parentID,
		rebuild:  func() { component.Rebuild(ctx) },
	}
	sh.table.insert(id, n)

	return &Handle[C]{
		component: component,
		node:      n,
		table:     sh.table,
	}
}
