package testing

import "github.com/go-reflow/reflow/pkg/core"

// Probe is a component that records how the engine drives it: a rebuild
// counter and a copy of its model slice taken on every rebuild. Mount it
// anywhere in a tree under test to assert which flushes reached it and
// what state it saw.
type Probe[G, M any] struct {
	rebuilds int
	snapshot M
}

// NewProbe returns a build function for a probe, for use with
// core.NewComponent or core.CreateChild:
//
//	h := core.CreateChild(listCtx, taskLens(id), reflowtest.NewProbe[AppState, Task](), struct{}{})
//	h.Component().Rebuilds()
func NewProbe[G, M any]() core.BuildFunc[G, M, struct{}, *Probe[G, M]] {
	return func(core.Ctx[G, M], struct{}) *Probe[G, M] {
		return &Probe[G, M]{}
	}
}

// RenderHandle returns the probe itself.
func (p *Probe[G, M]) RenderHandle() any { return p }

// Rebuild counts the visit and snapshots the model slice.
func (p *Probe[G, M]) Rebuild(ctx core.Ctx[G, M]) {
	p.rebuilds++
	ctx.WithModel(func(m *M) { p.snapshot = *m })
}

// Rebuilds returns how many times the engine has rebuilt the probe,
// including the render at creation.
func (p *Probe[G, M]) Rebuilds() int {
	return p.rebuilds
}

// ResetRebuilds zeroes the counter, typically right after tree setup so
// assertions exclude creation renders.
func (p *Probe[G, M]) ResetRebuilds() {
	p.rebuilds = 0
}

// Snapshot returns the model slice copied during the latest rebuild.
func (p *Probe[G, M]) Snapshot() M {
	return p.snapshot
}
