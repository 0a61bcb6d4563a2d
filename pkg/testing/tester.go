// Package testing provides a harness for testing component trees without a
// host event loop: a tester that pumps flushes by hand, and a probe
// component that records how the engine treats it.
package testing

import (
	"errors"
	"testing"

	"github.com/go-reflow/reflow/pkg/core"
)

// ErrSettleTimeout is returned when Settle exhausts its flush budget.
var ErrSettleTimeout = errors.New("Settle exhausted its flush budget: tree did not settle")

// TreeTester wraps a component tree and plays the host: it counts
// first-change notifications and flushes on demand instead of through an
// event loop.
type TreeTester[G any] struct {
	// Tree is the tree under test; create components on it directly.
	Tree *core.Tree[G]

	notifications int
}

// NewTreeTester creates a tester owning a fresh tree over model.
func NewTreeTester[G any](t *testing.T, model G) *TreeTester[G] {
	t.Helper()
	tt := &TreeTester[G]{Tree: core.NewTree(model)}
	tt.Tree.OnFirstChange(func() { tt.notifications++ })
	return tt
}

// Pump runs exactly one flush, like one host event-loop turn.
func (tt *TreeTester[G]) Pump() {
	tt.Tree.ExecRebuilds()
}

// Settle pumps until the tree has no dirty marks, running at most
// maxFlushes flushes. Rebuild hooks that mutate state defer their marks to
// the next flush, so a cascade settles over several pumps. Returns
// ErrSettleTimeout if marks remain after the budget.
func (tt *TreeTester[G]) Settle(maxFlushes int) error {
	for i := 0; i < maxFlushes; i++ {
		if !tt.Tree.NeedsRebuild() {
			return nil
		}
		tt.Tree.ExecRebuilds()
	}
	if tt.Tree.NeedsRebuild() {
		return ErrSettleTimeout
	}
	return nil
}

// Notifications returns how many times the tree's clean-to-dirty edge has
// fired since the tester was created.
func (tt *TreeTester[G]) Notifications() int {
	return tt.notifications
}
