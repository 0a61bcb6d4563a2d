// Package host bridges a component tree into a host event loop.
//
// The engine never flushes synchronously: a mutation fires the tree's
// first-change listener, and the host schedules Tree.ExecRebuilds from it.
// Loop is a minimal cooperative event loop for hosts that don't already
// have one (tests, terminal apps); hosts with their own loop (a UI
// toolkit's main loop) wire OnFirstChange to it directly and don't need
// this package.
package host

import (
	"sync"
	"time"

	"github.com/go-reflow/reflow/pkg/errors"
)

// Tree is the slice of the engine's tree API the host bridge needs.
// *core.Tree[G] satisfies it for any G.
type Tree interface {
	// OnFirstChange registers a listener for the dirty set's
	// clean-to-dirty edge.
	OnFirstChange(fn func())
	// ExecRebuilds flushes the dirty set.
	ExecRebuilds()
}

// Loop is a single-goroutine cooperative event loop. Every dispatched
// callback runs on the goroutine driving Run or RunUntilIdle, which is the
// engine's one logical thread. The pending queue is unbounded so a
// callback may dispatch further work without deadlocking.
type Loop struct {
	mu      sync.Mutex
	pending []func()

	wake     chan struct{}
	quit     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Dispatch schedules a callback to run on the loop goroutine. Returns true
// if the callback was queued, false if the loop is stopped or the callback
// is nil. Safe to call from any goroutine, including from callbacks
// already running on the loop.
func (l *Loop) Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	select {
	case <-l.quit:
		return false
	default:
	}

	l.mu.Lock()
	l.pending = append(l.pending, callback)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Run processes callbacks until Stop is called. The calling goroutine
// becomes the loop's logical thread.
func (l *Loop) Run() {
	for {
		l.RunUntilIdle()
		select {
		case <-l.wake:
		case <-l.quit:
			return
		}
	}
}

// RunUntilIdle processes every pending callback, including callbacks
// queued while draining, then returns. Scripted hosts call it after each
// input event so mutations and their coalesced flush settle before the
// next event.
func (l *Loop) RunUntilIdle() {
	for {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.mu.Unlock()
			return
		}
		callback := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()

		runCallback(callback)
	}
}

// Stop makes Run return and Dispatch refuse further work. Callbacks
// already queued are not drained. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
}

// runCallback executes one callback with panic recovery, so a failing
// event handler doesn't kill the host loop. Access violations are usage
// bugs and re-panic untouched.
func runCallback(callback func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, usage := r.(*errors.AccessError); usage {
				panic(r)
			}
			errors.ReportPanic(&errors.PanicError{
				Op:         "host.Loop",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	callback()
}

// Attach wires a tree's first-change edge to the loop: each clean-to-dirty
// transition schedules exactly one coalesced flush. Any number of
// mutations within one dispatched event collapse into a single
// ExecRebuilds on the loop.
func Attach(loop *Loop, tree Tree) {
	tree.OnFirstChange(func() {
		loop.Dispatch(tree.ExecRebuilds)
	})
}
