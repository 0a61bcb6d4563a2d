package core

import (
	"testing"

	reflowerrors "github.com/go-reflow/reflow/pkg/errors"
)

func TestWithModel_ReadsThroughLens(t *testing.T) {
	f := newFixture(t, 2)

	var name string
	f.taskCtx[2].WithModel(func(tk *testTask) { name = tk.Name })
	if name != "task 2" {
		t.Errorf("expected lens to project task 2, got %q", name)
	}
	if f.fires != 0 {
		t.Error("expected WithModel not to notify listeners")
	}
	if f.tree.NeedsRebuild() {
		t.Error("expected WithModel not to mark dirty")
	}
}

func TestWithModelMut_MutatesSharedState(t *testing.T) {
	f := newFixture(t, 2)

	f.taskCtx[1].WithModelMut(func(tk *testTask) { tk.Name = "renamed" })

	// The mutation lands in the one shared model, visible to every lens.
	var got string
	f.listCtx.WithModel(func(ts *testTasks) { got = ts.ByID[1].Name })
	if got != "renamed" {
		t.Errorf("expected the mutation to be visible through the parent lens, got %q", got)
	}
}

func TestWithModelMut_MarksDirtyBeforeCallback(t *testing.T) {
	f := newFixture(t, 1)

	dirtyInside := false
	f.taskCtx[1].WithModelMut(func(tk *testTask) {
		dirtyInside = f.tree.NeedsRebuild()
	})
	if !dirtyInside {
		t.Error("expected the component to be marked dirty before the callback runs")
	}
}

func TestWithModel_ReentrantAccessPanics(t *testing.T) {
	f := newFixture(t, 1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected nested WithModel to panic")
		}
		err, ok := r.(*reflowerrors.AccessError)
		if !ok {
			t.Fatalf("expected *errors.AccessError, got %T", r)
		}
		if err.Holder == "" || err.Op == "" {
			t.Errorf("expected both holder and op to be recorded: %v", err)
		}
	}()

	f.taskCtx[1].WithModel(func(*testTask) {
		f.listCtx.WithModel(func(*testTasks) {})
	})
}

func TestWithModelMut_ReentrantAccessPanics(t *testing.T) {
	f := newFixture(t, 1)

	defer func() {
		if _, ok := recover().(*reflowerrors.AccessError); !ok {
			t.Fatal("expected nested WithModelMut to panic with *errors.AccessError")
		}
	}()

	f.taskCtx[1].WithModel(func(*testTask) {
		f.taskCtx[1].WithModelMut(func(*testTask) {})
	})
}

func TestGate_ReleasedAfterPanic(t *testing.T) {
	f := newFixture(t, 1)

	func() {
		defer func() { recover() }()
		f.taskCtx[1].WithModel(func(*testTask) { panic("hook failure") })
	}()

	// The gate must not stay held after a panicking callback.
	var name string
	f.taskCtx[1].WithModel(func(tk *testTask) { name = tk.Name })
	if name != "task 1" {
		t.Errorf("expected access to work after a recovered panic, got %q", name)
	}
}

func TestCtx_ID(t *testing.T) {
	f := newFixture(t, 1)
	if f.taskCtx[1].ID() != f.taskH[1].ID() {
		t.Error("expected ctx and handle to agree on the component id")
	}
}

func TestWithModel_AllowedDuringRebuild(t *testing.T) {
	f := newFixture(t, 1)

	// Rebuild hooks read their slice through the ctx; the gate is not held
	// across the flush, only across individual accesses.
	f.taskH[1].Component().onRebuild = func(ctx Ctx[testApp, testTask]) {
		ctx.WithModel(func(*testTask) {})
	}
	f.markTaskDone(1)
	f.tree.ExecRebuilds()

	if !f.rec.saw("T1") {
		t.Error("expected the rebuild to complete")
	}
}
