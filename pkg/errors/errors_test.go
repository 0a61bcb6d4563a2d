package errors

import (
	"errors"
	"strings"
	"testing"
)

// captureHandler records everything reported to it.
type captureHandler struct {
	errs     []*ReflowError
	rebuilds []*RebuildError
	panics   []*PanicError
}

func (h *captureHandler) HandleError(err *ReflowError)          { h.errs = append(h.errs, err) }
func (h *captureHandler) HandleRebuildError(err *RebuildError)  { h.rebuilds = append(h.rebuilds, err) }
func (h *captureHandler) HandlePanic(err *PanicError)           { h.panics = append(h.panics, err) }

func TestReflowError_Error(t *testing.T) {
	err := &ReflowError{
		Op:   "core.ExecRebuilds",
		Kind: KindRebuild,
		Err:  errors.New("boom"),
	}
	got := err.Error()
	if !strings.Contains(got, "core.ExecRebuilds") || !strings.Contains(got, "rebuild") || !strings.Contains(got, "boom") {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestReflowError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ReflowError{Op: "op", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match the wrapped error")
	}
}

func TestAccessError_Error(t *testing.T) {
	err := &AccessError{Op: "core.WithModelMut", Holder: "core.WithModel"}
	got := err.Error()
	if !strings.Contains(got, "reentrant") {
		t.Errorf("expected reentrant in error string, got %q", got)
	}
	if !strings.Contains(got, "core.WithModelMut") || !strings.Contains(got, "core.WithModel") {
		t.Errorf("expected both operations in error string, got %q", got)
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUsage, "usage"},
		{KindRebuild, "rebuild"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestReport_SetsTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&ReflowError{Op: "op", Kind: KindConfig, Err: errors.New("bad")})

	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("expected Report to fill in Timestamp")
	}
}

func TestReportRebuildError(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	ReportRebuildError(&RebuildError{Component: 7, Recovered: "boom"})
	ReportRebuildError(nil)

	if len(handler.rebuilds) != 1 {
		t.Fatalf("expected 1 rebuild error, got %d", len(handler.rebuilds))
	}
	if handler.rebuilds[0].Component != 7 {
		t.Errorf("expected component 7, got %d", handler.rebuilds[0].Component)
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("recovered panic")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "test.op" {
		t.Errorf("expected op test.op, got %q", p.Op)
	}
	if p.Value != "recovered panic" {
		t.Errorf("expected panic value to be captured, got %v", p.Value)
	}
	if p.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
