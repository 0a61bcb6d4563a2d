// Package errors provides structured error handling for the Reflow engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUsage indicates a violation of an engine usage contract, such as
	// reentrant access to the shared model. Usage violations are fatal and
	// surface as panics, never as reported errors.
	KindUsage
	// KindRebuild indicates a failure inside a component's build or
	// rebuild hook.
	KindRebuild
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindRebuild:
		return "rebuild"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ReflowError represents a structured error in the Reflow engine.
type ReflowError struct {
	// Op is the operation that failed (e.g., "core.ExecRebuilds").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ReflowError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ReflowError) Unwrap() error {
	return e.Err
}

// AccessError reports reentrant access to the shared model: an attempt to
// enter WithModel or WithModelMut while another access on the same tree is
// still outstanding. It is a caller bug, raised as a panic at the point of
// the nested access rather than deadlocking or corrupting reads.
type AccessError struct {
	// Op is the operation attempting the nested access.
	Op string
	// Holder is the operation that already holds access.
	Holder string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("reentrant model access: %s called while %s holds exclusive access", e.Op, e.Holder)
}

// RebuildError represents a recovered panic from a component's build or
// rebuild hook.
type RebuildError struct {
	// Component is the id of the component whose hook failed.
	Component uint64
	// Recovered is the value passed to panic().
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *RebuildError) Error() string {
	return fmt.Sprintf("rebuild of component %d panicked: %v", e.Component, e.Recovered)
}

// PanicError represents a recovered panic outside the rebuild path.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Loop.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler processes errors reported by the engine. The host installs
// a handler with SetHandler to route hook failures into its own reporting.
type ErrorHandler interface {
	// HandleError processes a general engine error.
	HandleError(err *ReflowError)
	// HandleRebuildError processes a recovered build/rebuild hook panic.
	HandleRebuildError(err *RebuildError)
	// HandlePanic processes a recovered panic outside the rebuild path.
	HandlePanic(err *PanicError)
}
