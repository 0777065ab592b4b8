// Copyright 2025 gradtape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import "fmt"

// Kind classifies the way an operation on the tape engine can fail.
type Kind int

const (
	// DimensionMismatch means two operands disagree on shape under Check
	// or a shape-aware datum's own Add/Sub/Mul.
	DimensionMismatch Kind = iota

	// UnsupportedOperation means the requested operation has no meaning
	// for the current algebra (e.g. differentiating through a datum that
	// does not implement the required capability).
	UnsupportedOperation

	// MissingID means a gradient id was required from a value that carries
	// none, such as a constant. Value.ID does not return this error: it
	// reports the same case with ok=false.
	MissingID

	// TapeSpent means a backward pass reached a tape node whose closure was
	// already consumed by an earlier EvaluateGradientsOnce.
	TapeSpent

	// Internal marks a violated invariant of the engine itself, not a
	// caller mistake.
	Internal
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case DimensionMismatch:
		return "DimensionMismatch"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case MissingID:
		return "MissingID"
	case TapeSpent:
		return "TapeSpent"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across every package boundary of
// gradtape. It never panics its way out; every fallible operation returns
// one of these instead.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "Add", "Graph.Mul",
	// "Value.ID".
	Op string
	// Msg is a human-readable detail specific to this failure.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gradtape: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("gradtape: %s: %s", e.Op, e.Msg)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As see through it.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &algebra.Error{Kind: algebra.DimensionMismatch}) style
// checks (or pass an error from the helper constructors below), or compare
// kinds directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// DimMismatch builds a DimensionMismatch error reporting the two disagreeing
// shapes.
func DimMismatch(op string, a, b Dims) *Error {
	return &Error{
		Kind: DimensionMismatch,
		Op:   op,
		Msg:  fmt.Sprintf("dimension mismatch: %s vs %s", a, b),
	}
}

// Unsupported builds an UnsupportedOperation error.
func Unsupported(op, msg string) *Error {
	return &Error{Kind: UnsupportedOperation, Op: op, Msg: msg}
}

// NoID builds a MissingID error for a value that carries no gradient id.
func NoID(op string) *Error {
	return &Error{Kind: MissingID, Op: op, Msg: "value carries no gradient id"}
}

// Spent builds a TapeSpent error naming the exhausted node.
func Spent(op string, id int64) *Error {
	return &Error{Kind: TapeSpent, Op: op, Msg: fmt.Sprintf("node %d already consumed", id)}
}

// Wrap builds an Internal error wrapping cause.
func Wrap(op, msg string, cause error) *Error {
	return &Error{Kind: Internal, Op: op, Msg: msg, Err: cause}
}
