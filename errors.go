package contour

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition failures, checked before a trace
// mutates any session state.
var (
	// ErrDimensionTooSmall is reported when imax or jmax is less than 2,
	// wrapped in a *DimensionError that names the axis.
	ErrDimensionTooSmall = errors.New("contour: imax and jmax must each be at least 2")

	// ErrArrayLengthMismatch is returned when x, y, z, or mask do not have
	// length imax*jmax.
	ErrArrayLengthMismatch = errors.New("contour: x, y, z, and mask must have length imax*jmax")

	// ErrNonFiniteLevel is returned when a requested contour level is NaN
	// or infinite.
	ErrNonFiniteLevel = errors.New("contour: levels must be finite")

	// ErrLevelOrder is returned when two levels are supplied with z1 < z0.
	ErrLevelOrder = errors.New("contour: z1 must be >= z0")

	// ErrSessionClosed is returned by Trace after Close has been called.
	ErrSessionClosed = errors.New("contour: session is closed")
)

// DimensionError reports a precondition failure tied to a specific mesh
// dimension, so callers can report which axis was at fault.
type DimensionError struct {
	Name string // "imax" or "jmax"
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("contour: %s = %d, want >= 2", e.Name, e.Got)
}

// Unwrap lets errors.Is match a DimensionError against ErrDimensionTooSmall.
func (e *DimensionError) Unwrap() error { return ErrDimensionTooSmall }

// InvariantError reports a violation of the tracer's own bookkeeping —
// pass 2 disagreeing with pass 1's sizing, or the reorder step finding
// more segments than the point budget allows. These indicate a defect in
// the tracer itself, never bad input, and are never retried.
type InvariantError struct {
	Op  string // "trace" or "reorder"
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("contour: invariant violated in %s: %s", e.Op, e.Msg)
}
