package physics

import "github.com/pkg/errors"

// ArgumentError reports an InvalidArgument condition: t <= 0 passed to
// Evolve, a RaySplitter's OIdx not a subset of Affect, two splitters
// sharing an obstacle, or an obstacle index out of range.
type ArgumentError struct {
	cause error
}

func (e *ArgumentError) Error() string { return e.cause.Error() }
func (e *ArgumentError) Unwrap() error { return e.cause }

func newArgumentError(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{cause: errors.Errorf(format, args...)}
}

// UnsupportedObstacleError reports a RaySplitter referencing an
// obstacle that does not carry a pflag.
type UnsupportedObstacleError struct {
	cause error
}

func (e *UnsupportedObstacleError) Error() string { return e.cause.Error() }
func (e *UnsupportedObstacleError) Unwrap() error { return e.cause }

func newUnsupportedObstacleError(format string, args ...interface{}) *UnsupportedObstacleError {
	return &UnsupportedObstacleError{cause: errors.Errorf(format, args...)}
}

// WarningKind distinguishes the two non-fatal NumericWarning
// conditions the evolution driver can emit.
type WarningKind int

const (
	// WarningPinned marks a magnetic particle whose Larmor orbit never
	// met a non-periodic obstacle within one cyclotron period.
	WarningPinned WarningKind = iota
	// WarningEscape marks a particle whose next collision time is +Inf.
	WarningEscape
)

func (k WarningKind) String() string {
	switch k {
	case WarningPinned:
		return "pinned"
	case WarningEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Warning is the non-fatal diagnostic spec §7 allows the evolution
// driver to emit when Config.Warnings is set. It is never returned as
// an error: pinned/escape conditions terminate evolution cleanly.
type Warning struct {
	Kind           WarningKind
	ObstacleIndex  int
	AccumulatedSec float64
}

func (w Warning) Error() string {
	return errors.Errorf("%s: obstacle=%d accumulated=%g", w.Kind, w.ObstacleIndex, w.AccumulatedSec).Error()
}
