package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrSessionOverlap is returned by the session repository when the storage-level
// exclusion constraint rejects a write that raced past the scheduler's fast-path
// check. The scheduler translates it into a HallConflict scheduling error so the
// caller sees the same rejection either way.
var ErrSessionOverlap = errors.New("session overlaps an existing booking in the same hall")

// ErrResourceInUse is returned when a catalog entity cannot be deleted because
// existing sessions still reference it.
var ErrResourceInUse = errors.New("resource is referenced by existing sessions")

// ErrInvalidInput is returned when a catalog write violates an entity invariant
// (e.g. disabled places exceeding capacity, unresolvable city reference).
var ErrInvalidInput = errors.New("invalid input")

// SchedulingErrorKind identifies which validation rule rejected a session proposal.
type SchedulingErrorKind string

const (
	SchedulingUnknownResource SchedulingErrorKind = "unknown_resource"
	SchedulingInvalidInterval SchedulingErrorKind = "invalid_interval"
	SchedulingHallConflict    SchedulingErrorKind = "hall_conflict"
)

// SchedulingError is a typed rejection from the scheduler. It is returned as a
// value, never panicked, so batch callers can report outcomes precisely. For
// hall conflicts, ConflictIDs carries the id(s) of the colliding session(s).
type SchedulingError struct {
	Kind        SchedulingErrorKind
	Detail      string
	ConflictIDs []string
}

func (e *SchedulingError) Error() string {
	if len(e.ConflictIDs) > 0 {
		return fmt.Sprintf("%s: %s (conflicts with %s)", e.Kind, e.Detail, strings.Join(e.ConflictIDs, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewUnknownResource reports a movie/hall/cinema id that did not resolve in the catalog.
func NewUnknownResource(entity, id string) *SchedulingError {
	return &SchedulingError{
		Kind:   SchedulingUnknownResource,
		Detail: fmt.Sprintf("%s %q does not exist", entity, id),
	}
}

// NewInvalidInterval reports a candidate window with start >= end.
func NewInvalidInterval(detail string) *SchedulingError {
	return &SchedulingError{Kind: SchedulingInvalidInterval, Detail: detail}
}

// NewHallConflict reports overlapping bookings in the same hall.
func NewHallConflict(detail string, conflictIDs []string) *SchedulingError {
	return &SchedulingError{Kind: SchedulingHallConflict, Detail: detail, ConflictIDs: conflictIDs}
}

// AsSchedulingError unwraps err into a *SchedulingError if it is one.
func AsSchedulingError(err error) (*SchedulingError, bool) {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
