package routing

import (
	"errors"
)

//*******************************************
// error taxonomy
//*******************************************

// Per-request failures surfaced to the transport layer. All of them are
// local to the failing request, shared graph state is never touched.
var (
	// ErrInvalidInput marks malformed or out-of-range request parameters,
	// rejected before any search begins.
	ErrInvalidInput = errors.New("routing: invalid input")

	// ErrUnknownNode marks a node id not present in the graph.
	ErrUnknownNode = errors.New("routing: unknown node")

	// ErrUnreachable is returned when no path exists between two locations.
	ErrUnreachable = errors.New("routing: target unreachable")

	// ErrNoLoopFound is returned when the attempt budget is exhausted
	// without a loop satisfying the constraints.
	ErrNoLoopFound = errors.New("routing: no loop found")

	// ErrCancelled is returned when a search is aborted by the caller,
	// distinct from ErrNoLoopFound so clients can retry instead of give up.
	ErrCancelled = errors.New("routing: search cancelled")

	// ErrSnapOutOfRange marks an input point without any network edge
	// within the snap radius; the wrapping error names the point index.
	ErrSnapOutOfRange = errors.New("routing: point out of snap range")

	// ErrInsufficientPoints is returned for snap inputs with fewer than two
	// points.
	ErrInsufficientPoints = errors.New("routing: insufficient points")

	// ErrTooShort is returned when a snapped polyline collapses to fewer
	// than two distinct points.
	ErrTooShort = errors.New("routing: snapped route too short")
)
