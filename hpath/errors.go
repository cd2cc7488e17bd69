package hpath

import "errors"

// Error taxonomy. Unreachability is never an error: queries that find no
// route return nil results. Errors are reserved for misuse.
var (
	// ErrConfig reports invalid or missing init fields; fatal, aborts New.
	ErrConfig = errors.New("invalid configuration")
	// ErrOutOfBounds reports a query position outside the grid.
	ErrOutOfBounds = errors.New("position out of grid bounds")
	// ErrStaleGraph reports a transition node id that cannot be resolved
	// against the current graph: a contract violation between the graph
	// and the point set, not a normal runtime outcome.
	ErrStaleGraph = errors.New("stale transition graph")
)
