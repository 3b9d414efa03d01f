package parse

import (
	"errors"
	"fmt"
)

// All parse errors abort the current Parse call; there is no recovery.
// A Tree whose Parse returned an error must be discarded.  Allocation
// failure has no sentinel: the Go runtime aborts rather than reporting it.
var (
	// ErrMalformed covers structurally invalid documents.  It is reachable
	// only through the more specific errors that wrap it.
	ErrMalformed = errors.New("malformed document")

	// ErrNestedDocuments is reserved for rejecting nested explicit
	// document markers; no current code path triggers it.
	ErrNestedDocuments = errors.New("nested documents")

	// ErrUnexpectedEOF reports a required token demanded after the token
	// stream was exhausted.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnexpectedToken reports a specific token kind required at a
	// specific point where a different kind was found.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnhandled reports input shapes the grammar recognizes but this
	// version does not implement: non-scalar document roots, flow-style
	// maps, indicator tokens in value position.  Distinguished from
	// ErrMalformed because the input may be syntactically legitimate.
	ErrUnhandled = errors.New("unhandled construct")

	// ErrMaxDepth bounds structural recursion; see WithMaxDepth.
	ErrMaxDepth = fmt.Errorf("%w: max nesting depth exceeded", ErrMalformed)
)
