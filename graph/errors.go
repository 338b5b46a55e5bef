package graph

import "errors"

// Sentinel errors for structural graph conditions.
// These can be matched with errors.Is() on errors returned by Build and by
// the format adapters.
var (
	// ErrDuplicateIdentifier indicates that two node records share an
	// identifier. No canonical order can be defined over such a graph.
	ErrDuplicateIdentifier = errors.New("duplicate node identifier")

	// ErrDanglingEdge indicates that an edge references a node identifier
	// that is absent from the node records.
	ErrDanglingEdge = errors.New("edge references a missing node")

	// ErrMalformedRecord indicates a node or edge record that cannot be
	// interpreted, such as an unrecognized orientation field.
	ErrMalformedRecord = errors.New("malformed record")
)
