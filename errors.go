package pggname

import (
	"errors"
	"fmt"

	"github.com/pangenome/pggname/digest"
	"github.com/pangenome/pggname/graph"
)

// Sentinel errors for the failure conditions of the naming pipeline.
// These errors can be matched with errors.Is().
var (
	// ErrDuplicateIdentifier indicates that two node records share an
	// identifier, so no canonical order can be defined. The computation
	// aborts before any hashing begins.
	ErrDuplicateIdentifier = graph.ErrDuplicateIdentifier

	// ErrDanglingEdge indicates that an edge references a node identifier
	// absent from the node records; the graph is structurally invalid.
	ErrDanglingEdge = graph.ErrDanglingEdge

	// ErrMalformedRecord indicates an input record that cannot be
	// interpreted, such as an unrecognized orientation field.
	ErrMalformedRecord = graph.ErrMalformedRecord

	// ErrInvalidConfiguration indicates an unsupported hash variant or a
	// truncation length exceeding the variant's natural digest length,
	// detected before streaming starts.
	ErrInvalidConfiguration = digest.ErrInvalidConfiguration
)

// Error kinds categorize errors by their type.
const (
	// KindStructure represents structurally invalid graphs: duplicate
	// identifiers or dangling edges.
	KindStructure = "structure"

	// KindParse represents errors decoding an input format.
	KindParse = "parse"

	// KindConfiguration represents errors in the pipeline configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal pipeline errors.
	KindInternal = "internal"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports unwrapping, making it
// compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Namer.Name").
	Op string

	// Kind categorizes the error (e.g., KindStructure).
	Kind string

	// Err is the underlying error.
	Err error

	// Context provides additional detail about the error, such as the
	// offending identifier or edge endpoints.
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("pggname: %s: %s", e.Op, e.Kind)
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("pggname: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}
	return fmt.Sprintf("pggname: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op when the target sets one), and
// otherwise delegates to the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context added.
func (e *Error) WithContext(ctx map[string]any) *Error {
	clone := *e
	if clone.Context == nil {
		clone.Context = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		clone.Context[k] = v
	}
	return &clone
}

// NewStructureError creates an Error with KindStructure.
func NewStructureError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindStructure, Err: err}
}

// NewParseError creates an Error with KindParse.
func NewParseError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindParse, Err: err}
}

// NewConfigurationError creates an Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewInternalError creates an Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInternal, Err: err}
}
