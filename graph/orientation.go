package graph

import "fmt"

// Orientation marks the strand of a node endpoint in a bidirected graph.
// Forward orders before Reverse in every comparison involving orientation.
type Orientation uint8

const (
	// Forward is the forward strand, written as "+" in GFA.
	Forward Orientation = iota

	// Reverse is the reverse strand, written as "-" in GFA.
	Reverse
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Reverse
	}
	return Forward
}

// Symbol returns the GFA field byte for the orientation.
func (o Orientation) Symbol() byte {
	if o == Forward {
		return '+'
	}
	return '-'
}

// String returns the orientation as "+" or "-".
func (o Orientation) String() string {
	return string(o.Symbol())
}

// ParseOrientation parses a GFA orientation field.
// It accepts "+" for forward and "-" for reverse.
func ParseOrientation(field []byte) (Orientation, error) {
	switch {
	case len(field) == 1 && field[0] == '+':
		return Forward, nil
	case len(field) == 1 && field[0] == '-':
		return Reverse, nil
	default:
		return Forward, fmt.Errorf("%w: invalid orientation %q", ErrMalformedRecord, string(field))
	}
}
