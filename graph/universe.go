package graph

import "strconv"

// Universe is the graph-wide choice between integer and string ordering for
// node identifiers. It is resolved once per graph; all comparisons in one
// computation use the same universe.
type Universe uint8

const (
	// IntegerUniverse orders identifiers by their numeric value.
	IntegerUniverse Universe = iota

	// StringUniverse orders identifiers byte-lexicographically.
	StringUniverse
)

// String returns "integer" or "string".
func (u Universe) String() string {
	if u == IntegerUniverse {
		return "integer"
	}
	return "string"
}

// integerKey parses name as a canonical non-negative integer: decimal digits
// only, no leading zeros, no sign, no whitespace. Values that do not fit in
// a uint64 are rejected, forcing the string fallback.
func integerKey(name string) (uint64, bool) {
	if name == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(name, 10, 64)
	if err != nil {
		return 0, false
	}
	// ParseUint accepts leading zeros; the canonical form does not.
	if len(name) > 1 && name[0] == '0' {
		return 0, false
	}
	return v, true
}

// ResolveUniverse inspects every node identifier and decides the identifier
// universe for the whole graph. If all identifiers are canonical
// non-negative integers the universe is IntegerUniverse; otherwise it is
// StringUniverse for all identifiers, including the ones that would have
// parsed. Resolution is total and cannot fail.
func ResolveUniverse(names []string) Universe {
	for _, name := range names {
		if _, ok := integerKey(name); !ok {
			return StringUniverse
		}
	}
	return IntegerUniverse
}
