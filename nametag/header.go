package nametag

import (
	"fmt"
	"strings"
)

// FromHeaderLines parses a GraphName from GFA or GAF header lines.
// GFA headers are "H" lines with typed optional fields; GAF headers are
// "@XX" lines with plain tab-separated fields. The two styles may be mixed.
// Unrecognized tags are ignored.
func FromHeaderLines(lines []string) (*GraphName, error) {
	result := &GraphName{}
	for i, line := range lines {
		fields := strings.Split(line, fieldSeparator)
		if len(fields) < 2 {
			return nil, fmt.Errorf("header line %d: not enough fields", i+1)
		}
		var err error
		switch {
		case fields[0] == gfaHeaderType:
			err = parseGFAHeaderFields(result, fields[1:])
		case len(fields[0]) == 3 && strings.HasPrefix(fields[0], gafHeaderMark):
			err = parseGAFHeaderFields(result, fields)
		default:
			err = fmt.Errorf("unknown first field %q", fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("header line %d: %w", i+1, err)
		}
	}
	return result, nil
}

// typedFieldIsString checks the "XX:T:value" shape of a GFA optional field
// and reports whether its type is Z (printable string).
func typedFieldIsString(field string) (bool, error) {
	if len(field) < 5 || field[2] != ':' || field[4] != ':' {
		return false, fmt.Errorf("invalid typed field %q", field)
	}
	return field[3] == 'Z', nil
}

func parseGFAHeaderFields(result *GraphName, fields []string) error {
	for _, field := range fields {
		isString, err := typedFieldIsString(field)
		if err != nil {
			return err
		}
		if !isString {
			continue
		}
		tag := field[0:2]
		value := field[5:]
		switch tag {
		case GFAHeaderName:
			result.name = value
		case HeaderSubgraph:
			pair, err := parsePair(value)
			if err != nil {
				return err
			}
			result.subgraph = addPair(result.subgraph, pair.From, pair.To)
		case HeaderTranslation:
			pair, err := parsePair(value)
			if err != nil {
				return err
			}
			result.translation = addPair(result.translation, pair.From, pair.To)
		}
	}
	return nil
}

func parseGAFHeaderFields(result *GraphName, fields []string) error {
	switch fields[0][1:] {
	case GAFHeaderName:
		if len(fields) != 2 || fields[1] == "" {
			return fmt.Errorf("invalid name header")
		}
		result.name = fields[1]
	case HeaderSubgraph:
		if len(fields) != 3 || fields[1] == "" || fields[2] == "" {
			return fmt.Errorf("invalid subgraph header")
		}
		result.subgraph = addPair(result.subgraph, fields[1], fields[2])
	case HeaderTranslation:
		if len(fields) != 3 || fields[1] == "" || fields[2] == "" {
			return fmt.Errorf("invalid translation header")
		}
		result.translation = addPair(result.translation, fields[1], fields[2])
	}
	return nil
}

// GFAHeaderLines renders the GraphName as GFA "H" lines with typed fields,
// one relationship per line, in sorted order.
func (g *GraphName) GFAHeaderLines() []string {
	var lines []string
	if g.name != "" {
		lines = append(lines, fmt.Sprintf("%s\t%s:Z:%s", gfaHeaderType, GFAHeaderName, g.name))
	}
	for _, p := range g.Subgraphs() {
		lines = append(lines, fmt.Sprintf("%s\t%s:Z:%s%s%s", gfaHeaderType, HeaderSubgraph, p.From, pairSeparator, p.To))
	}
	for _, p := range g.Translations() {
		lines = append(lines, fmt.Sprintf("%s\t%s:Z:%s%s%s", gfaHeaderType, HeaderTranslation, p.From, pairSeparator, p.To))
	}
	return lines
}

// GAFHeaderLines renders the GraphName as GAF "@" header lines, one
// relationship per line, in sorted order.
func (g *GraphName) GAFHeaderLines() []string {
	var lines []string
	if g.name != "" {
		lines = append(lines, fmt.Sprintf("%s%s\t%s", gafHeaderMark, GAFHeaderName, g.name))
	}
	for _, p := range g.Subgraphs() {
		lines = append(lines, fmt.Sprintf("%s%s\t%s\t%s", gafHeaderMark, HeaderSubgraph, p.From, p.To))
	}
	for _, p := range g.Translations() {
		lines = append(lines, fmt.Sprintf("%s%s\t%s\t%s", gafHeaderMark, HeaderTranslation, p.From, p.To))
	}
	return lines
}
