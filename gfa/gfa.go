// Package gfa decodes the text-based GFA graph format into node and edge
// records for naming.
//
// Only S (segment) and L (link) lines contribute to the graph. H (header)
// lines are collected verbatim so callers can extract relationship tags;
// every other record type (paths, walks, containments, comments) is ignored.
package gfa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pangenome/pggname/graph"
)

// File holds the decoded content of a GFA file.
type File struct {
	// Graph contains the S and L records as an in-memory graph source.
	Graph *graph.Memory

	// Headers contains the H lines in input order, without the trailing
	// newline, for relationship-tag parsing.
	Headers []string
}

// ParseFile opens and parses a GFA file.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening GFA file %s: %w", path, err)
	}
	defer f.Close()
	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing GFA file %s: %w", path, err)
	}
	return parsed, nil
}

// Parse decodes GFA records from r.
//
// It fails with an error wrapping graph.ErrMalformedRecord if a segment or
// link line has too few fields or an unrecognized orientation; the error
// names the offending line number. Structural validation (duplicates,
// dangling edges) happens later in graph.Build, not here.
func Parse(r io.Reader) (*File, error) {
	result := &File{Graph: graph.NewMemory()}
	reader := bufio.NewReader(r)

	lineno := 0
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			lineno++
			line = bytes.TrimSuffix(line, []byte{'\n'})
			if perr := parseLine(result, line, lineno); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading GFA line %d: %w", lineno+1, err)
		}
	}

	return result, nil
}

func parseLine(result *File, line []byte, lineno int) error {
	if len(line) == 0 {
		return nil
	}
	switch line[0] {
	case 'S':
		fields := bytes.Split(line, []byte{'\t'})
		if len(fields) < 3 {
			return fmt.Errorf("GFA line %d: %w: not enough fields for a segment", lineno, graph.ErrMalformedRecord)
		}
		result.Graph.AddNode(string(fields[1]), fields[2])
	case 'L':
		fields := bytes.Split(line, []byte{'\t'})
		if len(fields) < 5 {
			return fmt.Errorf("GFA line %d: %w: not enough fields for a link", lineno, graph.ErrMalformedRecord)
		}
		fromOrient, err := graph.ParseOrientation(fields[2])
		if err != nil {
			return fmt.Errorf("GFA line %d: %w", lineno, err)
		}
		toOrient, err := graph.ParseOrientation(fields[4])
		if err != nil {
			return fmt.Errorf("GFA line %d: %w", lineno, err)
		}
		result.Graph.AddEdge(string(fields[1]), fromOrient, string(fields[3]), toOrient)
	case 'H':
		result.Headers = append(result.Headers, string(line))
	}
	return nil
}
