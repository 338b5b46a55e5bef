package graph

// NodeRecord is a single node supplied by a graph source.
// The sequence is opaque byte data and is never reinterpreted.
type NodeRecord struct {
	// Name is the node identifier in its original textual form.
	Name string

	// Sequence is the sequence associated with the node.
	Sequence []byte
}

// EdgeRecord is a single edge supplied by a graph source.
// Edges are stored without a fixed canonical direction; the same connection
// may appear with either endpoint first.
type EdgeRecord struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation
}

// Source supplies the unordered node and edge records of a graph.
//
// Format adapters (GFA, GBZ, ...) implement this interface; the naming
// pipeline depends only on it and never on a specific format's decoding
// details. Iteration order carries no meaning: the canonical order engine
// produces the same CanonicalView for any permutation of the records.
type Source interface {
	// ForEachNode calls fn for every node record.
	// Iteration stops at the first error, which is returned.
	ForEachNode(fn func(NodeRecord) error) error

	// ForEachEdge calls fn for every edge record.
	// Iteration stops at the first error, which is returned.
	ForEachEdge(fn func(EdgeRecord) error) error
}

// Memory is an in-memory Source built by appending records.
// It performs no validation; structural checks happen in Build.
type Memory struct {
	nodes []NodeRecord
	edges []EdgeRecord
}

// NewMemory creates an empty in-memory graph source.
func NewMemory() *Memory {
	return &Memory{}
}

// AddNode appends a node record.
func (m *Memory) AddNode(name string, sequence []byte) {
	m.nodes = append(m.nodes, NodeRecord{Name: name, Sequence: sequence})
}

// AddEdge appends an edge record.
func (m *Memory) AddEdge(from string, fromOrient Orientation, to string, toOrient Orientation) {
	m.edges = append(m.edges, EdgeRecord{
		From:       from,
		FromOrient: fromOrient,
		To:         to,
		ToOrient:   toOrient,
	})
}

// NodeCount returns the number of stored node records.
func (m *Memory) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of stored edge records, before
// canonicalization and deduplication.
func (m *Memory) EdgeCount() int {
	return len(m.edges)
}

// ForEachNode implements Source.
func (m *Memory) ForEachNode(fn func(NodeRecord) error) error {
	for _, n := range m.nodes {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

// ForEachEdge implements Source.
func (m *Memory) ForEachEdge(fn func(EdgeRecord) error) error {
	for _, e := range m.edges {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
