// Package graph provides the data model and canonical ordering engine for
// pangenome graph naming.
//
// A pangenome graph is a bidirected sequence graph. Node identifiers are
// either all integers or all strings; the identifier universe is resolved
// once per graph by inspecting every node identifier (see ResolveUniverse).
// Nodes are ordered by identifier under the resolved universe. Edges are
// bidirectional: the canonical representative of a connection is attributed
// to the smaller endpoint, and a self-loop is canonical only if at least one
// of its orientation slots is forward.
//
// The engine output is a CanonicalView: the sorted node sequence with each
// node's filtered, sorted canonical edges. The view is read-only once built
// and may be shared without synchronization.
package graph
