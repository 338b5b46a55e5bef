// Package pggname computes stable names for pangenome graphs.
//
// A stable name is a deterministic, format-independent identifier for a
// bidirected sequence graph: the same graph produces the same name whether
// it was stored as text-based GFA or a binary format, whatever order its
// records were stored in, and whether its node identifiers are numeric or
// textual.
//
// # Pipeline
//
// Naming a graph runs through five stages:
//
//   - Identifier resolution: all node identifiers are inspected once and the
//     graph-wide identifier universe (integer or string) is chosen.
//   - Canonical ordering: nodes are sorted by identifier; each undirected
//     connection is attributed exactly once to its smaller endpoint and the
//     per-node edge lists are sorted.
//   - Canonical serialization: the ordered view is rendered into a fixed
//     byte grammar of S and L records.
//   - Digest: the byte stream is folded into a selected SHA-2 variant and
//     truncated to the configured length.
//   - Emission: the digest is hex-encoded into the stable name.
//
// The serialization-and-digest fold is strictly sequential; the sorting
// stages may run in parallel. See the canonical and digest packages for
// where that boundary lies.
//
// # Getting Started
//
// Create a Namer and feed it any graph.Source:
//
//	import (
//		"github.com/pangenome/pggname"
//		"github.com/pangenome/pggname/digest"
//		"github.com/pangenome/pggname/gfa"
//	)
//
//	namer, err := pggname.NewNamer(pggname.WithHashVariant(digest.SHA256))
//	if err != nil {
//		log.Fatal(err)
//	}
//	parsed, err := gfa.ParseFile("graph.gfa")
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, err := namer.Name(ctx, parsed.Graph)
//
// Two graphs with identical canonical structure always receive identical
// names; graphs differing in any canonicalized detail differ with the
// collision resistance of the selected digest.
//
// # Relationships
//
// The nametag package records the relationships between named graphs
// (subgraph-of, coordinate translation) and converts them to and from the
// tag and header conventions of GFA, GAF, and binary graph files.
package pggname
