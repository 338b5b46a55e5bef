package graph

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// CanonicalEdge is the single representative record chosen for an undirected
// connection or a qualifying self-loop, attributed to one node of a
// CanonicalView. To indexes the other endpoint in CanonicalView.Nodes, so
// comparing indexes is the same as comparing identifiers under the resolved
// universe.
type CanonicalEdge struct {
	// FromOrient is the orientation on the attributed node's side.
	FromOrient Orientation

	// To is the canonical position of the other endpoint.
	To int32

	// ToOrient is the orientation on the other endpoint's side.
	ToOrient Orientation
}

// Node is a node in canonical position together with its canonical edges in
// sorted order.
type Node struct {
	Name     string
	Sequence []byte
	Edges    []CanonicalEdge
}

// CanonicalView is the node sequence sorted by identifier under the resolved
// universe, with each node's canonical edges sorted by (own orientation,
// destination, destination orientation). A view is read-only once built and
// safe to share without synchronization.
type CanonicalView struct {
	Universe Universe
	Nodes    []Node
}

// Statistics returns the number of nodes, the number of canonical edges, and
// the total sequence length.
func (v *CanonicalView) Statistics() (nodes, edges, seqLen int) {
	nodes = len(v.Nodes)
	for i := range v.Nodes {
		edges += len(v.Nodes[i].Edges)
		seqLen += len(v.Nodes[i].Sequence)
	}
	return nodes, edges, seqLen
}

// Build resolves the identifier universe of the source and computes its
// CanonicalView.
//
// Per-node edge sorting runs on up to workers goroutines (0 means
// runtime.NumCPU()). The result is a pure function of the node and edge
// sets: permuting the source's record order never changes the view.
//
// Build fails with ErrDuplicateIdentifier if two node records share an
// identifier, and with ErrDanglingEdge if an edge references an identifier
// absent from the node records.
func Build(src Source, workers int) (*CanonicalView, error) {
	var records []NodeRecord
	index := make(map[string]int32)
	err := src.ForEachNode(func(n NodeRecord) error {
		if _, ok := index[n.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, n.Name)
		}
		index[n.Name] = int32(len(records))
		records = append(records, n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(records))
	for i := range records {
		names[i] = records[i].Name
	}
	universe := ResolveUniverse(names)

	order := make([]int32, len(records))
	for i := range order {
		order[i] = int32(i)
	}
	if universe == IntegerUniverse {
		// Integer identifiers sort on a compact numeric key instead of
		// retaining a sorted index over the textual forms.
		keys := make([]uint64, len(records))
		for i, name := range names {
			keys[i], _ = integerKey(name)
		}
		sort.Slice(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] })
	} else {
		sort.Slice(order, func(i, j int) bool { return names[order[i]] < names[order[j]] })
	}

	// rank maps a record index to its canonical position.
	rank := make([]int32, len(records))
	nodes := make([]Node, len(records))
	for pos, orig := range order {
		rank[orig] = int32(pos)
		nodes[pos] = Node{Name: records[orig].Name, Sequence: records[orig].Sequence}
	}

	err = src.ForEachEdge(func(e EdgeRecord) error {
		fi, ok := index[e.From]
		if !ok {
			return danglingEdge(e, e.From)
		}
		ti, ok := index[e.To]
		if !ok {
			return danglingEdge(e, e.To)
		}
		from, to := rank[fi], rank[ti]
		switch {
		case from < to:
			nodes[from].Edges = append(nodes[from].Edges, CanonicalEdge{e.FromOrient, to, e.ToOrient})
		case from > to:
			// Recorded against the larger endpoint: re-attribute to the
			// smaller one with endpoints and orientations swapped so the
			// connection semantics are preserved.
			nodes[to].Edges = append(nodes[to].Edges, CanonicalEdge{e.ToOrient.Flip(), from, e.FromOrient.Flip()})
		default:
			// Self-loop: canonical only if at least one side is forward,
			// kept with the orientations as given. A loop with both sides
			// reverse is dropped.
			if e.FromOrient == Forward || e.ToOrient == Forward {
				nodes[from].Edges = append(nodes[from].Edges, CanonicalEdge{e.FromOrient, to, e.ToOrient})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortEdges(nodes, workers)

	return &CanonicalView{Universe: universe, Nodes: nodes}, nil
}

func danglingEdge(e EdgeRecord, missing string) error {
	return fmt.Errorf("%w: %s in edge (%s%s, %s%s)", ErrDanglingEdge,
		missing, e.From, e.FromOrient, e.To, e.ToOrient)
}

// sortEdges sorts and deduplicates each node's edge list. The per-node sorts
// are independent, so they run concurrently across a bounded pool.
func sortEdges(nodes []Node, workers int) {
	if len(nodes) == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(nodes) {
		workers = len(nodes)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(nodes); i += workers {
				finalizeNode(&nodes[i])
			}
		}(w)
	}
	wg.Wait()
}

func finalizeNode(n *Node) {
	edges := n.Edges
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].FromOrient != edges[j].FromOrient {
			return edges[i].FromOrient < edges[j].FromOrient
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].ToOrient < edges[j].ToOrient
	})
	// The same connection may have been recorded from both directions;
	// keep one representative.
	out := edges[:0]
	for i, e := range edges {
		if i == 0 || e != edges[i-1] {
			out = append(out, e)
		}
	}
	n.Edges = out
}
