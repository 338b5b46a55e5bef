// Package canonical renders a graph.CanonicalView into the canonical byte
// grammar that stable names are computed over.
//
// The grammar contains exactly two record kinds, tab-separated and
// newline-terminated:
//
//	S<TAB>identifier<TAB>sequence
//	L<TAB>identifier-A<TAB>orientation-A<TAB>identifier-B<TAB>orientation-B
//
// Orientations are written as "+" and "-". No header, path, walk, or comment
// records and no optional fields are ever emitted, so the output is
// byte-for-byte determined by the view alone.
package canonical

import (
	"bytes"
	"io"

	"github.com/pangenome/pggname/graph"
)

const (
	fieldSeparator   = '\t'
	recordTerminator = '\n'
)

// Write streams the canonical byte grammar for view into w and returns the
// number of bytes written.
//
// Records are produced in canonical order: each node's S-record followed by
// its canonical L-records, node by node. Only one node's records are
// buffered at a time, so the serialized text never has to fit in memory as a
// whole. Callers that feed a digest must pass the digest itself (or a writer
// wrapping it) as w; reordering or parallelizing the writes would silently
// change the resulting name.
func Write(w io.Writer, view *graph.CanonicalView) (int64, error) {
	var buf bytes.Buffer
	var total int64
	for i := range view.Nodes {
		buf.Reset()
		appendNode(&buf, view, &view.Nodes[i])
		n, err := w.Write(buf.Bytes())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// appendNode renders one node's S-record and its L-records into buf.
func appendNode(buf *bytes.Buffer, view *graph.CanonicalView, node *graph.Node) {
	buf.WriteByte('S')
	buf.WriteByte(fieldSeparator)
	buf.WriteString(node.Name)
	buf.WriteByte(fieldSeparator)
	buf.Write(node.Sequence)
	buf.WriteByte(recordTerminator)

	for _, e := range node.Edges {
		buf.WriteByte('L')
		buf.WriteByte(fieldSeparator)
		buf.WriteString(node.Name)
		buf.WriteByte(fieldSeparator)
		buf.WriteByte(e.FromOrient.Symbol())
		buf.WriteByte(fieldSeparator)
		buf.WriteString(view.Nodes[e.To].Name)
		buf.WriteByte(fieldSeparator)
		buf.WriteByte(e.ToOrient.Symbol())
		buf.WriteByte(recordTerminator)
	}
}
