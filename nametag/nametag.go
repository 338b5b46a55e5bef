// Package nametag records stable graph names and the relationships between
// named graphs, and converts them to and from the tag and header
// conventions of the host file formats.
//
// Three relationships exist: the graph's own name, subgraph relationships
// (ordered "self,ancestor" pairs), and coordinate translation relationships
// (ordered "from,to" pairs). The same relationships are mirrored as a
// key-value tag set (binary graph files), GFA header lines, and GAF header
// lines, with format-appropriate key names but identical pair syntax and
// identical name strings.
package nametag

import (
	"fmt"
	"sort"
	"strings"
)

// Tag keys used in binary graph file tag sets.
const (
	TagName        = "pggname"
	TagSubgraph    = "subgraph"
	TagTranslation = "translation"
)

// Header tags used in GFA and GAF files.
const (
	GFAHeaderName     = "NM"
	GAFHeaderName     = "RN"
	HeaderSubgraph    = "SG"
	HeaderTranslation = "TL"
)

const (
	gfaHeaderType  = "H"
	gafHeaderMark  = "@"
	fieldSeparator = "\t"
	pairSeparator  = ","
	listSeparator  = ";"
)

// Pair is an ordered relationship between two named graphs: (self, ancestor)
// for subgraph relationships, (from, to) for translations.
type Pair struct {
	From string
	To   string
}

// GraphName holds a graph's stable name and its recorded relationships.
// The zero value is usable and represents an unnamed graph with no
// relationships.
type GraphName struct {
	name        string
	subgraph    map[string]map[string]bool
	translation map[string]map[string]bool
}

// New creates a GraphName with the given stable name.
func New(name string) *GraphName {
	return &GraphName{name: name}
}

// Name returns the stable name of the graph, if available.
func (g *GraphName) Name() (string, bool) {
	return g.name, g.name != ""
}

// IsSame reports whether both objects carry a name and the names match.
func (g *GraphName) IsSame(other *GraphName) bool {
	return g.name != "" && other != nil && g.name == other.name
}

// AddSubgraph records that sub is a subgraph of super.
// The relationship is only recorded if both graphs have names.
func (g *GraphName) AddSubgraph(sub, super *GraphName) {
	if sub == nil || super == nil || sub.name == "" || super.name == "" {
		return
	}
	g.subgraph = addPair(g.subgraph, sub.name, super.name)
}

// AddTranslation records that coordinates can be mapped from one named graph
// to another. The relationship is only recorded if both graphs have names.
func (g *GraphName) AddTranslation(from, to *GraphName) {
	if from == nil || to == nil || from.name == "" || to.name == "" {
		return
	}
	g.translation = addPair(g.translation, from.name, to.name)
}

// MakeSubgraphOf records that this graph is a subgraph of other.
// The relationship is only recorded if both graphs have names.
func (g *GraphName) MakeSubgraphOf(other *GraphName) {
	g.AddSubgraph(g, other)
}

// AddTranslationTo records that coordinates can be mapped from this graph to
// other. The relationship is only recorded if both graphs have names.
func (g *GraphName) AddTranslationTo(other *GraphName) {
	g.AddTranslation(g, other)
}

// Subgraphs returns the recorded (self, ancestor) pairs in sorted order.
func (g *GraphName) Subgraphs() []Pair {
	return sortedPairs(g.subgraph)
}

// Translations returns the recorded (from, to) pairs in sorted order.
func (g *GraphName) Translations() []Pair {
	return sortedPairs(g.translation)
}

func addPair(m map[string]map[string]bool, from, to string) map[string]map[string]bool {
	if m == nil {
		m = make(map[string]map[string]bool)
	}
	if m[from] == nil {
		m[from] = make(map[string]bool)
	}
	m[from][to] = true
	return m
}

func sortedPairs(m map[string]map[string]bool) []Pair {
	froms := make([]string, 0, len(m))
	for from := range m {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	var pairs []Pair
	for _, from := range froms {
		tos := make([]string, 0, len(m[from]))
		for to := range m[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			pairs = append(pairs, Pair{From: from, To: to})
		}
	}
	return pairs
}

func parsePair(field string) (Pair, error) {
	parts := strings.Split(field, pairSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, fmt.Errorf("invalid relationship %q", field)
	}
	return Pair{From: parts[0], To: parts[1]}, nil
}

func parsePairList(m map[string]map[string]bool, value string) (map[string]map[string]bool, error) {
	for _, field := range strings.Split(value, listSeparator) {
		pair, err := parsePair(field)
		if err != nil {
			return nil, err
		}
		m = addPair(m, pair.From, pair.To)
	}
	return m, nil
}

func renderPairList(m map[string]map[string]bool) string {
	pairs := sortedPairs(m)
	fields := make([]string, len(pairs))
	for i, p := range pairs {
		fields[i] = p.From + pairSeparator + p.To
	}
	return strings.Join(fields, listSeparator)
}

// FromTags parses a GraphName from a binary graph file's tag set.
// Unrelated tags are ignored. Returns an error if a relationship tag value
// is malformed.
func FromTags(tags map[string]string) (*GraphName, error) {
	result := &GraphName{}
	if v, ok := tags[TagName]; ok {
		result.name = v
	}
	if v, ok := tags[TagSubgraph]; ok {
		m, err := parsePairList(nil, v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s tag: %w", TagSubgraph, err)
		}
		result.subgraph = m
	}
	if v, ok := tags[TagTranslation]; ok {
		m, err := parsePairList(nil, v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s tag: %w", TagTranslation, err)
		}
		result.translation = m
	}
	return result, nil
}

// Tags renders the GraphName as a binary graph file tag set.
// Empty relationships produce no tag.
func (g *GraphName) Tags() map[string]string {
	tags := make(map[string]string)
	if g.name != "" {
		tags[TagName] = g.name
	}
	if len(g.subgraph) > 0 {
		tags[TagSubgraph] = renderPairList(g.subgraph)
	}
	if len(g.translation) > 0 {
		tags[TagTranslation] = renderPairList(g.translation)
	}
	return tags
}
