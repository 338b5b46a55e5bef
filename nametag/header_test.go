package nametag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGFAHeaderLinesRoundTrip(t *testing.T) {
	g := manual()
	lines := g.GFAHeaderLines()
	want := []string{
		"H\tNM:Z:A",
		"H\tSG:Z:A,B",
		"H\tSG:Z:C,D",
		"H\tSG:Z:D,E",
		"H\tTL:Z:B,C",
		"H\tTL:Z:C,F",
	}
	assert.Equal(t, want, lines)

	parsed, err := FromHeaderLines(lines)
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestGAFHeaderLinesRoundTrip(t *testing.T) {
	g := manual()
	lines := g.GAFHeaderLines()
	want := []string{
		"@RN\tA",
		"@SG\tA\tB",
		"@SG\tC\tD",
		"@SG\tD\tE",
		"@TL\tB\tC",
		"@TL\tC\tF",
	}
	assert.Equal(t, want, lines)

	parsed, err := FromHeaderLines(lines)
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestFromHeaderLinesIgnoresUnrelated(t *testing.T) {
	lines := []string{
		"H\tVN:Z:1.1",
		"H\tNM:Z:A",
		"@HD\tVN:Z:1.0",
		"@RN\tA",
	}
	parsed, err := FromHeaderLines(lines)
	require.NoError(t, err)
	name, ok := parsed.Name()
	assert.True(t, ok)
	assert.Equal(t, "A", name)
}

func TestFromHeaderLinesSkipsNonStringFields(t *testing.T) {
	// A numeric SG field is not a string-typed tag and carries no
	// relationship.
	parsed, err := FromHeaderLines([]string{"H\tSG:i:42"})
	require.NoError(t, err)
	assert.Empty(t, parsed.Subgraphs())
}

func TestFromHeaderLinesMixedFormats(t *testing.T) {
	lines := []string{
		"H\tSG:Z:A,B",
		"@TL\tB\tC",
	}
	parsed, err := FromHeaderLines(lines)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{From: "A", To: "B"}}, parsed.Subgraphs())
	assert.Equal(t, []Pair{{From: "B", To: "C"}}, parsed.Translations())
}

func TestFromHeaderLinesErrors(t *testing.T) {
	bad := [][]string{
		{"H"},                    // not enough fields
		{"X\tNM:Z:A"},            // unknown first field
		{"H\tNMZA"},              // malformed typed field
		{"H\tSG:Z:A"},            // subgraph without a pair
		{"@SG\tA"},               // GAF subgraph without both names
		{"@RN\tA\tB"},            // GAF name with too many fields
		{"@TL\t\tB"},             // empty name
		{"garbage\tNM:Z:A"},      // unrecognized header type
		{"H\tNM:Z:A", "H\tSG:Z:A,B,C"}, // second line malformed
	}
	for _, lines := range bad {
		_, err := FromHeaderLines(lines)
		assert.Error(t, err, "lines %v", lines)
	}
}

func TestFromHeaderLinesReportsLineNumber(t *testing.T) {
	_, err := FromHeaderLines([]string{"H\tNM:Z:A", "H\tSG:Z:oops"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestHeaderLinesEmpty(t *testing.T) {
	var g GraphName
	assert.Empty(t, g.GFAHeaderLines())
	assert.Empty(t, g.GAFHeaderLines())
}
