// SPDX-License-Identifier: MIT

package edgelist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/edgelist"
)

func TestRead_Basic(t *testing.T) {
	in := `# comment
1,2,0.5
2, 3

0x10,1,-2
`
	edges, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.RawEdge{
		{Source: 1, Destination: 2, Weight: 0.5},
		{Source: 2, Destination: 3, Weight: core.DefaultWeight},
		{Source: 16, Destination: 1, Weight: -2},
	}, edges)
}

func TestRead_OptionsTSVHeader(t *testing.T) {
	in := "src\tdst\n10.0.0.1\t10.0.0.2\n"
	edges, err := edgelist.Read(strings.NewReader(in),
		edgelist.WithDelimiter('\t'),
		edgelist.WithHeader(),
		edgelist.WithParser(edgelist.ParseIPv4),
		edgelist.WithDefaultWeight(3),
	)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, core.RawEdge{Source: 0x0A000001, Destination: 0x0A000002, Weight: 3}, edges[0])
}

func TestRead_CommentDisabled(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader("#1,2\n"), edgelist.WithComment(0))
	assert.ErrorIs(t, err, edgelist.ErrBadIdentifier)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"one field", "1,2\n3\n", edgelist.ErrMalformedRecord, "line 2"},
		{"four fields", "1,2,3,4\n", edgelist.ErrMalformedRecord, "line 1"},
		{"bad id", "1,2\n1,x\n", edgelist.ErrBadIdentifier, "line 2"},
		{"negative id", "-1,2\n", edgelist.ErrBadIdentifier, "line 1"},
		{"bad weight", "1,2,abc\n", edgelist.ErrBadWeight, "line 1"},
		{"nan weight", "1,2\n\n1,2,NaN\n", edgelist.ErrBadWeight, "line 3"},
		{"inf weight", "1,2,+Inf\n", edgelist.ErrBadWeight, "line 1"},
		{"bare quote", "1,\"2\n", edgelist.ErrMalformedRecord, "line"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestRead_OptionViolations(t *testing.T) {
	for _, opt := range []edgelist.Option{
		edgelist.WithDelimiter('"'),
		edgelist.WithDelimiter('\n'),
		edgelist.WithParser(nil),
		edgelist.WithDefaultWeight(-1 / zero()),
	} {
		_, err := edgelist.Read(strings.NewReader("1,2\n"), opt)
		assert.ErrorIs(t, err, edgelist.ErrOptionViolation)
	}
}

func zero() float64 { return 0 }

func TestParsers(t *testing.T) {
	id, err := edgelist.ParseIPv4("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.Identifier(0x0A000001), id)

	id, err = edgelist.ParseIPv4("::ffff:192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, core.Identifier(0xC0A80101), id)

	_, err = edgelist.ParseIPv4("::1")
	assert.ErrorIs(t, err, edgelist.ErrBadIdentifier)
	_, err = edgelist.ParseIPv4("300.0.0.1")
	assert.ErrorIs(t, err, edgelist.ErrBadIdentifier)

	id, err = edgelist.ParseInteger("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, core.Identifier(^uint64(0)), id)
	_, err = edgelist.ParseInteger("18446744073709551616")
	assert.ErrorIs(t, err, edgelist.ErrBadIdentifier)

	id, err = edgelist.ParseAuto("255.255.255.255")
	require.NoError(t, err)
	assert.Equal(t, core.Identifier(0xFFFFFFFF), id)
	id, err = edgelist.ParseAuto("42")
	require.NoError(t, err)
	assert.Equal(t, core.Identifier(42), id)

	s, err := edgelist.FormatIPv4(0x0A000001)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", s)
	_, err = edgelist.FormatIPv4(1 << 32)
	assert.ErrorIs(t, err, edgelist.ErrBadIdentifier)
}

func TestWriteRead(t *testing.T) {
	edges := []core.RawEdge{
		{Source: 7, Destination: 1 << 40, Weight: 2.5},
		{Source: 3, Destination: 3, Weight: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, edges, edgelist.WithDelimiter(';')))
	assert.Equal(t, "7;1099511627776;2.5\n3;3;0\n", buf.String())

	got, err := edgelist.Read(&buf, edgelist.WithDelimiter(';'), edgelist.WithParser(edgelist.ParseInteger))
	require.NoError(t, err)
	assert.Equal(t, edges, got)
}

func TestKarate(t *testing.T) {
	edges := edgelist.Karate()
	require.Len(t, edges, edgelist.KarateEdges)

	seen := make(map[core.Identifier]bool)
	for _, e := range edges {
		assert.Equal(t, core.DefaultWeight, e.Weight)
		assert.NotEqual(t, e.Source, e.Destination)
		seen[e.Source], seen[e.Destination] = true, true
	}
	assert.Len(t, seen, edgelist.KarateVertices)
	for id := core.Identifier(1); id <= edgelist.KarateVertices; id++ {
		assert.True(t, seen[id], "identifier %d", id)
	}
	assert.Equal(t, core.RawEdge{Source: 1, Destination: 2, Weight: 1}, edges[0])
}
