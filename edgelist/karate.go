// SPDX-License-Identifier: MIT

package edgelist

import (
	_ "embed"
	"strings"

	"github.com/katalvlaran/csrpath/core"
)

//go:embed karate.csv
var karateCSV string

// Karate dataset dimensions.
const (
	KarateVertices = 34
	KarateEdges    = 78
)

// Karate returns Zachary's karate-club network as unit-weight raw edges with
// identifiers 1..34. Treat it as undirected.
func Karate() []core.RawEdge {
	edges, err := Read(strings.NewReader(karateCSV), WithHeader(), WithParser(ParseInteger))
	if err != nil {
		// The embedded file is fixed; a failure here is a build defect.
		panic(err)
	}

	return edges
}
