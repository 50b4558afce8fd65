// SPDX-License-Identifier: MIT

package renumber_test

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/renumber"
)

// ExampleRenumber maps three sparse identifiers onto 0..2 in ascending order.
func ExampleRenumber() {
	src := []core.Identifier{4000000000, 17}
	dst := []core.Identifier{17, 900}

	res, err := renumber.Renumber(src, dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Sources, res.Destinations)
	fmt.Println(res.Mapping.Originals())

	v, _ := res.Mapping.ToDense(900)
	fmt.Println("900 ->", v)
	// Output:
	// [2 0] [0 1]
	// [17 900 4000000000]
	// 900 -> 1
}

// ExampleRenumber_firstSeen assigns indices in order of appearance.
func ExampleRenumber_firstSeen() {
	src := []core.Identifier{4000000000, 17}
	dst := []core.Identifier{17, 900}

	res, _ := renumber.Renumber(src, dst, renumber.WithOrder(renumber.OrderFirstSeen))
	fmt.Println(res.Sources, res.Destinations)
	fmt.Println(res.Mapping.Originals())
	// Output:
	// [0 1] [1 2]
	// [4000000000 17 900]
}

// ExampleMapping_Translate turns a dense path back into original identifiers.
func ExampleMapping_Translate() {
	res, _ := renumber.RenumberEdges([]core.RawEdge{
		{Source: 300, Destination: 100, Weight: 1},
		{Source: 100, Destination: 200, Weight: 1},
	})
	ids, _ := res.Mapping.Translate([]core.VertexIndex{2, 0, 1})
	fmt.Println(ids)
	// Output:
	// [300 100 200]
}
