// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/edgelist"
)

type mappingRow struct {
	Index core.VertexIndex `json:"index"`
	ID    string           `json:"id"`
}

func (c *CLI) renumberCommand() *cobra.Command {
	var edgesOut string

	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Print the identifier to dense index mapping",
		Long: `Renumber reads the edge list, assigns dense indices and prints the mapping.
With --edges-out the renumbered edge list is written as well.`,
		Example: `  csrpath renumber --dataset karate
  csrpath renumber -i flows.tsv --delimiter '\t' --parser ipv4 --order first-seen -f csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := c.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			originals := snap.Mapping.Originals()
			t := &table{header: []string{"index", "id"}}
			rows := make([]mappingRow, len(originals))
			for i, id := range originals {
				rows[i] = mappingRow{Index: core.VertexIndex(i), ID: c.formatID(id)}
				t.add(rows[i].Index.String(), rows[i].ID)
			}
			if err = render(cmd.OutOrStdout(), c.cfg.Output.Format, t, rows); err != nil {
				return err
			}

			if edgesOut == "" {
				return nil
			}
			f, err := os.Create(edgesOut)
			if err != nil {
				return err
			}
			defer f.Close()

			var dense []core.RawEdge
			snap.Graph.ForEachEdge(func(u, v core.VertexIndex, w float64) bool {
				dense = append(dense, core.RawEdge{Source: core.Identifier(u), Destination: core.Identifier(v), Weight: w})
				return true
			})
			if err = edgelist.Write(f, dense); err != nil {
				return fmt.Errorf("write %s: %w", edgesOut, err)
			}
			loggerFromContext(cmd.Context()).Info("wrote renumbered edges", "path", edgesOut, "count", len(dense))

			return nil
		},
	}
	cmd.Flags().StringVar(&edgesOut, "edges-out", "", "write the stored (dense) edges as CSV to this file")

	return cmd
}
