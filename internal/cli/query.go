// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrpath/pipeline"
)

// queryFlags are shared by sssp and path.
type queryFlags struct {
	frontier    string
	maxDistance float64
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.frontier, "frontier", "", "priority queue: binary-heap or indexed")
	cmd.Flags().Float64Var(&q.maxDistance, "max-distance", 0, "treat vertices farther than this as unreachable (default no cap)")
}

// resolveQuery merges the flags over the configured query defaults.
func (c *CLI) resolveQuery(cmd *cobra.Command, qf *queryFlags) (pipeline.Query, error) {
	qc := c.cfg.Query
	if cmd.Flags().Changed("frontier") {
		qc.Frontier = qf.frontier
	}
	if cmd.Flags().Changed("max-distance") {
		d := qf.maxDistance
		qc.MaxDistance = &d
	}

	return qc.query()
}

func (c *CLI) ssspCommand() *cobra.Command {
	var (
		qf            queryFlags
		source        string
		reachableOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Distances and predecessors from one source",
		Example: `  csrpath sssp --dataset karate --source 1
  csrpath sssp -i flows.tsv --parser ipv4 --source 10.0.0.1 --reachable-only -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			src, err := c.parseID(source)
			if err != nil {
				return err
			}
			q, err := c.resolveQuery(cmd, &qf)
			if err != nil {
				return err
			}
			r, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			da, cached, err := r.ShortestPaths(ctx, src, q)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Info("query done",
				"source", c.formatID(src),
				"reachable", da.ReachableCount(),
				"cached", cached)

			entries := r.Snapshot.Entries(da)
			t := &table{header: []string{"id", "distance", "predecessor"}}
			kept := entries[:0]
			for _, e := range entries {
				if reachableOnly && e.Distance == nil {
					continue
				}
				kept = append(kept, e)
				dist, pred := cellNone, cellNone
				if e.Distance != nil {
					dist = strconv.FormatFloat(*e.Distance, 'g', -1, 64)
				}
				if e.Predecessor != nil {
					pred = c.formatID(*e.Predecessor)
				}
				t.add(c.formatID(e.ID), dist, pred)
			}

			return render(cmd.OutOrStdout(), c.cfg.Output.Format, t, kept)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source identifier")
	cmd.Flags().BoolVar(&reachableOnly, "reachable-only", false, "omit unreachable vertices")
	qf.register(cmd)
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (c *CLI) pathCommand() *cobra.Command {
	var (
		qf             queryFlags
		source, target string
	)

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "One shortest path between two identifiers",
		Example: `  csrpath path --dataset karate --source 2 --target 34`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			src, err := c.parseID(source)
			if err != nil {
				return err
			}
			dst, err := c.parseID(target)
			if err != nil {
				return err
			}
			q, err := c.resolveQuery(cmd, &qf)
			if err != nil {
				return err
			}
			r, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			p, err := r.Path(ctx, src, dst, q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch c.cfg.Output.Format {
			case formatTable, "":
				ids := make([]string, len(p.Vertices))
				for i, id := range p.Vertices {
					ids[i] = c.formatID(id)
				}
				printSuccess(out, "%s → %s", c.formatID(src), c.formatID(dst))
				printKeyValue(out, "path", strings.Join(ids, " → "))
				printKeyValue(out, "weight", strconv.FormatFloat(p.Weight, 'g', -1, 64))
				printKeyValue(out, "hops", strconv.Itoa(p.Hops))
				if math.IsInf(q.MaxDistance, 1) {
					return nil
				}
				printDetail(out, "max distance %g", q.MaxDistance)
				return nil
			default:
				t := &table{header: []string{"step", "id"}}
				for i, id := range p.Vertices {
					t.add(strconv.Itoa(i), c.formatID(id))
				}
				return render(out, c.cfg.Output.Format, t, p)
			}
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source identifier")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target identifier")
	qf.register(cmd)
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			printKeyValue(out, "version", version)
			printKeyValue(out, "commit", commit)
			printKeyValue(out, "built", date)
			fmt.Fprintln(out)
		},
	}
}
