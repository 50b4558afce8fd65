// SPDX-License-Identifier: MIT

// Package cli implements the csrpath command-line interface.
//
// # Commands
//
//   - renumber: print the identifier ↔ dense index mapping (optionally the renumbered edges)
//   - sssp:     distances and predecessors from one source
//   - path:     one shortest path between two identifiers
//   - serve:    HTTP service over the loaded graph
//   - version:  build information
//
// # Configuration
//
// Settings come from built-in defaults, then an optional TOML file
// (--config), then flags. Results are cached under the XDG cache directory
// unless --no-cache is given or the config selects another backend.
//
// # Logging
//
// --verbose (-v) enables debug logging on stderr. The logger travels in the
// command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrpath/cache"
	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/edgelist"
	"github.com/katalvlaran/csrpath/pipeline"
)

const appName = "csrpath"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by `csrpath version`.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	cfg   Config
	flags flagValues
	stdin io.Reader
}

// flagValues are the raw global flag values; only flags the user set
// override the configuration.
type flagValues struct {
	configPath  string
	verbose     bool
	dataset     string
	input       string
	delimiter   string
	header      bool
	parser      string
	undirected  bool
	order       string
	parallelism int
	noCache     bool
	format      string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: DefaultConfig(), stdin: os.Stdin}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Shortest paths over renumbered edge lists",
		Long:          `csrpath renumbers 64-bit vertex identifiers to dense indices, builds a compressed sparse row graph and answers single-source shortest-path queries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.flags.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return c.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.dataset, "dataset", "", `bundled dataset ("karate")`)
	pf.StringVarP(&c.flags.input, "input", "i", "", `edge list file ("-" for stdin)`)
	pf.StringVar(&c.flags.delimiter, "delimiter", ",", "field delimiter")
	pf.BoolVar(&c.flags.header, "header", false, "skip the first input record")
	pf.StringVar(&c.flags.parser, "parser", "auto", "identifier parser: auto, integer or ipv4")
	pf.BoolVarP(&c.flags.undirected, "undirected", "u", false, "store every edge in both directions")
	pf.StringVar(&c.flags.order, "order", "sorted", "numbering order: sorted or first-seen")
	pf.IntVar(&c.flags.parallelism, "parallelism", 0, "worker count for renumbering and construction (0 = GOMAXPROCS)")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the result cache")
	pf.StringVarP(&c.flags.format, "format", "f", formatTable, "output format: table, csv or json")

	root.AddCommand(c.renumberCommand())
	root.AddCommand(c.ssspCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig applies the config file and then every flag the user set.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	if c.flags.configPath != "" {
		cfg, err := LoadConfig(c.flags.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	f := cmd.Flags()
	in, g := &c.cfg.Input, &c.cfg.Graph
	if f.Changed("dataset") {
		in.Dataset = c.flags.dataset
	}
	if f.Changed("input") {
		in.File, in.Dataset = c.flags.input, ""
	}
	if f.Changed("delimiter") {
		in.Delimiter = c.flags.delimiter
	}
	if f.Changed("header") {
		in.Header = c.flags.header
	}
	if f.Changed("parser") {
		in.Parser = c.flags.parser
	}
	if f.Changed("undirected") {
		g.Undirected = c.flags.undirected
	}
	if f.Changed("order") {
		g.Order = c.flags.order
	}
	if f.Changed("parallelism") {
		g.Parallelism = c.flags.parallelism
	}
	if f.Changed("no-cache") && c.flags.noCache {
		c.cfg.Cache.Backend = "none"
	}
	if f.Changed("format") {
		c.cfg.Output.Format = c.flags.format
	}

	return nil
}

// loadEdges reads the configured input.
func (c *CLI) loadEdges() ([]core.RawEdge, error) {
	in := c.cfg.Input
	switch {
	case in.Dataset == "karate":
		return edgelist.Karate(), nil
	case in.Dataset != "":
		return nil, fmt.Errorf("unknown dataset %q", in.Dataset)
	case in.File == "":
		return nil, fmt.Errorf("no input: pass --input FILE or --dataset karate")
	}

	opts, err := in.readOptions()
	if err != nil {
		return nil, err
	}
	if in.File == "-" {
		return edgelist.Read(c.stdin, opts...)
	}
	f, err := os.Open(in.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return edgelist.Read(f, opts...)
}

// snapshot loads the input and builds the graph. The karate dataset is
// always undirected.
func (c *CLI) snapshot(ctx context.Context) (*pipeline.Snapshot, error) {
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	edges, err := c.loadEdges()
	if err != nil {
		return nil, err
	}
	p.done("read edges", "count", len(edges))

	pcfg, err := c.cfg.Graph.pipelineConfig()
	if err != nil {
		return nil, err
	}
	if c.cfg.Input.Dataset == "karate" {
		pcfg.Undirected = true
	}

	p = newProgress(logger)
	snap, err := pipeline.Build(ctx, edges, pcfg)
	if err != nil {
		return nil, err
	}
	p.done("built graph",
		"vertices", snap.Graph.NumVertices(),
		"stored_edges", snap.Graph.NumEdges(),
		"order", snap.Mapping.Order())
	logger.Debug("graph fingerprint", "sha256", snap.Fingerprint)

	return snap, nil
}

// newRunner builds the snapshot and wraps it with the configured cache.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}

	return pipeline.NewRunner(snap, ch, c.cfg.Cache.TTL, loggerFromContext(ctx)), nil
}

// newCache opens the configured backend. A file cache without a usable
// directory degrades to no caching.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cc := c.cfg.Cache
	switch cc.Backend {
	case "none", "":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cc.Redis)
	case "file":
		dir := cc.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				loggerFromContext(ctx).Warn("no cache directory, caching disabled", "err", err)
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis or none)", cc.Backend)
	}
}

// cacheDir returns the cache directory using the XDG convention
// (~/.cache/csrpath/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cache", appName), nil
}

// parseID parses an identifier flag with the configured parser.
func (c *CLI) parseID(s string) (core.Identifier, error) {
	p, err := parserByName(c.cfg.Input.Parser)
	if err != nil {
		return 0, err
	}

	return p(s)
}

// formatID renders identifiers as dotted quads when the input is IPv4.
func (c *CLI) formatID(id core.Identifier) string {
	if c.cfg.Input.Parser == "ipv4" {
		if s, err := edgelist.FormatIPv4(id); err == nil {
			return s
		}
	}

	return id.String()
}
