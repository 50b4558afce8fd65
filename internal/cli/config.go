// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/csrpath/cache"
	"github.com/katalvlaran/csrpath/edgelist"
	"github.com/katalvlaran/csrpath/pipeline"
	"github.com/katalvlaran/csrpath/renumber"
	"github.com/katalvlaran/csrpath/sssp"
)

// Config is the TOML configuration file. Command-line flags override it.
//
//	[input]
//	file = "edges.tsv"
//	delimiter = "\t"
//	parser = "ipv4"
//
//	[graph]
//	undirected = true
//	order = "sorted"
//
//	[cache]
//	backend = "redis"
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	Input  InputConfig  `toml:"input"`
	Graph  GraphConfig  `toml:"graph"`
	Query  QueryConfig  `toml:"query"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
}

// InputConfig selects and parses the edge list.
type InputConfig struct {
	// Dataset names a bundled edge list ("karate"); it wins over File.
	Dataset       string  `toml:"dataset"`
	File          string  `toml:"file"`
	Delimiter     string  `toml:"delimiter"`
	Comment       string  `toml:"comment"`
	Header        bool    `toml:"header"`
	Parser        string  `toml:"parser"`
	DefaultWeight float64 `toml:"default_weight"`
}

// GraphConfig mirrors pipeline.Config.
type GraphConfig struct {
	Undirected  bool   `toml:"undirected"`
	Order       string `toml:"order"`
	Parallelism int    `toml:"parallelism"`
	MaxVertices int64  `toml:"max_vertices"`
}

// QueryConfig holds default query parameters. An absent max_distance means
// no cap, while 0 is a valid cap. A zero inf_edge_threshold means every edge
// is passable.
type QueryConfig struct {
	Frontier         string   `toml:"frontier"`
	MaxDistance      *float64 `toml:"max_distance"`
	InfEdgeThreshold float64  `toml:"inf_edge_threshold"`
}

// CacheConfig selects the result cache.
type CacheConfig struct {
	// Backend is "file", "redis" or "none".
	Backend string            `toml:"backend"`
	Dir     string            `toml:"dir"`
	TTL     time.Duration     `toml:"ttl"`
	Redis   cache.RedisConfig `toml:"redis"`
}

// ServerConfig configures `csrpath serve`.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	QueryTimeout    time.Duration `toml:"query_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// OutputConfig selects the result format: "table", "csv" or "json".
type OutputConfig struct {
	Format string `toml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			Delimiter:     ",",
			Comment:       "#",
			Parser:        "auto",
			DefaultWeight: 1,
		},
		Graph: GraphConfig{Order: renumber.OrderSorted.String()},
		Query: QueryConfig{Frontier: sssp.FrontierBinaryHeap.String()},
		Cache: CacheConfig{Backend: "file", TTL: 24 * time.Hour},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			QueryTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Output: OutputConfig{Format: formatTable},
	}
}

// LoadConfig decodes path over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// readOptions converts the input section into edgelist options.
func (c InputConfig) readOptions() ([]edgelist.Option, error) {
	parser, err := parserByName(c.Parser)
	if err != nil {
		return nil, err
	}
	opts := []edgelist.Option{
		edgelist.WithParser(parser),
		edgelist.WithDefaultWeight(c.DefaultWeight),
	}
	if c.Delimiter != "" {
		r := []rune(c.Delimiter)
		if c.Delimiter == `\t` {
			r = []rune{'\t'}
		}
		if len(r) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
		}
		opts = append(opts, edgelist.WithDelimiter(r[0]))
	}
	switch r := []rune(c.Comment); len(r) {
	case 0:
		opts = append(opts, edgelist.WithComment(0))
	case 1:
		opts = append(opts, edgelist.WithComment(r[0]))
	default:
		return nil, fmt.Errorf("comment must be a single character, got %q", c.Comment)
	}
	if c.Header {
		opts = append(opts, edgelist.WithHeader())
	}

	return opts, nil
}

func parserByName(name string) (edgelist.IDParser, error) {
	switch name {
	case "", "auto":
		return edgelist.ParseAuto, nil
	case "integer", "int":
		return edgelist.ParseInteger, nil
	case "ipv4":
		return edgelist.ParseIPv4, nil
	default:
		return nil, fmt.Errorf("unknown identifier parser %q (want auto, integer or ipv4)", name)
	}
}

// pipelineConfig converts the graph section.
func (c GraphConfig) pipelineConfig() (pipeline.Config, error) {
	order, err := renumber.ParseOrder(c.Order)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		Order:       order,
		Undirected:  c.Undirected,
		Parallelism: c.Parallelism,
		MaxVertices: c.MaxVertices,
	}, nil
}

// query converts the query section.
func (c QueryConfig) query() (pipeline.Query, error) {
	q := pipeline.DefaultQuery()
	f, err := sssp.ParseFrontier(c.Frontier)
	if err != nil {
		return q, err
	}
	q.Frontier = f
	if c.MaxDistance != nil {
		q.MaxDistance = *c.MaxDistance
	}
	if c.InfEdgeThreshold > 0 {
		q.InfEdgeThreshold = c.InfEdgeThreshold
	}

	return q, nil
}
