// Package csrpath turns edge lists keyed by arbitrary 64-bit identifiers
// into compact graphs and answers single-source shortest-path queries
// over them.
//
// 🚀 What is csrpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Renumbering: sparse 64-bit identifiers → dense 32-bit indices
//		• CSR construction: immutable compressed-sparse-row graphs
//		• Shortest paths: label-setting search with pooled workspaces
//		• Path reconstruction: predecessor walks back to the source
//		• Traversal: BFS hop counts over the same CSR graph
//
// ✨ Design
//
//   - Deterministic – the same input and options give the same numbering,
//     the same graph and the same predecessors, regardless of parallelism
//   - Immutable sharing – graphs and mappings are read-only after construction
//     and safe to query from many goroutines
//   - Explicit errors – sentinel errors per package, wrapped with context
//
// 📦 Packages:
//
//	core/      — Identifier, VertexIndex, CSRGraph, DistanceArray
//	renumber/  — identifier ↔ dense index mapping (sorted or first-seen)
//	builder/   — CSR construction from index pairs + deterministic fixture topologies
//	sssp/      — single-source shortest paths, Engine, Verify
//	path/      — path reconstruction and path weights
//	bfs/       — breadth-first hop counts over CSR
//	edgelist/  — CSV/TSV ingestion, IPv4 identifiers, bundled karate-club data
//	pipeline/  — renumber + build + query in original identifiers, cached Runner
//	cache/     — null, file and Redis result caches
//
// Quick example:
//
//	1 ──2── 7          raw identifiers {1, 7, 900}
//	 \       \         dense indices   {0, 1, 2}
//	  ──9──── 900      dist(1 → 900) = 9 via the direct edge
//
// The csrpath command (cmd/csrpath) exposes renumbering, queries and an
// HTTP service over the same packages.
//
//	go install github.com/katalvlaran/csrpath/cmd/csrpath@latest
package csrpath
