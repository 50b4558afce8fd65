// SPDX-License-Identifier: MIT

// Package pipeline joins renumbering, CSR construction and shortest-path
// queries behind original identifiers.
//
// Build turns raw edges into an immutable Snapshot: the identifier mapping,
// the CSR graph and a content fingerprint. Snapshot queries accept and return
// core.Identifier values; dense indices never leave the package unless the
// caller asks for the underlying DistanceArray.
//
// Runner adds a result cache (keyed by fingerprint, source and query
// parameters) and structured logging on top of a Snapshot. Both the CLI and
// the HTTP service use it.
package pipeline
