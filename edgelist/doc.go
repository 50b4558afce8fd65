// SPDX-License-Identifier: MIT

// Package edgelist reads delimited edge lists into core.RawEdge records.
//
// Each record is `source, destination[, weight]`. Identifiers are turned into
// core.Identifier by an IDParser: ParseInteger for plain or 0x-prefixed
// integers, ParseIPv4 for dotted-quad addresses, or ParseAuto to pick per
// field. Records without a weight get the configured default
// (core.DefaultWeight unless overridden).
//
// Errors carry the 1-based input line:
//
//	ErrMalformedRecord  wrong field count, or unreadable input
//	ErrBadIdentifier    an identifier the parser rejects
//	ErrBadWeight        a weight that is not a finite number
//
// Karate returns the bundled Zachary karate-club graph (identifiers 1..34,
// 78 undirected edges), used by tests and the command-line demo.
package edgelist
