// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csrpath/core"
)

// Option configures Read.
type Option func(*Options)

// Options holds Read settings. Invalid values are recorded and surfaced as
// ErrOptionViolation by Read.
type Options struct {
	// Delimiter separates fields. Default ','.
	Delimiter rune

	// Comment starts a comment line when it is the first character. 0 disables.
	Comment rune

	// Header skips the first record.
	Header bool

	// Parser converts identifier fields. Default ParseAuto.
	Parser IDParser

	// DefaultWeight is used for two-column records.
	DefaultWeight float64

	err error
}

// DefaultOptions returns comma-delimited, '#'-commented, headerless settings
// with ParseAuto and core.DefaultWeight.
func DefaultOptions() Options {
	return Options{
		Delimiter:     ',',
		Comment:       '#',
		Parser:        ParseAuto,
		DefaultWeight: core.DefaultWeight,
	}
}

// WithDelimiter sets the field delimiter; '\t' reads TSV. Quotes, newlines
// and the Unicode replacement character are rejected.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		if r == '"' || r == '\r' || r == '\n' || r == 0xFFFD || r == 0 {
			o.err = fmt.Errorf("%w: invalid delimiter %q", ErrOptionViolation, r)
			return
		}
		o.Delimiter = r
	}
}

// WithComment sets the comment character; 0 disables comments.
func WithComment(r rune) Option {
	return func(o *Options) {
		o.Comment = r
	}
}

// WithHeader skips the first record.
func WithHeader() Option {
	return func(o *Options) {
		o.Header = true
	}
}

// WithParser sets the identifier parser.
func WithParser(p IDParser) Option {
	return func(o *Options) {
		if p == nil {
			o.err = fmt.Errorf("%w: nil parser", ErrOptionViolation)
			return
		}
		o.Parser = p
	}
}

// WithDefaultWeight sets the weight of records without a weight column.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: default weight must be finite, got %v", ErrOptionViolation, w)
			return
		}
		o.DefaultWeight = w
	}
}
