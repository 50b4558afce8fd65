// SPDX-License-Identifier: MIT

package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrpath/core"
)

// Read parses every record of r into a RawEdge, in input order.
// Empty lines and comment lines are skipped. Fields are trimmed of
// surrounding whitespace.
func Read(r io.Reader, opts ...Option) ([]core.RawEdge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.Comment = o.Comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var edges []core.RawEdge
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return edges, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, pe.StartLine, pe.Err)
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if o.Header {
				continue
			}
		}

		e, err := o.record(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		edges = append(edges, e)
	}
}

func (o *Options) record(rec []string) (core.RawEdge, error) {
	if len(rec) != 2 && len(rec) != 3 {
		return core.RawEdge{}, fmt.Errorf("%w: want 2 or 3 fields, got %d", ErrMalformedRecord, len(rec))
	}
	src, err := o.Parser(strings.TrimSpace(rec[0]))
	if err != nil {
		return core.RawEdge{}, err
	}
	dst, err := o.Parser(strings.TrimSpace(rec[1]))
	if err != nil {
		return core.RawEdge{}, err
	}
	w := o.DefaultWeight
	if len(rec) == 3 {
		field := strings.TrimSpace(rec[2])
		w, err = strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return core.RawEdge{}, fmt.Errorf("%w: %q", ErrBadWeight, field)
		}
	}

	return core.RawEdge{Source: src, Destination: dst, Weight: w}, nil
}

// Write emits edges as `source,destination,weight` records using the
// delimiter of opts; identifiers are written in decimal.
func Write(w io.Writer, edges []core.RawEdge, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	cw := csv.NewWriter(w)
	cw.Comma = o.Delimiter
	rec := make([]string, 3)
	for _, e := range edges {
		rec[0] = e.Source.String()
		rec[1] = e.Destination.String()
		rec[2] = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
