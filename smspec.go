// Package smspec decodes the specification header of a reservoir-simulation
// summary file pair into a strongly-typed specification object, and derives
// the binary record layout downstream readers use to parse the companion
// summary data file.
//
// # Basic Usage
//
// Decoding a specification from keyword records:
//
//	records := []spec.Record{
//	    {Name: "DIMENS", Values: spec.Ints(2, 20, 20, 10, 0, 0)},
//	    {Name: "KEYWORDS", Values: spec.Chars("WOPR    ", "WOPT    ")},
//	    // ...
//	}
//	s, err := smspec.Parse(records)
//	if err != nil {
//	    return err
//	}
//	if err := s.CheckIntegrity(); err != nil {
//	    return err
//	}
//
// Deriving and shipping the record layout:
//
//	blob, _ := smspec.EncodeLayout(s)
//	l, _ := smspec.DecodeLayout(blob)
//	offset, ok := l.OffsetOf("WOPR.W1")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the spec and
// layout packages, which carry the full API.
package smspec

import (
	"github.com/subsurfio/smspec/layout"
	"github.com/subsurfio/smspec/spec"
)

// Parse decodes an ordered sequence of keyword records into a Specification.
// See spec.Parse for the full contract.
func Parse(records []spec.Record, opts ...spec.ParseOption) (*spec.Specification, error) {
	return spec.Parse(records, opts...)
}

// ParseMap decodes keyword records supplied as a map.
// See spec.ParseMap for the full contract.
func ParseMap(records map[string]spec.Array, opts ...spec.ParseOption) (*spec.Specification, error) {
	return spec.ParseMap(records, opts...)
}

// EncodeLayout serializes the record layout derived from the specification
// into a layout blob, using the specification's start date and current
// separator.
func EncodeLayout(s *spec.Specification, opts ...layout.EncoderOption) ([]byte, error) {
	encoder, err := layout.NewEncoder(s.StartDate, opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(s.Dtype())
}

// DecodeLayout parses a layout blob produced by EncodeLayout.
func DecodeLayout(data []byte) (*layout.Layout, error) {
	return layout.Decode(data)
}

// ColumnID converts a column name to its 64-bit hash identifier, as stored in
// layout blob entries.
func ColumnID(name string) uint64 {
	return layout.ColumnID(name)
}
