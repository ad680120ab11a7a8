// Package spec decodes the specification header of a reservoir-simulation
// summary file pair (the SMSPEC side) into a strongly-typed Specification.
//
// The header is a flat sequence of named keyword records, each a fixed-width
// scalar array (32-bit integers, 32-bit floats, or 8-character strings). The
// package ingests those (name, array) pairs, decodes each known keyword,
// assembles the result, validates cross-field consistency, and derives the
// binary record layout used to read the companion summary data file.
//
// # Basic Usage
//
//	s, err := spec.Parse(records)
//	if err != nil {
//	    return err
//	}
//	if err := s.CheckIntegrity(); err != nil {
//	    return err
//	}
//	columns := s.Dtype() // one column per represented vector
//
// The package performs no file I/O: records are supplied by the caller,
// typically produced by a reader of the Fortran unformatted header file.
// Unknown keywords are ignored for forward compatibility.
//
// Decoding is pure and touches no process-wide state, so concurrent Parse
// calls on independent inputs are safe. A built Specification is read-only
// except for the Separator field; mutating it while concurrently calling
// Dtype or Pos must be serialized by the caller.
package spec
