// Package errs centralizes the sentinel error values used across smspec.
//
// Errors returned by the decoder wrap one of these sentinels with additional
// context, so callers can classify failures with errors.Is while still getting
// a useful message.
package errs

import "errors"

// Specification decoding faults.
var (
	// ErrIllFormedSpecification reports a single keyword array whose shape or
	// scalar kind does not match what the keyword requires. Decoding of the
	// input stream is aborted.
	ErrIllFormedSpecification = errors.New("ill-formed specification")

	// ErrInconsistentSpecification reports a cross-field relationship violation
	// detected by Specification.CheckIntegrity, such as a parallel array whose
	// length disagrees with NLIST or a partially supplied optional block.
	ErrInconsistentSpecification = errors.New("inconsistent specification")
)

// Layout blob faults.
var (
	ErrInvalidHeaderSize   = errors.New("invalid layout header size")
	ErrInvalidMagicNumber  = errors.New("invalid layout magic number")
	ErrInvalidColumnCount  = errors.New("invalid layout column count")
	ErrInvalidColumnEntry  = errors.New("invalid layout column entry")
	ErrInvalidNamePayload  = errors.New("invalid layout name payload")
	ErrColumnNameMismatch  = errors.New("column name does not match its id")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidColumnOffset = errors.New("invalid layout column offset")
)
