package spec

import "github.com/subsurfio/smspec/format"

// Array is one keyword record's payload: a homogeneous fixed-width scalar
// array. Construct with Ints, Reals, Doubs, or Chars; the zero value is an
// empty array of no particular kind.
type Array struct {
	kind  format.Kind
	ints  []int32
	reals []float32
	doubs []float64
	chars []string
}

// Record is the ingestion unit: a keyword name paired with its array.
type Record struct {
	Name   string
	Values Array
}

// Ints builds an INTE array of 32-bit signed integers.
func Ints(values ...int32) Array {
	return Array{kind: format.KindInte, ints: values}
}

// Reals builds a REAL array of 32-bit floats.
func Reals(values ...float32) Array {
	return Array{kind: format.KindReal, reals: values}
}

// Doubs builds a DOUB array of 64-bit floats.
func Doubs(values ...float64) Array {
	return Array{kind: format.KindDoub, doubs: values}
}

// Chars builds a CHAR array of fixed-width string slots. Slots keep their
// trailing padding; decoders trim it where the keyword calls for trimming.
func Chars(values ...string) Array {
	return Array{kind: format.KindChar, chars: values}
}

// Kind returns the scalar kind of the array.
func (a Array) Kind() format.Kind {
	return a.kind
}

// Len returns the number of scalar slots in the array.
func (a Array) Len() int {
	switch a.kind {
	case format.KindInte:
		return len(a.ints)
	case format.KindReal:
		return len(a.reals)
	case format.KindDoub:
		return len(a.doubs)
	case format.KindChar:
		return len(a.chars)
	default:
		return 0
	}
}
