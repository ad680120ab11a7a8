package layout

import (
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/internal/hash"
)

// Column is one named column of a summary record: the two fixed step
// counters are KindInte, every vector column is KindReal.
type Column struct {
	Name string
	Kind format.Kind
}

// ID returns the 64-bit identifier of the column, the xxHash64 of its name.
func (c Column) ID() uint64 {
	return hash.ID(c.Name)
}

// ColumnID converts a column name to its 64-bit hash identifier. Use it to
// pre-compute ids for frequently looked-up columns.
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
