package layout

import (
	"github.com/subsurfio/smspec/endian"
	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
)

// ColumnEntry records the binary placement of a single column in the entry
// section of a layout blob. It is a fixed size of 16 bytes.
type ColumnEntry struct {
	// NameID is the xxHash64 hash of the column name string.
	//
	// Offset: 0, Size: 8 bytes
	NameID uint64

	// Offset is the byte offset of this column inside one record.
	//
	// Offset: 8, Size: 4 bytes (stored as uint32 on disk)
	Offset int

	// Kind is the scalar kind of the column.
	//
	// Offset: 12, Size: 1 byte
	Kind format.Kind

	// Width is the byte width of the column, Kind.Size() at encode time.
	//
	// Offset: 13, Size: 1 byte. Bytes 14-15 are reserved.
	Width int
}

// NewColumnEntry creates an entry for the given column at the given byte
// offset inside a record.
func NewColumnEntry(column Column, offset int) ColumnEntry {
	return ColumnEntry{
		NameID: column.ID(),
		Offset: offset,
		Kind:   column.Kind,
		Width:  column.Kind.Size(),
	}
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the next
// write position. The slice must have room for ColumnEntrySize bytes at
// offset.
func (e *ColumnEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.NameID)
	engine.PutUint32(data[offset+8:offset+12], uint32(e.Offset)) //nolint: gosec
	data[offset+12] = byte(e.Kind)
	data[offset+13] = byte(e.Width)
	data[offset+14] = 0
	data[offset+15] = 0

	return offset + ColumnEntrySize
}

// ParseColumnEntry parses a ColumnEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be at least 16 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - ColumnEntry: Parsed entry
//   - error: ErrInvalidColumnEntry if data is too short
func ParseColumnEntry(data []byte, engine endian.EndianEngine) (ColumnEntry, error) {
	if len(data) < ColumnEntrySize {
		return ColumnEntry{}, errs.ErrInvalidColumnEntry
	}

	return ColumnEntry{
		NameID: engine.Uint64(data[0:8]),
		Offset: int(engine.Uint32(data[8:12])),
		Kind:   format.Kind(data[12]),
		Width:  int(data[13]),
	}, nil
}
