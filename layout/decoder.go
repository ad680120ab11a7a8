package layout

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/subsurfio/smspec/compress"
	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/internal/hash"
)

// Layout is a decoded layout blob: the ordered columns plus an id-keyed index
// for O(1) lookup by name.
type Layout struct {
	// Columns are the decoded column descriptors, in record order.
	Columns []Column

	// StartDate is the specification start date carried by the header.
	StartDate time.Time

	// RecordSize is the total byte size of one record under this layout.
	RecordSize int

	// Compression is the name payload compression the blob was written with.
	Compression format.CompressionType

	byID map[uint64]ColumnEntry
}

// Decode parses a layout blob.
//
// The decoder validates the header, parses the entry section, decompresses
// the name payload, and verifies that every stored name hashes to its entry's
// id, so a corrupted or misordered payload is detected rather than silently
// misattributing columns.
//
// Parameters:
//   - data: The raw blob bytes (from Encoder.Encode or storage)
//
// Returns:
//   - *Layout: The decoded layout
//   - error: Header, entry, or name payload validation errors
func Decode(data []byte) (*Layout, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Engine()
	count := int(header.ColumnCount)

	entryEnd := EntryOffset + count*ColumnEntrySize
	if int(header.NameOffset) != entryEnd {
		return nil, errs.ErrInvalidColumnOffset
	}
	if len(data) < entryEnd {
		return nil, errs.ErrInvalidColumnEntry
	}

	entries := make([]ColumnEntry, count)
	for i := 0; i < count; i++ {
		start := EntryOffset + i*ColumnEntrySize
		entries[i], err = ParseColumnEntry(data[start:start+ColumnEntrySize], engine)
		if err != nil {
			return nil, err
		}
	}

	names, err := decodeNames(data[entryEnd:], header.Compression, count)
	if err != nil {
		return nil, err
	}

	layout := &Layout{
		Columns:     make([]Column, count),
		StartDate:   header.StartDateAsTime(),
		RecordSize:  int(header.RecordSize),
		Compression: header.Compression,
		byID:        make(map[uint64]ColumnEntry, count),
	}

	for i, entry := range entries {
		if hash.ID(names[i]) != entry.NameID {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnNameMismatch, names[i])
		}

		layout.Columns[i] = Column{Name: names[i], Kind: entry.Kind}
		layout.byID[entry.NameID] = entry
	}

	return layout, nil
}

// decodeNames decompresses and splits the name payload.
func decodeNames(payload []byte, comp format.CompressionType, count int) ([]string, error) {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("unsupported name compression: %w", err)
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress name payload: %w", err)
	}

	names := make([]string, 0, count)
	for len(raw) > 0 {
		length, n := binary.Uvarint(raw)
		if n <= 0 || uint64(len(raw)-n) < length {
			return nil, errs.ErrInvalidNamePayload
		}
		names = append(names, string(raw[n:n+int(length)]))
		raw = raw[n+int(length):]
	}

	if len(names) != count {
		return nil, fmt.Errorf("%w: expected %d names, got %d",
			errs.ErrInvalidNamePayload, count, len(names))
	}

	return names, nil
}

// Entry looks up the placement of a column by name.
func (l *Layout) Entry(name string) (ColumnEntry, bool) {
	entry, ok := l.byID[hash.ID(name)]
	return entry, ok
}

// OffsetOf returns the byte offset of the named column inside one record.
// The second return is false when the layout has no such column.
func (l *Layout) OffsetOf(name string) (int, bool) {
	entry, ok := l.Entry(name)
	if !ok {
		return 0, false
	}

	return entry.Offset, true
}
