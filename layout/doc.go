// Package layout serializes the record layout derived from a summary
// specification into a compact binary blob, so the reader of the companion
// summary data file can map PARAMS records to named columns without
// re-decoding the SMSPEC header.
//
// # Blob structure
//
//	+--------------------+----------------------+---------------------+
//	| Header (24 bytes)  | Column entries       | Name payload        |
//	|                    | (16 bytes each)      | (compressed)        |
//	+--------------------+----------------------+---------------------+
//
// The header carries a magic number, the byte order, the name-payload
// compression type, the column count, the total record size, and the
// specification start date. Each column entry holds the xxHash64 of the
// column name, the column's byte offset inside one record, its scalar kind,
// and its width. The name payload lists every column name length-prefixed,
// in entry order, and is compressed with None, Zstd, S2 or LZ4.
//
// Hashing gives O(1) column lookup by name; the stored names let the decoder
// verify ids and survive hash collisions by detection rather than silent
// misattribution.
//
// # Usage
//
//	encoder, _ := layout.NewEncoder(s.StartDate,
//	    layout.WithNameCompression(format.CompressionZstd),
//	)
//	blob, _ := encoder.Encode(s.Dtype())
//
//	l, _ := layout.Decode(blob)
//	offset, ok := l.OffsetOf("WOPR.W1")
package layout
