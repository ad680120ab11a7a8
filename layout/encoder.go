package layout

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/subsurfio/smspec/compress"
	"github.com/subsurfio/smspec/endian"
	"github.com/subsurfio/smspec/format"
	"github.com/subsurfio/smspec/internal/options"
)

// Encoder serializes a column layout into a blob.
//
// An Encoder is cheap to construct and stateless between Encode calls, so one
// instance can encode any number of layouts.
type Encoder struct {
	header *Header
	engine endian.EndianEngine
	codec  compress.Codec
}

// EncoderOption represents a functional option for configuring the Encoder.
type EncoderOption = options.Option[*Encoder]

// WithLittleEndian sets the encoder to use little-endian byte order,
// overriding the host-order default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithLittleEndian()
	})
}

// WithBigEndian sets the encoder to use big-endian byte order, for
// interoperability with consumers on big-endian systems.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithBigEndian()
	})
}

// WithNameCompression sets the compression type of the name payload.
// The default is Zstd.
func WithNameCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.header.Compression = comp
			return nil
		default:
			return fmt.Errorf("invalid name compression: %v", comp)
		}
	})
}

// NewEncoder creates a layout encoder.
//
// The byte order defaults to the host's, so encode and decode on the same
// machine go through without swaps; WithLittleEndian and WithBigEndian pin it
// for cross-machine blobs. The endianness bit in the header flag records the
// choice either way.
//
// Parameters:
//   - startDate: The specification start date carried in the blob header
//   - opts: Optional configuration (WithBigEndian, WithNameCompression, ...)
//
// Returns:
//   - *Encoder: The created encoder
//   - error: An error if the configuration is invalid
func NewEncoder(startDate time.Time, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		header: NewHeader(startDate),
	}
	if endian.IsNativeBigEndian() {
		e.header.WithBigEndian()
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	e.engine = e.header.Engine()

	codec, err := compress.CreateCodec(e.header.Compression, "names")
	if err != nil {
		return nil, err
	}
	e.codec = codec

	return e, nil
}

// Encode serializes the given columns into a layout blob.
//
// Column byte offsets are assigned cumulatively in column order, so the
// resulting entries describe one packed record of RecordSize bytes.
//
// Parameters:
//   - columns: Ordered column descriptors, e.g. from Specification.Dtype
//
// Returns:
//   - []byte: The encoded blob
//   - error: Name payload compression error
func (e *Encoder) Encode(columns []Column) ([]byte, error) {
	entries := make([]ColumnEntry, len(columns))
	offset := 0
	for i, column := range columns {
		entries[i] = NewColumnEntry(column, offset)
		offset += entries[i].Width
	}

	namePayload, err := e.encodeNames(columns)
	if err != nil {
		return nil, err
	}

	header := *e.header
	header.ColumnCount = uint32(len(columns)) //nolint: gosec
	header.RecordSize = uint32(offset)        //nolint: gosec
	header.NameOffset = uint32(HeaderSize + len(entries)*ColumnEntrySize)

	blob := make([]byte, int(header.NameOffset)+len(namePayload))
	copy(blob, header.Bytes())

	pos := EntryOffset
	for i := range entries {
		pos = entries[i].WriteToSlice(blob, pos, e.engine)
	}
	copy(blob[pos:], namePayload)

	return blob, nil
}

// encodeNames builds the compressed name payload: each column name
// length-prefixed with a uvarint, in entry order.
func (e *Encoder) encodeNames(columns []Column) ([]byte, error) {
	var raw []byte
	for _, column := range columns {
		raw = binary.AppendUvarint(raw, uint64(len(column.Name)))
		raw = append(raw, column.Name...)
	}

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress name payload: %w", err)
	}

	return compressed, nil
}
