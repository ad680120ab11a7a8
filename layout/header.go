package layout

import (
	"time"
	"unsafe"

	"github.com/subsurfio/smspec/endian"
	"github.com/subsurfio/smspec/errs"
	"github.com/subsurfio/smspec/format"
)

// Header is the fixed-size header at the start of a layout blob.
type Header struct {
	// Flag packs the magic number (bits 4-15) and the endianness bit.
	// It is always read and written little-endian, so the byte order of the
	// rest of the blob can be determined from it.
	Flag uint16 // byte offset 0-1

	// Compression is the compression type of the name payload.
	Compression format.CompressionType // byte offset 2

	// ColumnCount is the number of columns described by the blob.
	ColumnCount uint32 // byte offset 4-7

	// RecordSize is the total byte size of one record laid out by these
	// columns, i.e. the sum of all column widths.
	RecordSize uint32 // byte offset 8-11

	// NameOffset is the byte offset to the start of the compressed name
	// payload, directly after the entry section.
	NameOffset uint32 // byte offset 12-15

	// StartDate is the specification start date as a unix timestamp in
	// microseconds.
	StartDate int64 // byte offset 16-23
}

// NewHeader creates a Header with the given start date, little-endian byte
// order and Zstd name compression. Counts and offsets are set by the encoder.
func NewHeader(startDate time.Time) *Header {
	return &Header{
		Flag:        MagicLayoutV1Opt,
		Compression: format.CompressionZstd,
		StartDate:   startDate.UnixMicro(),
	}
}

// IsValidMagicNumber reports whether the flag carries the layout magic.
func (h *Header) IsValidMagicNumber() bool {
	return h.Flag&MagicNumberMask == MagicLayoutV1Opt
}

// IsBigEndian reports whether the blob body uses big-endian byte order.
func (h *Header) IsBigEndian() bool {
	return h.Flag&EndiannessMask != 0
}

// WithBigEndian marks the blob body as big-endian.
func (h *Header) WithBigEndian() {
	h.Flag |= EndiannessMask
}

// WithLittleEndian marks the blob body as little-endian.
func (h *Header) WithLittleEndian() {
	h.Flag &^= EndiannessMask
}

// Engine returns the endian engine matching the endianness bit.
func (h *Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number and the compression type.
func (h *Header) Validate() error {
	if !h.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompression
	}

	return nil
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag is always little-endian; it decides the engine for the rest.
	h.Flag = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Compression = format.CompressionType(data[2])

	engine := h.Engine()
	h.ColumnCount = engine.Uint32(data[4:8])
	h.RecordSize = engine.Uint32(data[8:12])
	h.NameOffset = engine.Uint32(data[12:16])

	startDate := engine.Uint64(data[16:24])
	h.StartDate = *(*int64)(unsafe.Pointer(&startDate))

	return h.Validate()
}

// Bytes serializes the header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag)
	b[1] = byte(h.Flag >> 8)
	b[2] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.ColumnCount)
	engine.PutUint32(b[8:12], h.RecordSize)
	engine.PutUint32(b[12:16], h.NameOffset)
	// Bitwise conversion, timestamps are stored as-is in binary.
	engine.PutUint64(b[16:24], *(*uint64)(unsafe.Pointer(&h.StartDate)))

	return b
}

// StartDateAsTime returns the start date as a time.Time object.
func (h *Header) StartDateAsTime() time.Time {
	return time.UnixMicro(h.StartDate).UTC()
}

// ParseHeader parses a Header from a byte slice of at least HeaderSize bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
