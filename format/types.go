package format

type (
	// Kind identifies the scalar kind of a keyword array or layout column.
	Kind uint8
	// CompressionType identifies the compression applied to a layout blob's
	// name payload.
	CompressionType uint8
)

const (
	KindInte Kind = 0x1 // KindInte represents 32-bit signed integers.
	KindReal Kind = 0x2 // KindReal represents 32-bit floats.
	KindChar Kind = 0x3 // KindChar represents 8-character fixed-width strings.
	KindDoub Kind = 0x4 // KindDoub represents 64-bit floats.
	KindLogi Kind = 0x5 // KindLogi represents 32-bit booleans.
	KindMess Kind = 0x6 // KindMess represents zero-width message entries.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindInte:
		return "INTE"
	case KindReal:
		return "REAL"
	case KindChar:
		return "CHAR"
	case KindDoub:
		return "DOUB"
	case KindLogi:
		return "LOGI"
	case KindMess:
		return "MESS"
	default:
		return "Unknown"
	}
}

// Size returns the byte width of one scalar of this kind inside a PARAMS
// record. CHAR slots are the conventional 8 bytes, MESS entries carry no data.
func (k Kind) Size() int {
	switch k {
	case KindInte, KindReal, KindLogi:
		return 4
	case KindDoub:
		return 8
	case KindChar:
		return 8
	case KindMess:
		return 0
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
