package layout

const (
	// Bit masks for the packed header flag.
	EndiannessMask  = 0x0002 // endianness bit (set = big-endian)
	MagicNumberMask = 0xFFF0 // magic number (bits 4-15)

	// MagicLayoutV1Opt is the version 1 magic number for the layout blob.
	MagicLayoutV1Opt = 0xEC10
)

// Offsets and section sizes in the layout blob.
const (
	HeaderSize      = 24         // fixed header size in bytes
	ColumnEntrySize = 16         // fixed column entry size in bytes
	EntryOffset     = HeaderSize // byte offset where the entry section starts
)
