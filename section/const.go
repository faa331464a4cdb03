package section

const (
	// MagicNumber identifies a frame ("TC").
	MagicNumber uint16 = 0x5443
	// Version is the only frame layout version understood by this package.
	Version uint8 = 1

	// FixedHeaderSize is the header size excluding the per-column type tags.
	FixedHeaderSize = 11
	// LengthPrefixSize is the size of each payload length prefix.
	LengthPrefixSize = 4
	// ChecksumSize is the size of the trailing xxHash64 checksum.
	ChecksumSize = 8

	// MaxColumns is the largest column count the header can describe.
	MaxColumns = 1<<16 - 1

	ChecksumMask         = 0x01 // Mask for checksum bit (bit 0)
	TimeCompressionMask  = 0x0F // Mask for time payload compression (bits 0-3)
	ValueCompressionMask = 0xF0 // Mask for value payload compression (bits 4-7)
)
