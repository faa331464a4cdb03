// Package section defines the binary header of a transport frame.
//
// A frame wraps the two buffers produced by the encoding package so a
// transport can send them as one self-describing message:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (11 bytes + 1 byte per column)        │
//	│  - Magic (2 bytes) 0x5443                    │
//	│  - Version (1 byte)                          │
//	│  - Options (1 byte): bit 0 checksum          │
//	│  - Compression (1 byte): bits 0-3 time,      │
//	│    bits 4-7 value                            │
//	│  - Count (4 bytes): batch size               │
//	│  - Columns (2 bytes): column count           │
//	│  - Types (1 byte per column): wire tags      │
//	├──────────────────────────────────────────────┤
//	│ Time payload length (4 bytes) + payload      │
//	├──────────────────────────────────────────────┤
//	│ Value payload length (4 bytes) + payload     │
//	├──────────────────────────────────────────────┤
//	│ Checksum (8 bytes, xxHash64, optional)       │
//	└──────────────────────────────────────────────┘
//
// All multi-byte fields are big-endian.
package section
