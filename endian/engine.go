// Package endian provides the byte order used by every tscodec wire buffer.
//
// The server protocol transmits all multi-byte values in network order
// (big-endian). This package exposes that order through the EndianEngine
// interface, which combines binary.ByteOrder and binary.AppendByteOrder so
// encoders can either write into pre-sized buffers or append.
//
//	engine := endian.Network()
//	engine.PutUint64(buf[off:], uint64(ts))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Network returns the engine for network byte order (big-endian), which is
// the only order used on the wire.
func Network() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeNetworkOrder reports whether the host already stores integers in
// network byte order.
func IsNativeNetworkOrder() bool {
	return CheckEndianness() == binary.BigEndian
}

// PutFloat32 writes the IEEE-754 single precision bits of v into b[:4].
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// Float32 reads IEEE-754 single precision bits from b[:4].
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat64 writes the IEEE-754 double precision bits of v into b[:8].
func PutFloat64(engine EndianEngine, b []byte, v float64) {
	engine.PutUint64(b, math.Float64bits(v))
}

// Float64 reads IEEE-754 double precision bits from b[:8].
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
