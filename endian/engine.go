// Package endian gives the rest of bcol one interface for reading, writing,
// and appending fixed-width integers, instead of juggling binary.ByteOrder
// and binary.AppendByteOrder separately.
//
// The column wire format's delta arithmetic is defined over little-endian
// bytes regardless of the host's own byte order, so nearly everything in
// this module reaches for GetLittleEndianEngine():
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, delta)
//
// GetBigEndianEngine() exists for the rarer case of talking to a system that
// serializes its own values big-endian; it is otherwise unused internally.
//
// Appending through EndianEngine avoids the scratch-array-then-append
// allocation that PutUint64-into-a-temp-slice requires:
//
//	buf = engine.AppendUint64(buf, value)      // one append, no temp slice
//
//	var tmp [8]byte
//	engine.PutUint64(tmp[:], value)
//	buf = append(buf, tmp[:]...)               // extra copy
//
// Both returned engines are stateless package-level values and safe for
// concurrent use from multiple goroutines.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is binary.ByteOrder plus binary.AppendByteOrder. Both
// binary.LittleEndian and binary.BigEndian already satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the byte order of the running process by
// inspecting how a known uint16 value lays out in memory.
func CheckEndianness() binary.ByteOrder {
	var probe uint16 = 0x0100 // 256: LSB is the zero byte, MSB is 0x01

	leadByte := (*[2]byte)(unsafe.Pointer(&probe))[0]
	if leadByte == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's own byte
// order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the engine the column codec's delta
// arithmetic is defined in terms of.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the engine for interoperating with a
// big-endian host.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
