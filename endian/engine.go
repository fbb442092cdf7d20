// Package endian provides the byte order used when runseq turns values into bytes.
//
// runseq keeps no wire format, but fingerprints hash a byte form of the runs, and that
// byte form must not depend on the host. Canonical returns the fixed order used for it.
//
//	engine := endian.Canonical()
//	buf = engine.AppendUint64(buf, bits)
//
// All functions in this package are safe for concurrent use; the returned engines are
// stateless.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, and is satisfied
// by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Canonical returns the byte order used for fingerprints: little-endian on every host.
func Canonical() EndianEngine {
	return GetLittleEndianEngine()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// AppendWords appends each word to dst in the engine's byte order, 8 bytes per word.
func AppendWords(engine EndianEngine, dst []byte, words ...uint64) []byte {
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}
