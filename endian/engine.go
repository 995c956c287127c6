// Package endian provides byte order utilities for binary encoding and decoding.
//
// It extends Go's standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface, so callers can both
// read/write and append without juggling two interfaces.
//
// The wire format tbf implements is fixed big-endian, so callers should only
// ever construct GetBigEndianEngine(). framing.Writer appends integers
// through this engine; framing.Reader decodes them with binary.BigEndian
// directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
