package fourcc

import (
	"encoding/binary"
	"fmt"
)

// Code is a four-character code: a 4-byte tag the Security framework uses
// to identify record and attribute types. The underlying integer is the
// native-endian reinterpretation of the 4 bytes, which is exactly the form
// the C ABI passes as a SecKeychainAttrType / FourCharCode parameter.
//
// Code is a value type with no ownership concerns. Equality, ordering with
// <, and map-key use all operate on the raw byte pattern.
type Code uint32

// FromUint32 builds a Code from the ABI integer form. Total: any 32-bit
// value is a representable byte pattern.
func FromUint32(v uint32) Code { return Code(v) }

// FromBytes builds a Code from 4 raw bytes, preserving their left-to-right
// order in memory. Total: any 4 bytes are representable.
func FromBytes(b [4]byte) Code {
	return Code(binary.NativeEndian.Uint32(b[:]))
}

// FromString builds a Code from a string whose byte content must be exactly
// 4 bytes. Anything else is a contract violation by the producer (all codes
// in the framework are 4-byte tags), so FromString panics rather than
// truncating or padding.
func FromString(s string) Code {
	if len(s) != 4 {
		panic(fmt.Sprintf("fourcc: code %q is %d bytes, want 4", s, len(s)))
	}
	var b [4]byte
	copy(b[:], s)
	return FromBytes(b)
}

// Uint32 returns the ABI integer form. FromUint32(c.Uint32()) == c.
func (c Code) Uint32() uint32 { return uint32(c) }

// Bytes returns the 4 raw bytes in memory order. FromBytes(c.Bytes()) == c.
func (c Code) Bytes() [4]byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], uint32(c))
	return b
}

// String returns the 4 bytes as a string. Codes originating from the
// framework are ASCII by contract; String does not validate that, matching
// the shallow contract of the C API.
func (c Code) String() string {
	b := c.Bytes()
	return string(b[:])
}

// GoString implements fmt.GoStringer for %#v output.
func (c Code) GoString() string {
	return fmt.Sprintf("fourcc.FromString(%q)", c.String())
}
