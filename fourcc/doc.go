// Package fourcc implements the four-character code codec.
//
// Four-character codes are the Security framework's universal tagging
// mechanism: keychain item classes, attribute types, and protocol tags are
// all 4-byte ASCII values passed across the C ABI as 32-bit integers. The
// correspondence between the two forms is byte-order-preserving, not
// numeric: the bytes of the integer, read in memory order, spell the tag.
// Centralizing that reinterpretation here keeps byte-order bugs from
// reappearing at every call site.
//
// Construction from an integer or from 4 raw bytes is total. Construction
// from a string asserts the 4-byte length and panics on violation, because
// a wrong-length tag means the foreign side (or an upstream caller) broke
// its documented contract, not a condition to recover from.
package fourcc
