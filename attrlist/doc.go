// Package attrlist provides read-only views over foreign-owned keychain
// attribute lists.
//
// SecKeychainItemCopyContent and its relatives return a count + pointer
// structure describing a flat array of variable-length attribute records,
// each with its own tag, length, and data pointer. The memory belongs to
// the Security framework and must be given back, whole, to the matching
// free entry point. This package exposes that memory as a safe, iterable,
// zero-copy sequence without taking ownership of any of it.
//
// # Trust Boundary
//
// ViewOf is the one unsafe step: the caller attests, at the point the
// foreign call returns, that the pointer refers to a live, correctly
// populated list. From there on access is read-only and bounded by the
// count and length fields the framework itself wrote. The package performs
// no independent validation of the pointers — that guarantee is inherited
// from "the foreign call succeeded".
//
// # Layout
//
// Record and List reproduce the C structs field-for-field with native
// alignment; the layout tests pin the offsets. Nothing may be reordered or
// added, since views are cast directly over framework memory.
package attrlist
