// Package cf bridges Core Foundation objects across the cgo boundary.
//
// Every keychain entry point speaks in Core Foundation currency: CFString
// keys, CFData payloads, CFDictionary queries, CFError out-parameters. This
// package holds the generic conversions so that the sec package can stay a
// flat catalogue of entry points.
//
// A Ref is an address-sized opaque reference, kept as an integer because
// the memory behind it is not Go's to point at. Ownership follows the
// framework's create/copy rule: functions documented as creating an owned
// object return references the caller must Release; Go* functions copy
// content out of a borrowed reference and leave ownership untouched.
//
// Builds only on darwin with cgo enabled.
package cf
