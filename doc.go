// Package keychainbridge provides a safety boundary between Go code and the
// macOS Security framework's keychain services.
//
// The Security framework is a C-ABI service exposing opaque handles for
// keys, keychains, stored items, and access-control policies. Crossing that
// boundary means handling raw pointer/length pairs, four-character type
// codes, and memory that the framework allocates and the caller must free.
// This library concentrates those hazards in one place so that code above it
// only ever sees typed handles, checked views, and explicit release tokens.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	keychain-bridge/     Root package with the release-token contract
//	├── fourcc/          Four-character code codec (type/class tags)
//	├── attrlist/        Read-only views over foreign-owned attribute lists
//	├── cf/              Core Foundation reference bridge (darwin, cgo)
//	├── sec/             Security framework entry points, handles, status
//	└── cmd/inspect/     Keychain inspector tool exercising the bridge
//
// fourcc and attrlist are pure Go and build everywhere; cf and sec talk to
// the frameworks and build only on darwin with cgo.
//
// # Ownership Model
//
// Three disciplines apply to memory crossing the boundary:
//
//   - Value types (four-character codes) are copied; no ownership.
//   - Core Foundation objects (strings, data, dictionaries, all opaque
//     handles) follow the framework's retain/release rule: the sec wrappers
//     release what they create internally and return either Go copies or
//     handles the caller releases through cf.Release.
//   - Raw pointer+length allocations (attribute lists, item data from
//     SecKeychainItemCopyContent) are exposed as zero-copy views plus a
//     ReleaseFunc bound to the matching free entry point. Views never free.
//
// # Error Model
//
// Foreign failures pass through untouched: OSStatus values surface as
// sec.Status, CFError out-parameters as ordinary Go errors carrying the
// framework's own description. The bridge panics only on violations of its
// own invariants (a four-character code built from a string that is not
// exactly 4 bytes), never on a foreign status.
//
// # Thread Safety
//
// The bridge holds no mutable shared state and adds no synchronization.
// Values may be read from multiple goroutines; the caller is responsible
// for serializing a ReleaseFunc against any outstanding views into the
// memory it frees. Entry points may block inside the framework (keychain
// unlock prompts); the bridge neither observes nor bounds that.
package keychainbridge
