// Package sec is the boundary to the Security framework: typed opaque
// handles, the kSec* constant catalogue, OSStatus pass-through, and thin
// wrappers over the entry points the bridge consumes.
//
// # Shape of the Wrappers
//
// Every wrapper is a synchronous pass-through: convert arguments at the
// boundary, call, convert results, nothing else. Statuses and CFErrors
// surface exactly as the framework produced them; the package neither
// retries nor interprets. Calls may block inside the framework on keychain
// unlock or user-consent prompts for a duration this layer does not
// observe.
//
// # Memory Results
//
// Results come back under three disciplines:
//
//   - Core Foundation handles (keys, keychains, items, dictionaries):
//     returned as owned references the caller releases with cf.Release.
//   - CFData payloads from the cryptographic operations: copied into Go
//     slices and released internally, so the caller holds plain bytes.
//   - Raw pointer+length allocations from SecKeychainItemCopyContent:
//     exposed as zero-copy views plus a Release token bound to
//     SecKeychainItemFreeContent. Binding the free call into the token
//     keeps structurally identical allocations from being freed by the
//     wrong function.
//
// # Tracing
//
// SetLogger installs a zap logger that debug-traces every entry-point call
// and its status. The default is a no-op.
//
// The entry-point wrappers and constants build only on darwin with cgo;
// Status and the logger are portable so that consumers can compile
// cross-platform code paths against them.
package sec
