//go:build darwin && cgo

package sec

/*
#cgo LDFLAGS: -framework Security -framework CoreFoundation
#include <Security/Security.h>
*/
import "C"

import (
	"github.com/wippyai/keychain-bridge/cf"
	"github.com/wippyai/keychain-bridge/fourcc"
)

// The framework represents every object as the same generic opaque
// reference; these distinct Go types bind each domain concept to it so that
// a key cannot be passed where a keychain is expected. Handles are
// address-sized identity references: passed by value, never dereferenced,
// never adjusted. Lifetime follows the Core Foundation retain/release
// discipline via cf.Retain and cf.Release on the underlying Ref.
type (
	// KeyRef references a cryptographic key (SecKeyRef).
	KeyRef cf.Ref

	// KeychainRef references a keychain (SecKeychainRef).
	KeychainRef cf.Ref

	// ItemRef references a stored keychain item (SecKeychainItemRef).
	ItemRef cf.Ref

	// AccessControlRef references an access-control policy
	// (SecAccessControlRef).
	AccessControlRef cf.Ref
)

// Runtime type identifiers for dynamic checks against cf.TypeOf.

func KeyTypeID() cf.TypeID           { return cf.TypeID(C.SecKeyGetTypeID()) }
func KeychainTypeID() cf.TypeID      { return cf.TypeID(C.SecKeychainGetTypeID()) }
func KeychainItemTypeID() cf.TypeID  { return cf.TypeID(C.SecKeychainItemGetTypeID()) }
func AccessControlTypeID() cf.TypeID { return cf.TypeID(C.SecAccessControlGetTypeID()) }

// FourCCFromString decodes a CFString holding a four-character tag into a
// fourcc.Code. The reference is borrowed. A decoded byte length other than
// 4 is a framework contract violation and panics, per the codec's rule.
func FourCCFromString(r cf.Ref) fourcc.Code {
	return fourcc.FromString(cf.GoString(r))
}
