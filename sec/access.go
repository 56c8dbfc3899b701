//go:build darwin && cgo

package sec

/*
#include <Security/Security.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/keychain-bridge/cf"
)

// AccessControlFlags constrain how an item or key protected by an
// access-control policy may be used (the SecAccessControlCreateFlags
// option set).
type AccessControlFlags C.CFOptionFlags

const (
	AccessControlUserPresence        = AccessControlFlags(C.kSecAccessControlUserPresence)
	AccessControlDevicePasscode      = AccessControlFlags(C.kSecAccessControlDevicePasscode)
	AccessControlOr                  = AccessControlFlags(C.kSecAccessControlOr)
	AccessControlAnd                 = AccessControlFlags(C.kSecAccessControlAnd)
	AccessControlPrivateKeyUsage     = AccessControlFlags(C.kSecAccessControlPrivateKeyUsage)
	AccessControlApplicationPassword = AccessControlFlags(C.kSecAccessControlApplicationPassword)
)

// AccessControlCreateWithFlags builds an access-control policy from a
// protection class (one of the AttrAccessible* constants) and usage flags.
// The caller owns the returned reference.
func AccessControlCreateWithFlags(protection cf.Ref, flags AccessControlFlags) (AccessControlRef, error) {
	var cfErr C.CFErrorRef
	ac := C.SecAccessControlCreateWithFlags(
		C.kCFAllocatorDefault,
		C.CFTypeRef(unsafe.Pointer(protection)),
		C.CFOptionFlags(flags),
		&cfErr,
	)
	traceCall("SecAccessControlCreateWithFlags", ac != nil)
	if ac == nil {
		return 0, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return AccessControlRef(unsafe.Pointer(ac)), nil
}
