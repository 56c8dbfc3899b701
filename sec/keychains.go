//go:build darwin && cgo

package sec

/*
#include <stdlib.h>
#include <Security/Security.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/keychain-bridge/cf"
)

// KeychainCopyDefault returns the user's default keychain. The caller owns
// the returned reference.
func KeychainCopyDefault() (KeychainRef, Status) {
	var kc C.SecKeychainRef
	status := trace("SecKeychainCopyDefault", Status(C.SecKeychainCopyDefault(&kc)))
	return KeychainRef(unsafe.Pointer(kc)), status
}

// KeychainCreate creates a new keychain file at path. With promptUser set,
// the framework prompts for the password and the password argument is
// ignored; otherwise password protects the keychain. initialAccess may be
// the null reference for default access. The caller owns the returned
// reference.
func KeychainCreate(path string, password []byte, promptUser bool, initialAccess cf.Ref) (KeychainRef, Status) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var pw *C.char
	if len(password) > 0 {
		pw = (*C.char)(unsafe.Pointer(&password[0]))
	}
	prompt := C.Boolean(0)
	if promptUser {
		prompt = C.Boolean(1)
	}

	var kc C.SecKeychainRef
	status := trace("SecKeychainCreate", Status(C.SecKeychainCreate(
		cPath,
		C.UInt32(len(password)),
		pw,
		prompt,
		C.SecAccessRef(unsafe.Pointer(initialAccess)),
		&kc,
	)))
	return KeychainRef(unsafe.Pointer(kc)), status
}

// KeychainDelete removes a keychain from the search list and deletes its
// file. The reference itself remains retained; release it through
// cf.Release as usual.
func KeychainDelete(kc KeychainRef) Status {
	return trace("SecKeychainDelete", Status(C.SecKeychainDelete(
		C.SecKeychainRef(unsafe.Pointer(kc)))))
}
