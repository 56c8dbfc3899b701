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

func statusMessage(s Status) string {
	cs := C.SecCopyErrorMessageString(C.OSStatus(s), nil)
	if cs == nil {
		return ""
	}
	r := cf.Ref(unsafe.Pointer(cs))
	defer cf.Release(r)
	return cf.GoString(r)
}
