//go:build darwin && cgo

package cf

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Ref is an opaque reference to a Core Foundation object. It is a pointer,
// but to memory not owned by Go, so it is held as an integer and never
// dereferenced on the Go side. The zero Ref is the null reference.
type Ref uintptr

// TypeID identifies a Core Foundation runtime type, as returned by the
// framework's *GetTypeID functions.
type TypeID uintptr

func (r Ref) c() C.CFTypeRef {
	return C.CFTypeRef(unsafe.Pointer(r))
}

func ref(p C.CFTypeRef) Ref {
	return Ref(unsafe.Pointer(p))
}

// Retain increments the object's retain count and returns the same Ref.
func Retain(r Ref) Ref {
	if r != 0 {
		C.CFRetain(r.c())
	}
	return r
}

// Release decrements the object's retain count. Releasing the null
// reference is a no-op.
func Release(r Ref) {
	if r != 0 {
		C.CFRelease(r.c())
	}
}

// TypeOf returns the runtime type of the object behind r.
func TypeOf(r Ref) TypeID {
	return TypeID(C.CFGetTypeID(r.c()))
}

// Equal reports whether the two objects compare equal under CFEqual.
func Equal(a, b Ref) bool {
	return C.CFEqual(a.c(), b.c()) != 0
}

// String creates an owned CFString from a Go string. The caller releases
// the result. Returns the null reference if the framework cannot represent
// the string.
func String(s string) Ref {
	b := []byte(s)
	var p *C.UInt8
	if len(b) > 0 {
		p = (*C.UInt8)(unsafe.Pointer(&b[0]))
	}
	cs := C.CFStringCreateWithBytes(C.kCFAllocatorDefault, p, C.CFIndex(len(b)),
		C.kCFStringEncodingUTF8, C.Boolean(0))
	return Ref(unsafe.Pointer(cs))
}

// GoString copies a CFString's content into a Go string as UTF-8, using
// explicit byte counts rather than NUL termination so embedded NULs survive
// the round trip. The reference is borrowed, not consumed.
func GoString(r Ref) string {
	cs := C.CFStringRef(unsafe.Pointer(r))
	n := C.CFStringGetLength(cs)
	if n == 0 {
		return ""
	}
	rng := C.CFRange{location: 0, length: n}
	var size C.CFIndex
	C.CFStringGetBytes(cs, rng, C.kCFStringEncodingUTF8, 0, C.Boolean(0),
		nil, 0, &size)
	if size == 0 {
		return ""
	}
	buf := make([]byte, size)
	C.CFStringGetBytes(cs, rng, C.kCFStringEncodingUTF8, 0, C.Boolean(0),
		(*C.UInt8)(unsafe.Pointer(&buf[0])), size, &size)
	return string(buf[:size])
}

// Data creates an owned CFData copying the given bytes. The caller releases
// the result.
func Data(b []byte) Ref {
	var p *C.UInt8
	if len(b) > 0 {
		p = (*C.UInt8)(unsafe.Pointer(&b[0]))
	}
	d := C.CFDataCreate(C.kCFAllocatorDefault, p, C.CFIndex(len(b)))
	return Ref(unsafe.Pointer(d))
}

// GoBytes copies a CFData's content into a Go slice. The reference is
// borrowed, not consumed.
func GoBytes(r Ref) []byte {
	d := C.CFDataRef(unsafe.Pointer(r))
	n := C.CFDataGetLength(d)
	if n == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(C.CFDataGetBytePtr(d)), C.int(n))
}

// Bool returns the framework's shared boolean singletons. The result is a
// constant: retaining or releasing it is harmless and unnecessary.
func Bool(v bool) Ref {
	if v {
		return Ref(unsafe.Pointer(C.kCFBooleanTrue))
	}
	return Ref(unsafe.Pointer(C.kCFBooleanFalse))
}

// Number creates an owned CFNumber holding a 32-bit integer. The caller
// releases the result.
func Number(v int32) Ref {
	n := C.CFNumberCreate(C.kCFAllocatorDefault, C.kCFNumberSInt32Type,
		unsafe.Pointer(&v))
	return Ref(unsafe.Pointer(n))
}

// Dictionary creates an owned CFDictionary with the standard type
// callbacks; keys and values are retained by the dictionary, so the caller
// keeps (and eventually releases) its own references. The caller releases
// the result.
func Dictionary(pairs map[Ref]Ref) Ref {
	n := len(pairs)
	keys := make([]unsafe.Pointer, 0, n)
	vals := make([]unsafe.Pointer, 0, n)
	for k, v := range pairs {
		keys = append(keys, unsafe.Pointer(k))
		vals = append(vals, unsafe.Pointer(v))
	}
	var kp, vp *unsafe.Pointer
	if n > 0 {
		kp = &keys[0]
		vp = &vals[0]
	}
	d := C.CFDictionaryCreate(C.kCFAllocatorDefault, kp, vp, C.CFIndex(n),
		&C.kCFTypeDictionaryKeyCallBacks, &C.kCFTypeDictionaryValueCallBacks)
	return Ref(unsafe.Pointer(d))
}

// ArrayTypeID returns the runtime type of CFArray, for distinguishing
// array results from bare object references.
func ArrayTypeID() TypeID {
	return TypeID(C.CFArrayGetTypeID())
}

// ArrayLen returns the number of elements in a CFArray.
func ArrayLen(r Ref) int {
	return int(C.CFArrayGetCount(C.CFArrayRef(unsafe.Pointer(r))))
}

// ArrayGet returns the element at index i. The returned reference is
// borrowed from the array.
func ArrayGet(r Ref, i int) Ref {
	return Ref(C.CFArrayGetValueAtIndex(C.CFArrayRef(unsafe.Pointer(r)), C.CFIndex(i)))
}

// DictionaryGet looks up key in a CFDictionary. The returned reference is
// borrowed from the dictionary.
func DictionaryGet(dict, key Ref) (Ref, bool) {
	var value unsafe.Pointer
	present := C.CFDictionaryGetValueIfPresent(
		C.CFDictionaryRef(unsafe.Pointer(dict)),
		unsafe.Pointer(key), &value)
	if present == 0 {
		return 0, false
	}
	return Ref(value), true
}

// Error carries a CFError's domain, code, and description across the
// boundary as an ordinary Go error.
type Error struct {
	Domain      string
	Description string
	Code        int
}

func (e *Error) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("CFError domain=%s code=%d", e.Domain, e.Code)
}

// ConsumeError converts a CFError reference produced by an out-parameter
// into a Go error and releases the reference. A null reference yields nil.
func ConsumeError(r Ref) error {
	if r == 0 {
		return nil
	}
	defer Release(r)

	ce := C.CFErrorRef(unsafe.Pointer(r))
	e := &Error{Code: int(C.CFErrorGetCode(ce))}
	if d := C.CFErrorGetDomain(ce); d != nil {
		// Domain is a borrowed get-rule reference.
		e.Domain = GoString(Ref(unsafe.Pointer(d)))
	}
	if desc := C.CFErrorCopyDescription(ce); desc != nil {
		e.Description = GoString(Ref(unsafe.Pointer(desc)))
		Release(Ref(unsafe.Pointer(desc)))
	}
	return e
}
