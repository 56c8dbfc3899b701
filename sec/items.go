//go:build darwin && cgo

package sec

/*
#include <stdlib.h>
#include <Security/Security.h>
*/
import "C"

import (
	"unsafe"

	keychainbridge "github.com/wippyai/keychain-bridge"
	"github.com/wippyai/keychain-bridge/attrlist"
	"github.com/wippyai/keychain-bridge/cf"
	"github.com/wippyai/keychain-bridge/fourcc"
)

// ItemAdd adds an item described by the attributes dictionary. When the
// dictionary requests a result (kSecReturn*), the returned reference is
// owned by the caller; otherwise it is the null reference.
func ItemAdd(attributes cf.Ref) (cf.Ref, Status) {
	var result C.CFTypeRef
	status := trace("SecItemAdd", Status(C.SecItemAdd(
		C.CFDictionaryRef(unsafe.Pointer(attributes)), &result)))
	return cf.Ref(unsafe.Pointer(result)), status
}

// ItemDelete deletes the items matching the query dictionary.
func ItemDelete(query cf.Ref) Status {
	return trace("SecItemDelete", Status(C.SecItemDelete(
		C.CFDictionaryRef(unsafe.Pointer(query)))))
}

// ItemCopyMatching runs a keychain query. The returned reference (an item,
// key, data, or array, per the query's kSecReturn* keys) is owned by the
// caller.
func ItemCopyMatching(query cf.Ref) (cf.Ref, Status) {
	var result C.CFTypeRef
	status := trace("SecItemCopyMatching", Status(C.SecItemCopyMatching(
		C.CFDictionaryRef(unsafe.Pointer(query)), &result)))
	return cf.Ref(unsafe.Pointer(result)), status
}

// ItemContent is the result of ItemCopyContent: the item's class code plus
// views over the requested attributes and the raw data the framework
// allocated for the call. The views are valid until Release is invoked;
// Release frees the attribute data and data buffer through
// SecKeychainItemFreeContent, the one free call that matches this producer.
// Release must be called exactly once when the caller is done (extra calls
// are no-ops).
type ItemContent struct {
	// Class is the item's class tag (generic password, internet
	// password, ...).
	Class fourcc.Code

	// Attrs views the framework-owned attribute list. Do not retain it or
	// any record data past Release.
	Attrs *attrlist.List

	// Release frees the attribute list and data buffer. It must be given
	// the entire allocation, which is why the views carry no free logic of
	// their own.
	Release keychainbridge.ReleaseFunc

	list    C.SecKeychainAttributeList
	dataPtr unsafe.Pointer
	dataLen uint32
}

// Data returns the item's raw data as a borrowed view, or (nil, false)
// when the framework returned no data pointer. Valid until Release.
func (c *ItemContent) Data() ([]byte, bool) {
	if c.dataPtr == nil {
		return nil, false
	}
	return unsafe.Slice((*byte)(c.dataPtr), c.dataLen), true
}

// ItemFreeContent frees an attribute list and data buffer that
// SecKeychainItemCopyContent allocated. ItemCopyContent binds this into
// its release token; call it directly only for allocations obtained
// outside that path. Either argument may be nil.
func ItemFreeContent(list *attrlist.List, data unsafe.Pointer) Status {
	return trace("SecKeychainItemFreeContent", Status(C.SecKeychainItemFreeContent(
		(*C.SecKeychainAttributeList)(unsafe.Pointer(list)), data)))
}

// newItemContent builds the content carrier with a request list naming the
// attributes to retrieve. The copy-content call treats the list as input:
// each record's tag names an attribute, count says how many, and the
// framework fills in only those records' length and data. The record array
// lives in C memory so the framework can write through it; freeRequest
// returns it.
func newItemContent(tags []fourcc.Code) *ItemContent {
	content := &ItemContent{}
	if len(tags) == 0 {
		return content
	}

	recs := (*C.SecKeychainAttribute)(C.calloc(C.size_t(len(tags)),
		C.size_t(unsafe.Sizeof(C.SecKeychainAttribute{}))))
	records := unsafe.Slice(recs, len(tags))
	for i, tag := range tags {
		records[i].tag = C.SecKeychainAttrType(tag.Uint32())
	}
	content.list.count = C.UInt32(len(tags))
	content.list.attr = recs
	return content
}

// freeRequest releases the C-allocated request records. The framework frees
// only the attribute data it filled in, not the caller-supplied array.
func (c *ItemContent) freeRequest() {
	if c.list.attr != nil {
		C.free(unsafe.Pointer(c.list.attr))
		c.list.attr = nil
		c.list.count = 0
	}
}

// ItemCopyContent copies an item's class, data, and the attributes named by
// tags (the ItemAttr* four-character codes). Only requested attributes come
// back: with no tags the attribute view is empty and the call retrieves
// class and data alone. On success the caller owns the result's Release
// obligation.
func ItemCopyContent(item ItemRef, tags ...fourcc.Code) (*ItemContent, Status) {
	content := newItemContent(tags)
	var class C.SecItemClass
	var length C.UInt32

	status := trace("SecKeychainItemCopyContent", Status(C.SecKeychainItemCopyContent(
		C.SecKeychainItemRef(unsafe.Pointer(item)),
		&class,
		&content.list,
		&length,
		&content.dataPtr,
	)))
	if status != Success {
		content.freeRequest()
		return nil, status
	}

	content.Class = fourcc.FromUint32(uint32(class))
	content.dataLen = uint32(length)
	content.Attrs = attrlist.ViewOf(unsafe.Pointer(&content.list))
	content.Release = keychainbridge.ReleaseOnce(func() error {
		err := trace("SecKeychainItemFreeContent", Status(C.SecKeychainItemFreeContent(
			&content.list, content.dataPtr))).Err()
		content.freeRequest()
		return err
	})
	return content, status
}
