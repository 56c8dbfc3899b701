package attrlist

import (
	"unsafe"

	"github.com/wippyai/keychain-bridge/fourcc"
)

// Record mirrors the SecKeychainAttribute struct bit-exactly: a 4-byte tag,
// an unsigned byte count, and the address of the first data byte (or nil
// for "no data"). Records are never constructed by Go code; they are read
// through views over memory the framework populated.
type Record struct {
	tag    fourcc.Code
	length uint32
	data   *byte
}

// Tag returns the four-character code identifying this attribute's type.
func (r *Record) Tag() fourcc.Code { return r.tag }

// Data returns the attribute's payload as a borrowed, zero-copy slice of
// exactly length bytes, or (nil, false) when the data pointer is nil.
// Absence and zero-length presence are distinct: a non-nil pointer with
// length 0 yields an empty slice and true.
//
// A nil pointer with a nonzero declared length is a contract violation by
// the framework; the nil marker wins and the record reads as absent.
//
// The slice is valid only until the allocation's release call; the caller
// must not let it outlive that.
func (r *Record) Data() ([]byte, bool) {
	if r.data == nil {
		return nil, false
	}
	return unsafe.Slice(r.data, r.length), true
}

// List mirrors the SecKeychainAttributeList struct: a record count and the
// address of the first of count contiguous records.
//
// A List is a borrowed view. It does not own the records or their data and
// never frees them: structurally identical lists are produced by different
// entry points that require different matching free calls, so release is
// the caller's job, through the token returned by the producing call.
type List struct {
	count uint32
	attr  *Record
}

// ViewOf reinterprets a pointer to a framework-populated attribute list as
// a List view. This is the single attestation point for the trust boundary:
// by calling it, the caller asserts that p points at a live
// SecKeychainAttributeList exactly as some successful foreign call filled
// it in. Every access after that is bounds-derived from the framework's own
// count and length fields.
func ViewOf(p unsafe.Pointer) *List {
	return (*List)(p)
}

// Len returns the number of records in the list.
func (l *List) Len() int { return int(l.count) }

// Slice returns a borrowed view of the list's records. A list with count 0
// is empty regardless of base-pointer nullity; the framework sometimes
// returns a non-nil base with a zero count, and occasionally the reverse.
func (l *List) Slice() []Record {
	if l.count == 0 || l.attr == nil {
		return nil
	}
	return unsafe.Slice(l.attr, l.count)
}

// Iter returns a cursor over the list's records. Cursors are independent:
// calling Iter again restarts from the first record, and abandoning a
// cursor mid-way has no effect on the list.
func (l *List) Iter() *Iterator {
	return &Iterator{records: l.Slice()}
}

// Iterator walks a List's records in order. The zero value is an exhausted
// iterator.
type Iterator struct {
	records []Record
	pos     int
}

// Next returns the next record and true, or nil and false when the
// sequence is exhausted.
func (it *Iterator) Next() (*Record, bool) {
	if it.pos >= len(it.records) {
		return nil, false
	}
	r := &it.records[it.pos]
	it.pos++
	return r, true
}

// Reset rewinds the iterator to the first record.
func (it *Iterator) Reset() { it.pos = 0 }
