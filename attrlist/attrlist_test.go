package attrlist

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/wippyai/keychain-bridge/fourcc"
)

// The views are cast directly over framework memory, so the Go structs
// must reproduce the C layout exactly: SecKeychainAttribute is
// { FourCharCode tag; UInt32 length; void *data; } and
// SecKeychainAttributeList is { UInt32 count; SecKeychainAttribute *attr; }.
func TestABILayout(t *testing.T) {
	var r Record
	if off := unsafe.Offsetof(r.tag); off != 0 {
		t.Errorf("Record.tag offset = %d, want 0", off)
	}
	if off := unsafe.Offsetof(r.length); off != 4 {
		t.Errorf("Record.length offset = %d, want 4", off)
	}
	if off := unsafe.Offsetof(r.data); off != 8 {
		t.Errorf("Record.data offset = %d, want 8", off)
	}

	var l List
	if off := unsafe.Offsetof(l.count); off != 0 {
		t.Errorf("List.count offset = %d, want 0", off)
	}
	if off := unsafe.Offsetof(l.attr); off != unsafe.Alignof(l.attr) {
		t.Errorf("List.attr offset = %d, want pointer alignment %d",
			unsafe.Offsetof(l.attr), unsafe.Alignof(l.attr))
	}
}

func TestRecordDataAbsent(t *testing.T) {
	r := Record{tag: fourcc.FromString("acct"), length: 0, data: nil}
	if data, ok := r.Data(); ok || data != nil {
		t.Errorf("Data() = %v, %v; want nil, false", data, ok)
	}
}

// A nil data pointer with a nonzero declared length is a framework contract
// violation; the nil marker wins and nothing is dereferenced.
func TestRecordDataNilWithLength(t *testing.T) {
	r := Record{tag: fourcc.FromString("svce"), length: 16, data: nil}
	if _, ok := r.Data(); ok {
		t.Error("Data() should report absent when the pointer is nil")
	}
}

func TestRecordDataPresent(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	r := Record{tag: fourcc.FromString("svce"), length: 5, data: &payload[0]}

	data, ok := r.Data()
	if !ok {
		t.Fatal("Data() reported absent for a populated record")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Data() = %v, want %v", data, payload)
	}
}

// Zero-length presence is distinct from absence.
func TestRecordDataEmptyPresent(t *testing.T) {
	b := []byte{0xaa}
	r := Record{tag: fourcc.FromString("desc"), length: 0, data: &b[0]}

	data, ok := r.Data()
	if !ok {
		t.Fatal("zero-length data with a non-nil pointer should be present")
	}
	if len(data) != 0 {
		t.Errorf("len(data) = %d, want 0", len(data))
	}
}

func TestEmptyListNonNilBase(t *testing.T) {
	// The framework sometimes hands back count == 0 with a non-nil base.
	sentinel := Record{}
	l := List{count: 0, attr: &sentinel}

	if got := l.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if s := l.Slice(); len(s) != 0 {
		t.Errorf("Slice() has %d records, want 0", len(s))
	}
	if _, ok := l.Iter().Next(); ok {
		t.Error("iterator over an empty list yielded a record")
	}
}

func TestEmptyListNilBase(t *testing.T) {
	l := List{count: 0, attr: nil}
	if s := l.Slice(); len(s) != 0 {
		t.Errorf("Slice() has %d records, want 0", len(s))
	}
}

func TestListTwoRecords(t *testing.T) {
	payload := []byte{1, 2, 3}
	recs := []Record{
		{tag: fourcc.FromString("aaaa"), length: 0, data: nil},
		{tag: fourcc.FromString("bbbb"), length: 3, data: &payload[0]},
	}
	l := List{count: 2, attr: &recs[0]}

	s := l.Slice()
	if len(s) != 2 {
		t.Fatalf("Slice() has %d records, want 2", len(s))
	}
	if got := s[0].Tag().String(); got != "aaaa" {
		t.Errorf("record 0 tag = %q, want %q", got, "aaaa")
	}
	if _, ok := s[0].Data(); ok {
		t.Error("record 0 should have absent data")
	}
	data, ok := s[1].Data()
	if !ok {
		t.Fatal("record 1 should have present data")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("record 1 data = %v, want %v", data, payload)
	}
}

func TestIteratorRestartable(t *testing.T) {
	recs := []Record{
		{tag: fourcc.FromString("one ")},
		{tag: fourcc.FromString("two ")},
		{tag: fourcc.FromString("tri ")},
	}
	l := List{count: 3, attr: &recs[0]}

	// Partial walk, then a fresh cursor sees everything again.
	it := l.Iter()
	if r, ok := it.Next(); !ok || r.Tag().String() != "one " {
		t.Fatal("first Next() wrong")
	}

	var tags []string
	for it2 := l.Iter(); ; {
		r, ok := it2.Next()
		if !ok {
			break
		}
		tags = append(tags, r.Tag().String())
	}
	if len(tags) != 3 || tags[0] != "one " || tags[2] != "tri " {
		t.Errorf("fresh cursor walked %v", tags)
	}

	// Reset rewinds in place.
	it.Reset()
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	if n != 3 {
		t.Errorf("after Reset, walked %d records, want 3", n)
	}
}

func TestViewOf(t *testing.T) {
	payload := []byte{9, 8, 7}
	recs := []Record{{tag: fourcc.FromString("data"), length: 3, data: &payload[0]}}
	l := List{count: 1, attr: &recs[0]}

	v := ViewOf(unsafe.Pointer(&l))
	if v.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", v.Len())
	}
	data, ok := v.Slice()[0].Data()
	if !ok || !bytes.Equal(data, payload) {
		t.Errorf("view data = %v, %v", data, ok)
	}
}
