package fourcc

import (
	"encoding/binary"
	"testing"
)

func TestFromBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   [4]byte
	}{
		{"ascii", [4]byte{'A', 'B', 'C', 'D'}},
		{"genp", [4]byte{'g', 'e', 'n', 'p'}},
		{"zeros", [4]byte{0, 0, 0, 0}},
		{"high bytes", [4]byte{0xff, 0x00, 0x7f, 0x80}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := FromBytes(tc.in)
			if got := c.Bytes(); got != tc.in {
				t.Errorf("Bytes() = %v, want %v", got, tc.in)
			}
			if got := c.String(); got != string(tc.in[:]) {
				t.Errorf("String() = %q, want %q", got, string(tc.in[:]))
			}
		})
	}
}

func TestFromUint32RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, 0x61616161} {
		c := FromUint32(n)
		if c.Uint32() != n {
			t.Errorf("FromUint32(%#x).Uint32() = %#x", n, c.Uint32())
		}
		if FromBytes(c.Bytes()) != c {
			t.Errorf("FromBytes(Bytes()) != c for %#x", n)
		}
	}
}

func TestFromString(t *testing.T) {
	c := FromString("ABCD")
	if c.String() != "ABCD" {
		t.Errorf("String() = %q, want %q", c.String(), "ABCD")
	}
	if c != FromBytes([4]byte{'A', 'B', 'C', 'D'}) {
		t.Error("FromString and FromBytes disagree on the same bytes")
	}
}

func TestFromStringLengthFault(t *testing.T) {
	for _, s := range []string{"", "abc", "abcde", "日本"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromString(%q) did not panic", s)
				}
			}()
			FromString(s)
		}()
	}
}

// The integer form must be the native-endian reinterpretation of the bytes,
// matching what the C ABI sees when the tag is passed as a parameter.
func TestNativeEndianContract(t *testing.T) {
	b := [4]byte{0x41, 0x42, 0x43, 0x44} // "ABCD"
	c := FromBytes(b)
	want := binary.NativeEndian.Uint32(b[:])
	if c.Uint32() != want {
		t.Errorf("Uint32() = %#x, want %#x", c.Uint32(), want)
	}
	if FromUint32(want) != c {
		t.Error("FromUint32 of the reinterpreted value differs from FromBytes")
	}
}

func TestCodeAsMapKey(t *testing.T) {
	names := map[Code]string{
		FromString("genp"): "generic password",
		FromString("inet"): "internet password",
	}
	if names[FromBytes([4]byte{'g', 'e', 'n', 'p'})] != "generic password" {
		t.Error("equal byte patterns should hit the same map entry")
	}
	if _, ok := names[FromString("keys")]; ok {
		t.Error("distinct code unexpectedly present")
	}
}

func TestOrderingIsTotal(t *testing.T) {
	a, b := FromUint32(1), FromUint32(2)
	if !(a < b) || b < a || a < a {
		t.Error("ordering over the underlying integer is broken")
	}
}

func TestGoString(t *testing.T) {
	if got := FromString("acct").GoString(); got != `fourcc.FromString("acct")` {
		t.Errorf("GoString() = %s", got)
	}
}
