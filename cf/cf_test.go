//go:build darwin && cgo

package cf

import (
	"bytes"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"empty", ""},
		{"tag", "genp"},
		{"spaces", "hello world"},
		{"cyrillic", "пароль"},
		{"cjk", "鍵"},
		{"embedded nul", "ab\x00cd"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := String(tc.want)
			if r == 0 {
				t.Fatal("String returned the null reference")
			}
			defer Release(r)
			if got := GoString(r); got != tc.want {
				t.Errorf("GoString = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDataRoundTrip(t *testing.T) {
	want := []byte{0, 1, 2, 0xff, 0x80}
	r := Data(want)
	defer Release(r)
	if got := GoBytes(r); !bytes.Equal(got, want) {
		t.Errorf("GoBytes = %v, want %v", got, want)
	}
}

func TestDataEmpty(t *testing.T) {
	r := Data(nil)
	defer Release(r)
	if got := GoBytes(r); len(got) != 0 {
		t.Errorf("GoBytes = %v, want empty", got)
	}
}

func TestDictionary(t *testing.T) {
	k := String("key")
	defer Release(k)
	v := String("value")
	defer Release(v)

	d := Dictionary(map[Ref]Ref{k: v})
	defer Release(d)

	got, ok := DictionaryGet(d, k)
	if !ok {
		t.Fatal("key not present")
	}
	if GoString(got) != "value" {
		t.Errorf("value = %q", GoString(got))
	}
	if _, ok := DictionaryGet(d, v); ok {
		t.Error("lookup of a non-key succeeded")
	}
}

func TestBoolSingletons(t *testing.T) {
	if Bool(true) == 0 || Bool(false) == 0 || Bool(true) == Bool(false) {
		t.Error("boolean singletons are wrong")
	}
}

func TestNumber(t *testing.T) {
	n := Number(2048)
	defer Release(n)
	if n == 0 {
		t.Fatal("Number returned the null reference")
	}
}

func TestTypeOf(t *testing.T) {
	s := String("x")
	defer Release(s)
	d := Data([]byte{1})
	defer Release(d)
	if TypeOf(s) == TypeOf(d) {
		t.Error("CFString and CFData should have distinct type IDs")
	}
}

func TestConsumeErrorNull(t *testing.T) {
	if err := ConsumeError(0); err != nil {
		t.Errorf("ConsumeError(0) = %v, want nil", err)
	}
}

func TestEqual(t *testing.T) {
	a := String("same")
	defer Release(a)
	b := String("same")
	defer Release(b)
	if !Equal(a, b) {
		t.Error("equal strings compare unequal")
	}
}
