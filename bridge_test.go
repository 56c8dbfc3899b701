package keychainbridge

import (
	"errors"
	"testing"
)

func TestReleaseOnce(t *testing.T) {
	calls := 0
	want := errors.New("free failed")
	release := ReleaseOnce(func() error {
		calls++
		return want
	})

	if err := release(); err != want {
		t.Errorf("first call = %v, want %v", err, want)
	}
	if err := release(); err != nil {
		t.Errorf("second call = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("free ran %d times, want 1", calls)
	}
}

func TestNopRelease(t *testing.T) {
	if err := NopRelease(); err != nil {
		t.Errorf("NopRelease() = %v", err)
	}
}
