package sec

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("Success.Err() = %v, want nil", err)
	}
	err := ErrItemNotFound.Err()
	if err == nil {
		t.Fatal("ErrItemNotFound.Err() = nil")
	}
	if !errors.Is(err, ErrItemNotFound) {
		t.Error("Err() should return the status itself for errors.Is branching")
	}
}

func TestStatusPassThrough(t *testing.T) {
	// Unknown codes pass through untouched; the bridge never interprets.
	s := Status(-99999)
	if err := s.Err(); err == nil {
		t.Fatal("unknown status should still be an error")
	} else if got, ok := err.(Status); !ok || got != s {
		t.Errorf("Err() = %#v, want the status itself", err)
	}
}

func TestStatusErrorMentionsCode(t *testing.T) {
	tests := []struct {
		status Status
		code   string
	}{
		{ErrItemNotFound, "-25300"},
		{ErrDuplicateItem, "-25299"},
		{ErrUserCanceled, "-128"},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			if msg := tc.status.Error(); !strings.Contains(msg, tc.code) {
				t.Errorf("Error() = %q, want it to mention %s", msg, tc.code)
			}
		})
	}
}

func TestLoggerDefaultNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() = nil, want a no-op logger")
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) should restore the no-op logger")
	}
	// trace must be safe with the no-op logger installed.
	if got := trace("TestCall", ErrParam); got != ErrParam {
		t.Errorf("trace() = %d, want pass-through", got)
	}
	traceCall("TestCall", true)
}
