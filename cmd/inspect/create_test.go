package main

import (
	"bytes"
	"testing"
)

func TestKeychainCreateArgs(t *testing.T) {
	tests := []struct {
		name       string
		entered    []byte
		wantPrompt bool
	}{
		{"typed password", []byte("hunter2"), false},
		{"nil entry", nil, true},
		{"zero-length entry", []byte{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			password, promptUser := keychainCreateArgs(tc.entered)
			if promptUser != tc.wantPrompt {
				t.Errorf("promptUser = %v, want %v", promptUser, tc.wantPrompt)
			}
			if tc.wantPrompt {
				if password != nil {
					t.Errorf("password = %q, want nil when prompting", password)
				}
				return
			}
			if !bytes.Equal(password, tc.entered) {
				t.Errorf("password = %q, want %q", password, tc.entered)
			}
		})
	}
}
