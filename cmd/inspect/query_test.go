package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/keychain-bridge/fourcc"
	"github.com/wippyai/keychain-bridge/sec"
)

func containsTag(tags []fourcc.Code, want fourcc.Code) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestClassTags(t *testing.T) {
	tests := []struct {
		class   string
		want    []fourcc.Code
		exclude []fourcc.Code
	}{
		{
			class:   "genp",
			want:    []fourcc.Code{sec.ItemAttrService, sec.ItemAttrAccount, sec.ItemAttrLabel},
			exclude: []fourcc.Code{sec.ItemAttrServer, sec.ItemAttrProtocol},
		},
		{
			class:   "inet",
			want:    []fourcc.Code{sec.ItemAttrServer, sec.ItemAttrAccount, sec.ItemAttrProtocol},
			exclude: []fourcc.Code{sec.ItemAttrService, sec.ItemAttrGeneric},
		},
		{
			// The default class is generic password.
			class: "",
			want:  []fourcc.Code{sec.ItemAttrService},
		},
	}
	for _, tc := range tests {
		t.Run("class "+tc.class, func(t *testing.T) {
			tags := classTags(tc.class)
			if len(tags) == 0 {
				t.Fatal("no tags requested: the copy call would retrieve no attributes")
			}
			for _, want := range tc.want {
				if !containsTag(tags, want) {
					t.Errorf("tag %s not requested", want)
				}
			}
			for _, banned := range tc.exclude {
				if containsTag(tags, banned) {
					t.Errorf("tag %s requested for the wrong class", banned)
				}
			}
		})
	}
}

func TestLoadQuerySpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	content := `class: inet
server: example.com
account: alice
limit: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadQuerySpec(path)
	if err != nil {
		t.Fatal(err)
	}
	want := QuerySpec{Class: "inet", Server: "example.com", Account: "alice", Limit: 5}
	if *spec != want {
		t.Errorf("spec = %+v, want %+v", *spec, want)
	}
}

func TestLoadQuerySpecDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := os.WriteFile(path, []byte("service: my-app\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadQuerySpec(path)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Class != "" || spec.Service != "my-app" || spec.Limit != 0 {
		t.Errorf("spec = %+v", *spec)
	}
}

func TestLoadQuerySpecMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadQuerySpec(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadQuerySpecMissingFile(t *testing.T) {
	if _, err := LoadQuerySpec(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
