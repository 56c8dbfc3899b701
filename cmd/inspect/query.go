package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/keychain-bridge/fourcc"
	"github.com/wippyai/keychain-bridge/sec"
)

// QuerySpec describes a keychain item query in plain terms. On darwin it
// compiles into the dictionary the framework's matching entry point
// expects; see Build.
type QuerySpec struct {
	Class   string `yaml:"class"`   // genp or inet
	Service string `yaml:"service"` // service attribute (generic passwords)
	Account string `yaml:"account"` // account attribute
	Server  string `yaml:"server"`  // server attribute (internet passwords)
	Label   string `yaml:"label"`   // user-visible label
	Limit   int    `yaml:"limit"`   // 0 means all matches
}

// classTags names the attributes to retrieve for items of a query's class.
// The copy-content call returns only requested attributes, and requesting a
// tag the class does not carry can fail the call, so the set is per-class.
func classTags(class string) []fourcc.Code {
	tags := []fourcc.Code{
		sec.ItemAttrLabel,
		sec.ItemAttrDescription,
		sec.ItemAttrAccount,
		sec.ItemAttrCreationDate,
		sec.ItemAttrModDate,
	}
	if class == "inet" {
		return append(tags, sec.ItemAttrServer, sec.ItemAttrProtocol, sec.ItemAttrPath)
	}
	return append(tags, sec.ItemAttrService, sec.ItemAttrGeneric)
}

// LoadQuerySpec reads a query spec from a YAML file.
func LoadQuerySpec(path string) (*QuerySpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec := &QuerySpec{}
	if err := yaml.Unmarshal(raw, spec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return spec, nil
}
