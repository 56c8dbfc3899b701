//go:build darwin && cgo

package main

import (
	"fmt"

	"github.com/wippyai/keychain-bridge/cf"
	"github.com/wippyai/keychain-bridge/sec"
)

// Build compiles the spec into an owned query dictionary. The dictionary
// retains everything it holds, so the temporaries created here are
// released before returning; the caller releases the dictionary itself.
func (q *QuerySpec) Build() (cf.Ref, error) {
	pairs := map[cf.Ref]cf.Ref{}
	var owned []cf.Ref
	defer func() {
		for _, r := range owned {
			cf.Release(r)
		}
	}()

	switch q.Class {
	case "", "genp":
		pairs[sec.Class] = sec.ClassGenericPassword
	case "inet":
		pairs[sec.Class] = sec.ClassInternetPassword
	default:
		return 0, fmt.Errorf("unknown item class %q", q.Class)
	}

	addString := func(key cf.Ref, val string) {
		if val == "" {
			return
		}
		s := cf.String(val)
		owned = append(owned, s)
		pairs[key] = s
	}
	addString(sec.AttrService, q.Service)
	addString(sec.AttrAccount, q.Account)
	addString(sec.AttrServer, q.Server)
	addString(sec.AttrLabel, q.Label)

	if q.Limit > 0 {
		n := cf.Number(int32(q.Limit))
		owned = append(owned, n)
		pairs[sec.MatchLimit] = n
	} else {
		pairs[sec.MatchLimit] = sec.MatchLimitAll
	}
	pairs[sec.ReturnRef] = cf.Bool(true)

	return cf.Dictionary(pairs), nil
}
