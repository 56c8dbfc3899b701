package sec

import (
	"testing"

	"github.com/wippyai/keychain-bridge/fourcc"
)

func TestItemAttrTags(t *testing.T) {
	tests := []struct {
		name string
		tag  fourcc.Code
		want string
	}{
		{"service", ItemAttrService, "svce"},
		{"account", ItemAttrAccount, "acct"},
		{"server", ItemAttrServer, "srvr"},
		{"label", ItemAttrLabel, "labl"},
		{"protocol", ItemAttrProtocol, "ptcl"},
		{"creation date", ItemAttrCreationDate, "cdat"},
		{"mod date", ItemAttrModDate, "mdat"},
		{"generic", ItemAttrGeneric, "gena"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tag.String(); got != tc.want {
				t.Errorf("tag = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestItemAttrTagsDistinct(t *testing.T) {
	tags := []fourcc.Code{
		ItemAttrCreationDate, ItemAttrModDate, ItemAttrDescription,
		ItemAttrComment, ItemAttrCreator, ItemAttrType, ItemAttrLabel,
		ItemAttrInvisible, ItemAttrNegative, ItemAttrAccount,
		ItemAttrService, ItemAttrGeneric, ItemAttrSecurityDomain,
		ItemAttrServer, ItemAttrAuthType, ItemAttrPort, ItemAttrPath,
		ItemAttrProtocol,
	}
	seen := map[fourcc.Code]bool{}
	for _, tag := range tags {
		if seen[tag] {
			t.Errorf("tag %s declared twice", tag)
		}
		seen[tag] = true
	}
}
