package sec

import "github.com/wippyai/keychain-bridge/fourcc"

// Keychain item attribute tags (the SecItemAttr four-character codes).
// These name which attributes an ItemCopyContent request retrieves and
// identify the records that come back. Which tags an item carries depends
// on its class: service and generic belong to generic passwords, server,
// protocol, path, port, security domain, and authentication type to
// internet passwords.
var (
	ItemAttrCreationDate   = fourcc.FromString("cdat")
	ItemAttrModDate        = fourcc.FromString("mdat")
	ItemAttrDescription    = fourcc.FromString("desc")
	ItemAttrComment        = fourcc.FromString("icmt")
	ItemAttrCreator        = fourcc.FromString("crtr")
	ItemAttrType           = fourcc.FromString("type")
	ItemAttrLabel          = fourcc.FromString("labl")
	ItemAttrInvisible      = fourcc.FromString("invi")
	ItemAttrNegative       = fourcc.FromString("nega")
	ItemAttrAccount        = fourcc.FromString("acct")
	ItemAttrService        = fourcc.FromString("svce")
	ItemAttrGeneric        = fourcc.FromString("gena")
	ItemAttrSecurityDomain = fourcc.FromString("sdmn")
	ItemAttrServer         = fourcc.FromString("srvr")
	ItemAttrAuthType       = fourcc.FromString("atyp")
	ItemAttrPort           = fourcc.FromString("port")
	ItemAttrPath           = fourcc.FromString("path")
	ItemAttrProtocol       = fourcc.FromString("ptcl")
)
