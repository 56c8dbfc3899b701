//go:build darwin && cgo

package sec

/*
#include <Security/Security.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/keychain-bridge/cf"
)

func strc(p C.CFStringRef) cf.Ref {
	return cf.Ref(unsafe.Pointer(p))
}

// The kSec* constant catalogue. Values are CFString references supplied by
// the framework at link time; this layer treats them as inert identifiers
// passed through to queries and parameter dictionaries unchanged. The set
// is owned and extended by the framework, so callers compare open-world
// against these rather than matching exhaustively.

// Item classes.
var (
	Class                 = strc(C.kSecClass)
	ClassGenericPassword  = strc(C.kSecClassGenericPassword)
	ClassInternetPassword = strc(C.kSecClassInternetPassword)
	ClassCertificate      = strc(C.kSecClassCertificate)
	ClassKey              = strc(C.kSecClassKey)
	ClassIdentity         = strc(C.kSecClassIdentity)
)

// Accessibility levels.
var (
	AttrAccessible                               = strc(C.kSecAttrAccessible)
	AttrAccessibleWhenPasscodeSetThisDeviceOnly  = strc(C.kSecAttrAccessibleWhenPasscodeSetThisDeviceOnly)
	AttrAccessibleWhenUnlockedThisDeviceOnly     = strc(C.kSecAttrAccessibleWhenUnlockedThisDeviceOnly)
	AttrAccessibleWhenUnlocked                   = strc(C.kSecAttrAccessibleWhenUnlocked)
	AttrAccessibleAfterFirstUnlockThisDeviceOnly = strc(C.kSecAttrAccessibleAfterFirstUnlockThisDeviceOnly)
	AttrAccessibleAfterFirstUnlock               = strc(C.kSecAttrAccessibleAfterFirstUnlock)
	AttrAccessibleAlwaysThisDeviceOnly           = strc(C.kSecAttrAccessibleAlwaysThisDeviceOnly)
	AttrAccessibleAlways                         = strc(C.kSecAttrAccessibleAlways)
)

// Item attribute keys.
var (
	AttrAccessControl        = strc(C.kSecAttrAccessControl)
	AttrAccount              = strc(C.kSecAttrAccount)
	AttrApplicationLabel     = strc(C.kSecAttrApplicationLabel)
	AttrApplicationTag       = strc(C.kSecAttrApplicationTag)
	AttrLabel                = strc(C.kSecAttrLabel)
	AttrServer               = strc(C.kSecAttrServer)
	AttrService              = strc(C.kSecAttrService)
	AttrSynchronizable       = strc(C.kSecAttrSynchronizable)
	AttrTokenID              = strc(C.kSecAttrTokenID)
	AttrTokenIDSecureEnclave = strc(C.kSecAttrTokenIDSecureEnclave)
)

// Key attribute keys and classes.
var (
	AttrCanEncrypt    = strc(C.kSecAttrCanEncrypt)
	AttrCanDecrypt    = strc(C.kSecAttrCanDecrypt)
	AttrCanDerive     = strc(C.kSecAttrCanDerive)
	AttrCanSign       = strc(C.kSecAttrCanSign)
	AttrCanVerify     = strc(C.kSecAttrCanVerify)
	AttrCanWrap       = strc(C.kSecAttrCanWrap)
	AttrCanUnwrap     = strc(C.kSecAttrCanUnwrap)
	AttrIsExtractable = strc(C.kSecAttrIsExtractable)
	AttrIsPermanent   = strc(C.kSecAttrIsPermanent)
	AttrIsSensitive   = strc(C.kSecAttrIsSensitive)

	AttrKeyClass          = strc(C.kSecAttrKeyClass)
	AttrKeyClassPublic    = strc(C.kSecAttrKeyClassPublic)
	AttrKeyClassPrivate   = strc(C.kSecAttrKeyClassPrivate)
	AttrKeyClassSymmetric = strc(C.kSecAttrKeyClassSymmetric)

	AttrKeyType                 = strc(C.kSecAttrKeyType)
	AttrKeyTypeAES              = strc(C.kSecAttrKeyTypeAES)
	AttrKeyTypeRSA              = strc(C.kSecAttrKeyTypeRSA)
	AttrKeyTypeECSECPrimeRandom = strc(C.kSecAttrKeyTypeECSECPrimeRandom)
	AttrKeySizeInBits           = strc(C.kSecAttrKeySizeInBits)
)

// Internet password protocol tags.
var (
	AttrProtocol           = strc(C.kSecAttrProtocol)
	AttrProtocolFTP        = strc(C.kSecAttrProtocolFTP)
	AttrProtocolFTPAccount = strc(C.kSecAttrProtocolFTPAccount)
	AttrProtocolHTTP       = strc(C.kSecAttrProtocolHTTP)
	AttrProtocolIRC        = strc(C.kSecAttrProtocolIRC)
	AttrProtocolNNTP       = strc(C.kSecAttrProtocolNNTP)
	AttrProtocolPOP3       = strc(C.kSecAttrProtocolPOP3)
	AttrProtocolSMTP       = strc(C.kSecAttrProtocolSMTP)
	AttrProtocolSOCKS      = strc(C.kSecAttrProtocolSOCKS)
	AttrProtocolIMAP       = strc(C.kSecAttrProtocolIMAP)
	AttrProtocolLDAP       = strc(C.kSecAttrProtocolLDAP)
	AttrProtocolAppleTalk  = strc(C.kSecAttrProtocolAppleTalk)
	AttrProtocolAFP        = strc(C.kSecAttrProtocolAFP)
	AttrProtocolTelnet     = strc(C.kSecAttrProtocolTelnet)
	AttrProtocolSSH        = strc(C.kSecAttrProtocolSSH)
	AttrProtocolFTPS       = strc(C.kSecAttrProtocolFTPS)
	AttrProtocolHTTPS      = strc(C.kSecAttrProtocolHTTPS)
	AttrProtocolHTTPProxy  = strc(C.kSecAttrProtocolHTTPProxy)
	AttrProtocolHTTPSProxy = strc(C.kSecAttrProtocolHTTPSProxy)
	AttrProtocolFTPProxy   = strc(C.kSecAttrProtocolFTPProxy)
	AttrProtocolSMB        = strc(C.kSecAttrProtocolSMB)
	AttrProtocolRTSP       = strc(C.kSecAttrProtocolRTSP)
	AttrProtocolRTSPProxy  = strc(C.kSecAttrProtocolRTSPProxy)
	AttrProtocolDAAP       = strc(C.kSecAttrProtocolDAAP)
	AttrProtocolEPPC       = strc(C.kSecAttrProtocolEPPC)
	AttrProtocolIPP        = strc(C.kSecAttrProtocolIPP)
	AttrProtocolNNTPS      = strc(C.kSecAttrProtocolNNTPS)
	AttrProtocolLDAPS      = strc(C.kSecAttrProtocolLDAPS)
	AttrProtocolTelnetS    = strc(C.kSecAttrProtocolTelnetS)
	AttrProtocolIMAPS      = strc(C.kSecAttrProtocolIMAPS)
	AttrProtocolIRCS       = strc(C.kSecAttrProtocolIRCS)
	AttrProtocolPOP3S      = strc(C.kSecAttrProtocolPOP3S)
)

// Key algorithms: ECIES encryption.
var (
	KeyAlgorithmECIESEncryptionStandardX963SHA1AESGCM   = strc(C.kSecKeyAlgorithmECIESEncryptionStandardX963SHA1AESGCM)
	KeyAlgorithmECIESEncryptionStandardX963SHA224AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardX963SHA224AESGCM)
	KeyAlgorithmECIESEncryptionStandardX963SHA256AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardX963SHA256AESGCM)
	KeyAlgorithmECIESEncryptionStandardX963SHA384AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardX963SHA384AESGCM)
	KeyAlgorithmECIESEncryptionStandardX963SHA512AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardX963SHA512AESGCM)

	KeyAlgorithmECIESEncryptionStandardVariableIVX963SHA224AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardVariableIVX963SHA224AESGCM)
	KeyAlgorithmECIESEncryptionStandardVariableIVX963SHA256AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardVariableIVX963SHA256AESGCM)
	KeyAlgorithmECIESEncryptionStandardVariableIVX963SHA384AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardVariableIVX963SHA384AESGCM)
	KeyAlgorithmECIESEncryptionStandardVariableIVX963SHA512AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionStandardVariableIVX963SHA512AESGCM)

	KeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA224AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA224AESGCM)
	KeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA256AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA256AESGCM)
	KeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA384AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA384AESGCM)
	KeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA512AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorVariableIVX963SHA512AESGCM)

	KeyAlgorithmECIESEncryptionCofactorX963SHA1AESGCM   = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorX963SHA1AESGCM)
	KeyAlgorithmECIESEncryptionCofactorX963SHA224AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorX963SHA224AESGCM)
	KeyAlgorithmECIESEncryptionCofactorX963SHA256AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorX963SHA256AESGCM)
	KeyAlgorithmECIESEncryptionCofactorX963SHA384AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorX963SHA384AESGCM)
	KeyAlgorithmECIESEncryptionCofactorX963SHA512AESGCM = strc(C.kSecKeyAlgorithmECIESEncryptionCofactorX963SHA512AESGCM)
)

// Key algorithms: ECDSA signatures and ECDH key exchange.
var (
	KeyAlgorithmECDSASignatureRFC4754          = strc(C.kSecKeyAlgorithmECDSASignatureRFC4754)
	KeyAlgorithmECDSASignatureDigestX962       = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962)
	KeyAlgorithmECDSASignatureDigestX962SHA1   = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962SHA1)
	KeyAlgorithmECDSASignatureDigestX962SHA224 = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962SHA224)
	KeyAlgorithmECDSASignatureDigestX962SHA256 = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962SHA256)
	KeyAlgorithmECDSASignatureDigestX962SHA384 = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962SHA384)
	KeyAlgorithmECDSASignatureDigestX962SHA512 = strc(C.kSecKeyAlgorithmECDSASignatureDigestX962SHA512)

	KeyAlgorithmECDSASignatureMessageX962SHA1   = strc(C.kSecKeyAlgorithmECDSASignatureMessageX962SHA1)
	KeyAlgorithmECDSASignatureMessageX962SHA224 = strc(C.kSecKeyAlgorithmECDSASignatureMessageX962SHA224)
	KeyAlgorithmECDSASignatureMessageX962SHA256 = strc(C.kSecKeyAlgorithmECDSASignatureMessageX962SHA256)
	KeyAlgorithmECDSASignatureMessageX962SHA384 = strc(C.kSecKeyAlgorithmECDSASignatureMessageX962SHA384)
	KeyAlgorithmECDSASignatureMessageX962SHA512 = strc(C.kSecKeyAlgorithmECDSASignatureMessageX962SHA512)

	KeyAlgorithmECDHKeyExchangeCofactor         = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactor)
	KeyAlgorithmECDHKeyExchangeStandard         = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandard)
	KeyAlgorithmECDHKeyExchangeCofactorX963SHA1 = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactorX963SHA1)
	KeyAlgorithmECDHKeyExchangeStandardX963SHA1 = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandardX963SHA1)

	KeyAlgorithmECDHKeyExchangeCofactorX963SHA224 = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactorX963SHA224)
	KeyAlgorithmECDHKeyExchangeCofactorX963SHA256 = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactorX963SHA256)
	KeyAlgorithmECDHKeyExchangeCofactorX963SHA384 = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactorX963SHA384)
	KeyAlgorithmECDHKeyExchangeCofactorX963SHA512 = strc(C.kSecKeyAlgorithmECDHKeyExchangeCofactorX963SHA512)
	KeyAlgorithmECDHKeyExchangeStandardX963SHA224 = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandardX963SHA224)
	KeyAlgorithmECDHKeyExchangeStandardX963SHA256 = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandardX963SHA256)
	KeyAlgorithmECDHKeyExchangeStandardX963SHA384 = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandardX963SHA384)
	KeyAlgorithmECDHKeyExchangeStandardX963SHA512 = strc(C.kSecKeyAlgorithmECDHKeyExchangeStandardX963SHA512)
)

// Key algorithms: RSA encryption and signatures.
var (
	KeyAlgorithmRSAEncryptionRaw        = strc(C.kSecKeyAlgorithmRSAEncryptionRaw)
	KeyAlgorithmRSAEncryptionPKCS1      = strc(C.kSecKeyAlgorithmRSAEncryptionPKCS1)
	KeyAlgorithmRSAEncryptionOAEPSHA1   = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA1)
	KeyAlgorithmRSAEncryptionOAEPSHA224 = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA224)
	KeyAlgorithmRSAEncryptionOAEPSHA256 = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA256)
	KeyAlgorithmRSAEncryptionOAEPSHA384 = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA384)
	KeyAlgorithmRSAEncryptionOAEPSHA512 = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA512)

	KeyAlgorithmRSAEncryptionOAEPSHA1AESGCM   = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA1AESGCM)
	KeyAlgorithmRSAEncryptionOAEPSHA224AESGCM = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA224AESGCM)
	KeyAlgorithmRSAEncryptionOAEPSHA256AESGCM = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA256AESGCM)
	KeyAlgorithmRSAEncryptionOAEPSHA384AESGCM = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA384AESGCM)
	KeyAlgorithmRSAEncryptionOAEPSHA512AESGCM = strc(C.kSecKeyAlgorithmRSAEncryptionOAEPSHA512AESGCM)

	KeyAlgorithmRSASignatureRaw                  = strc(C.kSecKeyAlgorithmRSASignatureRaw)
	KeyAlgorithmRSASignatureDigestPKCS1v15Raw    = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15Raw)
	KeyAlgorithmRSASignatureDigestPKCS1v15SHA1   = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15SHA1)
	KeyAlgorithmRSASignatureDigestPKCS1v15SHA224 = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15SHA224)
	KeyAlgorithmRSASignatureDigestPKCS1v15SHA256 = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15SHA256)
	KeyAlgorithmRSASignatureDigestPKCS1v15SHA384 = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15SHA384)
	KeyAlgorithmRSASignatureDigestPKCS1v15SHA512 = strc(C.kSecKeyAlgorithmRSASignatureDigestPKCS1v15SHA512)

	KeyAlgorithmRSASignatureMessagePKCS1v15SHA1   = strc(C.kSecKeyAlgorithmRSASignatureMessagePKCS1v15SHA1)
	KeyAlgorithmRSASignatureMessagePKCS1v15SHA224 = strc(C.kSecKeyAlgorithmRSASignatureMessagePKCS1v15SHA224)
	KeyAlgorithmRSASignatureMessagePKCS1v15SHA256 = strc(C.kSecKeyAlgorithmRSASignatureMessagePKCS1v15SHA256)
	KeyAlgorithmRSASignatureMessagePKCS1v15SHA384 = strc(C.kSecKeyAlgorithmRSASignatureMessagePKCS1v15SHA384)
	KeyAlgorithmRSASignatureMessagePKCS1v15SHA512 = strc(C.kSecKeyAlgorithmRSASignatureMessagePKCS1v15SHA512)

	KeyAlgorithmRSASignatureDigestPSSSHA1   = strc(C.kSecKeyAlgorithmRSASignatureDigestPSSSHA1)
	KeyAlgorithmRSASignatureDigestPSSSHA224 = strc(C.kSecKeyAlgorithmRSASignatureDigestPSSSHA224)
	KeyAlgorithmRSASignatureDigestPSSSHA256 = strc(C.kSecKeyAlgorithmRSASignatureDigestPSSSHA256)
	KeyAlgorithmRSASignatureDigestPSSSHA384 = strc(C.kSecKeyAlgorithmRSASignatureDigestPSSSHA384)
	KeyAlgorithmRSASignatureDigestPSSSHA512 = strc(C.kSecKeyAlgorithmRSASignatureDigestPSSSHA512)

	KeyAlgorithmRSASignatureMessagePSSSHA1   = strc(C.kSecKeyAlgorithmRSASignatureMessagePSSSHA1)
	KeyAlgorithmRSASignatureMessagePSSSHA224 = strc(C.kSecKeyAlgorithmRSASignatureMessagePSSSHA224)
	KeyAlgorithmRSASignatureMessagePSSSHA256 = strc(C.kSecKeyAlgorithmRSASignatureMessagePSSSHA256)
	KeyAlgorithmRSASignatureMessagePSSSHA384 = strc(C.kSecKeyAlgorithmRSASignatureMessagePSSSHA384)
	KeyAlgorithmRSASignatureMessagePSSSHA512 = strc(C.kSecKeyAlgorithmRSASignatureMessagePSSSHA512)
)

// Legacy keychain key attribute constants (SecKeychainItem attribute
// dictionary keys).
var (
	KeyAlwaysSensitive  = strc(C.kSecKeyAlwaysSensitive)
	KeyDecrypt          = strc(C.kSecKeyDecrypt)
	KeyDerive           = strc(C.kSecKeyDerive)
	KeyEffectiveKeySize = strc(C.kSecKeyEffectiveKeySize)
	KeyEncrypt          = strc(C.kSecKeyEncrypt)
	KeyEndDate          = strc(C.kSecKeyEndDate)
	KeyExtractable      = strc(C.kSecKeyExtractable)
	KeyKeySizeInBits    = strc(C.kSecKeyKeySizeInBits)
	KeyKeyType          = strc(C.kSecKeyKeyType)
	KeyModifiable       = strc(C.kSecKeyModifiable)
	KeyNeverExtractable = strc(C.kSecKeyNeverExtractable)
	KeyPermanent        = strc(C.kSecKeyPermanent)
	KeyPrivate          = strc(C.kSecKeyPrivate)
	KeySensitive        = strc(C.kSecKeySensitive)
	KeySign             = strc(C.kSecKeySign)
	KeyStartDate        = strc(C.kSecKeyStartDate)
	KeyUnwrap           = strc(C.kSecKeyUnwrap)
	KeyVerify           = strc(C.kSecKeyVerify)
	KeyWrap             = strc(C.kSecKeyWrap)
)

// Query construction keys.
var (
	MatchLimit         = strc(C.kSecMatchLimit)
	MatchLimitOne      = strc(C.kSecMatchLimitOne)
	MatchLimitAll      = strc(C.kSecMatchLimitAll)
	PrivateKeyAttrs    = strc(C.kSecPrivateKeyAttrs)
	ReturnRef          = strc(C.kSecReturnRef)
	UseKeychain        = strc(C.kSecUseKeychain)
	UseOperationPrompt = strc(C.kSecUseOperationPrompt)
	ValueData          = strc(C.kSecValueData)
)
