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

// KeyOperation selects the operation class for algorithm-support queries
// (the SecKeyOperationType enumeration).
type KeyOperation int

const (
	KeyOperationSign KeyOperation = iota
	KeyOperationVerify
	KeyOperationEncrypt
	KeyOperationDecrypt
	KeyOperationKeyExchange
)

func keyRef(k KeyRef) C.SecKeyRef {
	return C.SecKeyRef(unsafe.Pointer(k))
}

// copyData converts an owned CFData result into a Go byte slice, releasing
// the reference. Data-bearing results follow the Core Foundation copy rule,
// so the conversion consumes them here rather than pushing the release
// obligation up to the caller.
func copyData(d C.CFDataRef) []byte {
	if d == nil {
		return nil
	}
	r := cf.Ref(unsafe.Pointer(d))
	defer cf.Release(r)
	return cf.GoBytes(r)
}

// KeyCreateWithData builds a key from its external representation and an
// attribute dictionary describing its type and class. The caller owns the
// returned key.
func KeyCreateWithData(keyData []byte, attributes cf.Ref) (KeyRef, error) {
	data := cf.Data(keyData)
	defer cf.Release(data)

	var cfErr C.CFErrorRef
	key := C.SecKeyCreateWithData(
		C.CFDataRef(unsafe.Pointer(data)),
		C.CFDictionaryRef(unsafe.Pointer(attributes)),
		&cfErr,
	)
	traceCall("SecKeyCreateWithData", key != nil)
	if key == nil {
		return 0, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return KeyRef(unsafe.Pointer(key)), nil
}

// KeyGeneratePair generates a public/private key pair per the parameter
// dictionary. The caller owns both returned keys.
func KeyGeneratePair(parameters cf.Ref) (KeyRef, KeyRef, Status) {
	var pub, priv C.SecKeyRef
	status := trace("SecKeyGeneratePair", Status(C.SecKeyGeneratePair(
		C.CFDictionaryRef(unsafe.Pointer(parameters)), &pub, &priv)))
	return KeyRef(unsafe.Pointer(pub)), KeyRef(unsafe.Pointer(priv)), status
}

// KeyCreateRandomKey generates a new key per the parameter dictionary
// (type, size, token, access control). The caller owns the returned key.
func KeyCreateRandomKey(parameters cf.Ref) (KeyRef, error) {
	var cfErr C.CFErrorRef
	key := C.SecKeyCreateRandomKey(
		C.CFDictionaryRef(unsafe.Pointer(parameters)), &cfErr)
	traceCall("SecKeyCreateRandomKey", key != nil)
	if key == nil {
		return 0, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return KeyRef(unsafe.Pointer(key)), nil
}

// KeyCopyPublicKey returns the public half of a key pair, or false when the
// framework cannot derive one. The caller owns the returned key.
func KeyCopyPublicKey(key KeyRef) (KeyRef, bool) {
	pub := C.SecKeyCopyPublicKey(keyRef(key))
	traceCall("SecKeyCopyPublicKey", pub != nil)
	if pub == nil {
		return 0, false
	}
	return KeyRef(unsafe.Pointer(pub)), true
}

// KeyCopyExternalRepresentation exports a key's external representation
// (X9.63 for EC keys, PKCS#1 for RSA). Fails for keys marked
// non-extractable.
func KeyCopyExternalRepresentation(key KeyRef) ([]byte, error) {
	var cfErr C.CFErrorRef
	data := C.SecKeyCopyExternalRepresentation(keyRef(key), &cfErr)
	traceCall("SecKeyCopyExternalRepresentation", data != nil)
	if data == nil {
		return nil, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return copyData(data), nil
}

// KeyCopyAttributes returns a key's attribute dictionary. The caller owns
// the returned reference.
func KeyCopyAttributes(key KeyRef) cf.Ref {
	d := C.SecKeyCopyAttributes(keyRef(key))
	traceCall("SecKeyCopyAttributes", d != nil)
	return cf.Ref(unsafe.Pointer(d))
}

// KeyIsAlgorithmSupported reports whether the key supports the algorithm
// for the given operation class.
func KeyIsAlgorithmSupported(key KeyRef, op KeyOperation, algorithm cf.Ref) bool {
	ok := C.SecKeyIsAlgorithmSupported(keyRef(key), C.SecKeyOperationType(op),
		C.SecKeyAlgorithm(unsafe.Pointer(algorithm)))
	traceCall("SecKeyIsAlgorithmSupported", ok != 0)
	return ok != 0
}

// KeyCreateSignature signs data (or a precomputed digest, depending on the
// algorithm) with the key.
func KeyCreateSignature(key KeyRef, algorithm cf.Ref, dataToSign []byte) ([]byte, error) {
	data := cf.Data(dataToSign)
	defer cf.Release(data)

	var cfErr C.CFErrorRef
	sig := C.SecKeyCreateSignature(keyRef(key),
		C.SecKeyAlgorithm(unsafe.Pointer(algorithm)),
		C.CFDataRef(unsafe.Pointer(data)), &cfErr)
	traceCall("SecKeyCreateSignature", sig != nil)
	if sig == nil {
		return nil, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return copyData(sig), nil
}

// KeyVerifySignature verifies a signature over data with the key. A false
// result with a nil error means the framework rejected the signature
// without reporting a distinct failure.
func KeyVerifySignature(key KeyRef, algorithm cf.Ref, signedData, signature []byte) (bool, error) {
	data := cf.Data(signedData)
	defer cf.Release(data)
	sig := cf.Data(signature)
	defer cf.Release(sig)

	var cfErr C.CFErrorRef
	ok := C.SecKeyVerifySignature(keyRef(key),
		C.SecKeyAlgorithm(unsafe.Pointer(algorithm)),
		C.CFDataRef(unsafe.Pointer(data)),
		C.CFDataRef(unsafe.Pointer(sig)), &cfErr)
	traceCall("SecKeyVerifySignature", ok != 0)
	if ok != 0 {
		return true, nil
	}
	return false, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
}

// KeyCreateEncryptedData encrypts plaintext with the key and algorithm.
func KeyCreateEncryptedData(key KeyRef, algorithm cf.Ref, plaintext []byte) ([]byte, error) {
	data := cf.Data(plaintext)
	defer cf.Release(data)

	var cfErr C.CFErrorRef
	ct := C.SecKeyCreateEncryptedData(keyRef(key),
		C.SecKeyAlgorithm(unsafe.Pointer(algorithm)),
		C.CFDataRef(unsafe.Pointer(data)), &cfErr)
	traceCall("SecKeyCreateEncryptedData", ct != nil)
	if ct == nil {
		return nil, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return copyData(ct), nil
}

// KeyCreateDecryptedData decrypts ciphertext with the key and algorithm.
func KeyCreateDecryptedData(key KeyRef, algorithm cf.Ref, ciphertext []byte) ([]byte, error) {
	data := cf.Data(ciphertext)
	defer cf.Release(data)

	var cfErr C.CFErrorRef
	pt := C.SecKeyCreateDecryptedData(keyRef(key),
		C.SecKeyAlgorithm(unsafe.Pointer(algorithm)),
		C.CFDataRef(unsafe.Pointer(data)), &cfErr)
	traceCall("SecKeyCreateDecryptedData", pt != nil)
	if pt == nil {
		return nil, cf.ConsumeError(cf.Ref(unsafe.Pointer(cfErr)))
	}
	return copyData(pt), nil
}
