package jwsalg

import (
	"crypto"
	_ "crypto/sha256" // ignore:lint
	_ "crypto/sha512"
	"errors"
)

var (
	// ErrTokenSignature indicates that signature verification has failed.
	//
	// The computed signature does not match the one provided, either because
	// the payload was tampered with, the wrong key was used or the signature
	// was produced by a different algorithm.
	ErrTokenSignature = errors.New("jwsalg: invalid token signature")

	// ErrInvalidKey indicates that the provided key is not valid for the algorithm.
	//
	// Key requirements per family:
	//   - HMAC (HS256/384/512): []byte (shared secret)
	//   - RSA (RS256/384/512): *rsa.PrivateKey (sign), *rsa.PublicKey (verify)
	//   - ECDSA (ES256/384/512): *ecdsa.PrivateKey (sign), *ecdsa.PublicKey (verify)
	ErrInvalidKey = errors.New("jwsalg: invalid key")

	// ErrMissingKey is returned when an algorithm that requires a key
	// is given none, e.g. after key material failed to parse.
	ErrMissingKey = errors.New("jwsalg: missing key")
)

type (
	// PrivateKey is the key used to sign: a []byte secret,
	// *rsa.PrivateKey or *ecdsa.PrivateKey.
	PrivateKey = any
	// PublicKey is the key used to verify: a []byte secret,
	// *rsa.PublicKey or *ecdsa.PublicKey.
	PublicKey = any
)

// Alg represents a signing algorithm as named by the "alg" header of a token.
//
// Implementations are stateless and safe for concurrent use; the key is
// supplied on every call. See Primitive for an algorithm bound to a key.
type Alg interface {
	// Name returns the case-sensitive algorithm identifier, e.g. "HS256".
	Name() string
	// Sign returns the raw (not base64-encoded) signature of data.
	Sign(key PrivateKey, data []byte) ([]byte, error)
	// Verify reports whether signature is valid for data.
	// It returns ErrTokenSignature on mismatch and ErrInvalidKey
	// when the key type does not fit the algorithm.
	Verify(key PublicKey, data []byte, signature []byte) error
}

var (
	// NONE is the unsecured algorithm. It produces empty signatures
	// and its Verify accepts an empty signature only.
	NONE Alg = &algNONE{}

	// HS256 is HMAC using SHA-256.
	HS256 Alg = &algHMAC{"HS256", crypto.SHA256}
	// HS384 is HMAC using SHA-384.
	HS384 Alg = &algHMAC{"HS384", crypto.SHA384}
	// HS512 is HMAC using SHA-512.
	HS512 Alg = &algHMAC{"HS512", crypto.SHA512}

	// RS256 is RSASSA-PKCS1-v1_5 using SHA-256.
	RS256 Alg = &algRSA{"RS256", crypto.SHA256}
	// RS384 is RSASSA-PKCS1-v1_5 using SHA-384.
	RS384 Alg = &algRSA{"RS384", crypto.SHA384}
	// RS512 is RSASSA-PKCS1-v1_5 using SHA-512.
	RS512 Alg = &algRSA{"RS512", crypto.SHA512}

	// ES256 is ECDSA using P-256 and SHA-256.
	ES256 Alg = &algECDSA{"ES256", crypto.SHA256, 32, 256}
	// ES384 is ECDSA using P-384 and SHA-384.
	ES384 Alg = &algECDSA{"ES384", crypto.SHA384, 48, 384}
	// ES512 is ECDSA using P-521 and SHA-512.
	ES512 Alg = &algECDSA{"ES512", crypto.SHA512, 66, 521}
)
