package jwsalg

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	pemPublicKeyHeader = "-----BEGIN PUBLIC KEY-----"
	pemPublicKeyFooter = "-----END PUBLIC KEY-----"
)

// ErrUnsupportedFamily is returned when key material is requested
// for a family that has no key type, i.e. FamilyNone.
var ErrUnsupportedFamily = errors.New("jwsalg: unsupported key family")

// ErrorKind classifies a KeyError.
type ErrorKind uint8

const (
	// ParseError reports malformed base64 or X.509 key material.
	ParseError ErrorKind = iota + 1
	// KeyGenerationError reports a failure to produce new key material.
	KeyGenerationError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case KeyGenerationError:
		return "key generation error"
	default:
		return "unknown error"
	}
}

// KeyError is returned by the key material resolver.
type KeyError struct {
	Kind   ErrorKind
	Alg    string // empty when not known by the caller
	Family Family
	Err    error
}

func (e *KeyError) Error() string {
	if e.Alg != "" {
		return fmt.Sprintf("jwsalg: %s: %s (%s): %v", e.Alg, e.Kind, e.Family, e.Err)
	}
	return fmt.Sprintf("jwsalg: %s (%s): %v", e.Kind, e.Family, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// IsKeyError reports whether err is a KeyError of the given kind.
func IsKeyError(err error, kind ErrorKind) bool {
	var keyErr *KeyError
	return errors.As(err, &keyErr) && keyErr.Kind == kind
}

// ParsePublicKey turns textual public key material into a key of the given family.
//
// The material is the base64 form of an X.509 (PKIX) encoded public key,
// optionally wrapped in "-----BEGIN PUBLIC KEY-----" and
// "-----END PUBLIC KEY-----" lines. Whitespace anywhere in it is ignored.
//
// Empty or whitespace-only material is not an error: it returns a nil key
// and a nil error. Anything that fails to decode returns a *KeyError of
// kind ParseError. The returned key is an *rsa.PublicKey for FamilyRSA
// and an *ecdsa.PublicKey for FamilyEC.
func ParsePublicKey(material string, family Family) (crypto.PublicKey, error) {
	if strings.TrimSpace(material) == "" {
		return nil, nil
	}

	if family != FamilyRSA && family != FamilyEC {
		return nil, &KeyError{Kind: ParseError, Family: family, Err: ErrUnsupportedFamily}
	}

	der, err := decodeKeyMaterial(material)
	if err != nil {
		return nil, &KeyError{Kind: ParseError, Family: family, Err: err}
	}

	key, err := parsePKIXPublicKey(der)
	if err != nil {
		return nil, &KeyError{Kind: ParseError, Family: family, Err: err}
	}

	switch family {
	case FamilyRSA:
		if _, ok := key.(*rsa.PublicKey); !ok {
			return nil, &KeyError{Kind: ParseError, Family: family, Err: errors.Wrapf(ErrInvalidKey, "expected a type of *rsa.PublicKey, got %T", key)}
		}
	case FamilyEC:
		if _, ok := key.(*ecdsa.PublicKey); !ok {
			return nil, &KeyError{Kind: ParseError, Family: family, Err: errors.Wrapf(ErrInvalidKey, "expected a type of *ecdsa.PublicKey, got %T", key)}
		}
	}

	return key, nil
}

// stripKeyMaterial removes the PEM public key markers and all whitespace.
func stripKeyMaterial(material string) string {
	material = strings.ReplaceAll(material, pemPublicKeyHeader, "")
	material = strings.ReplaceAll(material, pemPublicKeyFooter, "")

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, material)
}

// decodeKeyMaterial returns the DER bytes carried by textual key material.
func decodeKeyMaterial(material string) ([]byte, error) {
	stripped := stripKeyMaterial(material)
	if stripped == "" {
		return nil, errors.New("no base64 data between PEM markers")
	}

	enc := base64.StdEncoding
	if len(stripped)%4 != 0 {
		enc = base64.RawStdEncoding
	}

	der, err := enc.DecodeString(stripped)
	if err != nil {
		return nil, errors.Wrap(err, "base64 decode")
	}

	return der, nil
}

// parsePKIXPublicKey falls back to the public key of a DER certificate.
func parsePKIXPublicKey(der []byte) (crypto.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		cert, certErr := x509.ParseCertificate(der)
		if certErr != nil {
			return nil, errors.Wrap(err, "x509 public key")
		}
		key = cert.PublicKey
	}

	return key, nil
}
