package jwsalg

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// DefaultSecretLength is the length of generated HMAC secrets.
	// Six characters are only good for tests and demos,
	// use WithSecretLength for anything else.
	DefaultSecretLength = 6
	// DefaultRSABits is the modulus size of generated RSA keys.
	DefaultRSABits = 2048
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var curves = map[string]elliptic.Curve{
	"ES256": elliptic.P256(),
	"ES384": elliptic.P384(),
	"ES512": elliptic.P521(),
}

// GeneratedKey is fresh key material for one algorithm.
type GeneratedKey struct {
	Alg    string
	Family Family
	KeyID  string
	// Secret is set for symmetric algorithms.
	Secret string
	// Private is the standard base64 of the PKCS#8 private key,
	// set for RSA and EC algorithms.
	Private string
	// PublicPEM is the PKIX public key in PEM form, set with Private.
	PublicPEM string
}

// Material returns the secret or the private key material,
// whichever the algorithm family uses.
func (k *GeneratedKey) Material() string {
	if k.Family == FamilySymmetric {
		return k.Secret
	}
	return k.Private
}

type generateConfig struct {
	secretLength int
	rsaBits      int
	random       io.Reader
}

// GenerateOption configures GenerateKey.
type GenerateOption func(*generateConfig)

// WithSecretLength sets the length of generated HMAC secrets.
func WithSecretLength(n int) GenerateOption {
	return func(c *generateConfig) {
		c.secretLength = n
	}
}

// WithRSABits sets the modulus size of generated RSA keys.
func WithRSABits(bits int) GenerateOption {
	return func(c *generateConfig) {
		c.rsaBits = bits
	}
}

// WithRandom replaces crypto/rand.Reader as the entropy source.
func WithRandom(r io.Reader) GenerateOption {
	return func(c *generateConfig) {
		c.random = r
	}
}

// GenerateKey produces fresh key material for the named algorithm.
//
// Symmetric algorithms get a random alphanumeric secret, RSA algorithms a
// DefaultRSABits key pair and EC algorithms a key pair on the curve the
// algorithm is defined for. Unknown names and "none" return a *KeyError
// wrapping ErrUnsupportedFamily.
func GenerateKey(name string, opts ...GenerateOption) (*GeneratedKey, error) {
	cfg := generateConfig{
		secretLength: DefaultSecretLength,
		rsaBits:      DefaultRSABits,
		random:       rand.Reader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	family := LookupFamily(name)
	fail := func(err error) (*GeneratedKey, error) {
		return nil, &KeyError{Kind: KeyGenerationError, Alg: name, Family: family, Err: err}
	}

	if family == FamilyNone {
		return fail(ErrUnsupportedFamily)
	}

	key := &GeneratedKey{Alg: name, Family: family}
	id, err := uuid.NewRandom()
	if err != nil {
		return fail(errors.Wrap(err, "key id"))
	}
	key.KeyID = id.String()

	var signer crypto.Signer
	switch family {
	case FamilySymmetric:
		secret, err := randomAlphanumeric(cfg.random, cfg.secretLength)
		if err != nil {
			return fail(err)
		}
		key.Secret = secret
		return key, nil
	case FamilyRSA:
		privateKey, err := rsa.GenerateKey(cfg.random, cfg.rsaBits)
		if err != nil {
			return fail(errors.Wrap(err, "rsa"))
		}
		signer = privateKey
	case FamilyEC:
		privateKey, err := ecdsa.GenerateKey(curves[name], cfg.random)
		if err != nil {
			return fail(errors.Wrap(err, "ecdsa"))
		}
		signer = privateKey
	}

	der, err := x509.MarshalPKCS8PrivateKey(signer)
	if err != nil {
		return fail(errors.Wrap(err, "pkcs8"))
	}
	key.Private = base64.StdEncoding.EncodeToString(der)

	if key.PublicPEM, err = encodePublicKeyPEM(signer.Public()); err != nil {
		return fail(err)
	}

	return key, nil
}

// randomAlphanumeric draws n characters uniformly from alphanumeric.
func randomAlphanumeric(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", errors.Errorf("invalid secret length %d", n)
	}

	// largest multiple of len(alphanumeric) that fits a byte, avoids modulo bias.
	const limit = 256 - 256%len(alphanumeric)

	var (
		sb  strings.Builder
		buf = make([]byte, n)
	)
	sb.Grow(n)
	for sb.Len() < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", errors.Wrap(err, "reading random bytes")
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(alphanumeric[int(b)%len(alphanumeric)])
			if sb.Len() == n {
				break
			}
		}
	}

	return sb.String(), nil
}

func encodePublicKeyPEM(publicKey crypto.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", errors.Wrap(err, "pkix")
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}

// ParsePrivateKeyMaterial parses private key material as returned by
// GenerateKeyMaterial: the base64 of a PKCS#8 private key, optionally
// PEM-wrapped. The result is an *rsa.PrivateKey or *ecdsa.PrivateKey.
func ParsePrivateKeyMaterial(material string) (crypto.Signer, error) {
	var der []byte
	if block, _ := pem.Decode([]byte(strings.TrimSpace(material))); block != nil {
		der = block.Bytes
	} else {
		var err error
		if der, err = decodeKeyMaterial(material); err != nil {
			return nil, &KeyError{Kind: ParseError, Err: err}
		}
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, &KeyError{Kind: ParseError, Err: errors.Wrap(err, "pkcs8")}
	}

	switch key := key.(type) {
	case *rsa.PrivateKey:
		return key, nil
	case *ecdsa.PrivateKey:
		return key, nil
	default:
		return nil, &KeyError{Kind: ParseError, Err: errors.Wrapf(ErrInvalidKey, "unsupported private key type %T", key)}
	}
}

// DerivePublicKeyPEM returns the PEM public key of private key material
// produced by GenerateKeyMaterial, ready to pass to Resolve.
func DerivePublicKeyPEM(privateMaterial string) (string, error) {
	signer, err := ParsePrivateKeyMaterial(privateMaterial)
	if err != nil {
		return "", err
	}

	return encodePublicKeyPEM(signer.Public())
}
