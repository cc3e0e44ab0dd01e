package jwsalg

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsigned is returned by Primitive.Verify for the none algorithm.
	// An unsigned token was not verified, whatever its signature part holds.
	ErrUnsigned = errors.New("jwsalg: token is unsigned")
	// ErrUnverifiable is returned by Primitive.Verify when the primitive
	// has no usable key, e.g. because its key material failed to parse.
	ErrUnverifiable = errors.New("jwsalg: signature cannot be verified")
	// ErrSignNotSupported is returned by Primitive.Sign when the primitive
	// only holds a public key.
	ErrSignNotSupported = errors.New("jwsalg: primitive cannot sign")
)

// Result is the outcome of Primitive.Check.
type Result uint8

const (
	// Invalid means the signature does not match.
	Invalid Result = iota
	// Verified means the signature was checked against the bound key and matches.
	Verified
	// Unsigned means the algorithm is none and the signature is empty.
	// Nothing was verified.
	Unsigned
	// Unverifiable means no check could be performed because
	// the primitive has no usable key.
	Unverifiable
)

func (r Result) String() string {
	switch r {
	case Verified:
		return "verified"
	case Unsigned:
		return "unsigned"
	case Unverifiable:
		return "unverifiable"
	default:
		return "invalid"
	}
}

// Primitive is an algorithm bound to a key, as returned by Resolve.
// It is immutable and safe for concurrent use.
type Primitive struct {
	desc      Descriptor
	signKey   PrivateKey
	verifyKey PublicKey
	keyErr    error
}

func newPrimitive(desc Descriptor, signKey PrivateKey, verifyKey PublicKey, keyErr error) *Primitive {
	return &Primitive{desc: desc, signKey: signKey, verifyKey: verifyKey, keyErr: keyErr}
}

var nonePrimitive = newPrimitive(catalog[0], nil, nil, nil)

// NewSigningPrimitive binds a private key (or an HMAC secret) to the named
// algorithm so the result can Sign as well as Verify.
func NewSigningPrimitive(name string, key PrivateKey) (*Primitive, error) {
	desc, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("jwsalg: unknown algorithm %q", name)
	}
	if desc.Family == FamilyNone {
		return nonePrimitive, nil
	}

	// An empty Sign validates the key type up front.
	if _, err := desc.Alg.Sign(key, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return newPrimitive(desc, key, key, nil), nil
}

// Name returns the algorithm name, "none" for unsigned primitives.
func (p *Primitive) Name() string {
	return p.desc.Name
}

// Family returns the algorithm family.
func (p *Primitive) Family() Family {
	return p.desc.Family
}

// Unsigned reports whether p is the none primitive.
func (p *Primitive) Unsigned() bool {
	return p.desc.Family == FamilyNone
}

// KeyErr returns why the primitive has no usable key, or nil.
func (p *Primitive) KeyErr() error {
	return p.keyErr
}

// Sign returns the raw signature of payload.
func (p *Primitive) Sign(payload []byte) ([]byte, error) {
	if p.Unsigned() {
		return p.desc.Alg.Sign(nil, payload)
	}
	if p.keyErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnverifiable, p.keyErr)
	}
	if p.signKey == nil {
		return nil, ErrSignNotSupported
	}

	return p.desc.Alg.Sign(p.signKey, payload)
}

// Check verifies signature over payload and reports the outcome.
// It never panics, whatever the input.
func (p *Primitive) Check(payload, signature []byte) Result {
	if p.Unsigned() {
		if p.desc.Alg.Verify(nil, payload, signature) != nil {
			return Invalid
		}
		return Unsigned
	}
	if p.keyErr != nil || p.verifyKey == nil {
		return Unverifiable
	}

	err := p.desc.Alg.Verify(p.verifyKey, payload, signature)
	switch {
	case err == nil:
		return Verified
	case errors.Is(err, ErrInvalidKey), errors.Is(err, ErrMissingKey):
		return Unverifiable
	default:
		return Invalid
	}
}

// Verify is like Check but returns nil only when the signature was
// verified against the bound key. Unsigned and unverifiable outcomes
// are errors (ErrUnsigned, ErrUnverifiable) and never mean success.
func (p *Primitive) Verify(payload, signature []byte) error {
	switch p.Check(payload, signature) {
	case Verified:
		return nil
	case Unsigned:
		return ErrUnsigned
	case Unverifiable:
		if p.keyErr != nil {
			return fmt.Errorf("%w: %w", ErrUnverifiable, p.keyErr)
		}
		return ErrUnverifiable
	default:
		return ErrTokenSignature
	}
}
