package jwsalg

import "crypto"

// Family classifies an algorithm by the kind of key it needs.
type Family uint8

const (
	// FamilyNone is the unsecured family, also reported for unknown names.
	FamilyNone Family = iota
	// FamilySymmetric algorithms use a shared secret (HMAC).
	FamilySymmetric
	// FamilyRSA algorithms use RSA key pairs.
	FamilyRSA
	// FamilyEC algorithms use elliptic-curve key pairs.
	FamilyEC
)

func (f Family) String() string {
	switch f {
	case FamilySymmetric:
		return "symmetric"
	case FamilyRSA:
		return "asymmetric_rsa"
	case FamilyEC:
		return "asymmetric_ec"
	default:
		return "none"
	}
}

// Descriptor is a registered algorithm record.
type Descriptor struct {
	Name   string
	Family Family
	// Hash is zero for the none algorithm.
	Hash crypto.Hash
	Alg  Alg
}

// catalog is read-only after package initialization.
var (
	catalog = [...]Descriptor{
		{"none", FamilyNone, 0, NONE},
		{"HS256", FamilySymmetric, crypto.SHA256, HS256},
		{"HS384", FamilySymmetric, crypto.SHA384, HS384},
		{"HS512", FamilySymmetric, crypto.SHA512, HS512},
		{"RS256", FamilyRSA, crypto.SHA256, RS256},
		{"RS384", FamilyRSA, crypto.SHA384, RS384},
		{"RS512", FamilyRSA, crypto.SHA512, RS512},
		{"ES256", FamilyEC, crypto.SHA256, ES256},
		{"ES384", FamilyEC, crypto.SHA384, ES384},
		{"ES512", FamilyEC, crypto.SHA512, ES512},
	}

	catalogIndex = make(map[string]int, len(catalog))
)

func init() {
	for i, d := range catalog {
		if _, dup := catalogIndex[d.Name]; dup {
			panic("jwsalg: duplicate algorithm name " + d.Name)
		}
		catalogIndex[d.Name] = i
	}
}

// Lookup returns the descriptor registered under the exact, case-sensitive name.
func Lookup(name string) (Descriptor, bool) {
	i, ok := catalogIndex[name]
	if !ok {
		return Descriptor{}, false
	}
	return catalog[i], true
}

// LookupFamily returns the family of the named algorithm,
// or FamilyNone when the name is not registered.
func LookupFamily(name string) Family {
	d, _ := Lookup(name)
	return d.Family
}

// IsSymmetric reports whether name is a registered HMAC algorithm.
func IsSymmetric(name string) bool {
	return LookupFamily(name) == FamilySymmetric
}

// IsAsymmetricRSA reports whether name is a registered RSA algorithm.
func IsAsymmetricRSA(name string) bool {
	return LookupFamily(name) == FamilyRSA
}

// IsAsymmetricEC reports whether name is a registered ECDSA algorithm.
func IsAsymmetricEC(name string) bool {
	return LookupFamily(name) == FamilyEC
}

// Supported returns the registered algorithm names in registration order.
// The returned slice is a copy.
func Supported() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	return names
}
