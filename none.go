package jwsalg

// algNONE implements the Alg interface for unsecured tokens.
// This algorithm provides no cryptographic security.
//
// WARNING: Tokens "signed" with none can be forged by anyone.
// A nil error from its Verify only means the signature is empty,
// see Primitive.Check for how the factory reports that outcome.
type algNONE struct{}

// Name returns "none" as the algorithm identifier.
func (a *algNONE) Name() string {
	return "none"
}

// Sign returns an empty signature; the key is ignored and can be nil.
func (a *algNONE) Sign(key PrivateKey, data []byte) ([]byte, error) {
	return []byte{}, nil
}

// Verify accepts only an empty signature, as required by RFC 7515.
func (a *algNONE) Verify(key PublicKey, data []byte, signature []byte) error {
	if len(signature) != 0 {
		return ErrTokenSignature
	}

	return nil
}
