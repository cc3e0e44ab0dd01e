package jwsalg

import (
	"crypto"
	"crypto/hmac"
)

type algHMAC struct {
	name   string
	hasher crypto.Hash
}

func (a *algHMAC) Name() string {
	return a.name
}

func (a *algHMAC) Sign(key PrivateKey, data []byte) ([]byte, error) {
	secret, ok := key.([]byte)
	if !ok {
		return nil, ErrInvalidKey
	}

	h := hmac.New(a.hasher.New, secret)
	// header.payload
	_, err := h.Write(data)
	if err != nil {
		return nil, err // this should never happen according to the internal docs.
	}

	return h.Sum(nil), nil
}

func (a *algHMAC) Verify(key PublicKey, data []byte, signature []byte) error {
	expectedSignature, err := a.Sign(key, data)
	if err != nil {
		return err
	}

	if !hmac.Equal(expectedSignature, signature) {
		return ErrTokenSignature
	}

	return nil
}

// Key Helper.

// SecretFromString returns the raw UTF-8 bytes of a shared secret,
// the form HMAC algorithms expect as key.
func SecretFromString(secret string) []byte {
	return []byte(secret)
}
