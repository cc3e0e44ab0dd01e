package jwsalg

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// algRSA implements the Alg interface for RSA signature algorithms.
// It supports RS256, RS384, and RS512 variants using PKCS#1 v1.5 padding
// with SHA-256, SHA-384, and SHA-512 respectively.
type algRSA struct {
	name   string
	hasher crypto.Hash
}

// Name returns the algorithm name (e.g., "RS256", "RS384", "RS512").
func (a *algRSA) Name() string {
	return a.name
}

// Sign creates an RSA signature using PKCS#1 v1.5 padding.
// The key must be an *rsa.PrivateKey.
func (a *algRSA) Sign(key PrivateKey, data []byte) ([]byte, error) {
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok || privateKey == nil {
		return nil, ErrInvalidKey
	}

	h := a.hasher.New()
	// header.payload
	_, err := h.Write(data)
	if err != nil {
		return nil, err
	}

	hashed := h.Sum(nil)
	return rsa.SignPKCS1v15(rand.Reader, privateKey, a.hasher, hashed)
}

// Verify checks an RSA PKCS#1 v1.5 signature.
//
// The method accepts either an *rsa.PublicKey or an *rsa.PrivateKey
// (from which it extracts the public key).
func (a *algRSA) Verify(key PublicKey, data []byte, signature []byte) error {
	publicKey, ok := key.(*rsa.PublicKey)
	if !ok {
		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return ErrInvalidKey
		}
		if privateKey != nil {
			publicKey = &privateKey.PublicKey
		}
	}
	if publicKey == nil {
		return ErrMissingKey
	}

	h := a.hasher.New()
	// header.payload
	_, err := h.Write(data)
	if err != nil {
		return err
	}

	hashed := h.Sum(nil)
	if err = rsa.VerifyPKCS1v15(publicKey, a.hasher, hashed, signature); err != nil {
		return fmt.Errorf("%w: %v", ErrTokenSignature, err)
	}

	return nil
}

// Key Helpers.

// ParsePrivateKeyRSA decodes and parses PEM-encoded RSA private key bytes.
//
// The input should be PEM-encoded RSA private key data in PKCS#1 or PKCS#8 format.
func ParsePrivateKeyRSA(key []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, fmt.Errorf("private key: malformed or missing PEM format (RSA)")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
			pKey, ok := key.(*rsa.PrivateKey)
			if !ok {
				return nil, fmt.Errorf("private key: expected a type of *rsa.PrivateKey")
			}

			privateKey = pKey
		} else {
			return nil, err
		}
	}

	return privateKey, nil
}

// ParsePublicKeyRSA parses RSA public key material, PEM-wrapped or bare
// base64 of the X.509 (PKIX) encoding. See ParsePublicKey.
//
// Example:
//
//	publicKey, err := jwsalg.ParsePublicKeyRSA("-----BEGIN PUBLIC KEY-----\n...")
func ParsePublicKeyRSA(material string) (*rsa.PublicKey, error) {
	key, err := ParsePublicKey(material, FamilyRSA)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrMissingKey
	}

	return key.(*rsa.PublicKey), nil
}
