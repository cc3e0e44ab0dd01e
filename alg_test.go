package jwsalg

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
)

var (
	testSecret       = []byte("sercrethatmaycontainch@r$")
	testSigningInput = []byte("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VybmFtZSI6ImthdGFyYXMifQ")
	invalidKey       = "inv"
)

var (
	testRSAKeyOnce sync.Once
	testRSAKey     *rsa.PrivateKey
)

// testRSAPrivateKey returns a 2048-bit key shared by the package tests.
func testRSAPrivateKey(t testing.TB) *rsa.PrivateKey {
	t.Helper()

	testRSAKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testRSAKey = key
	})

	return testRSAKey
}

func testECDSAPrivateKey(t testing.TB, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("ecdsa: generate key: %v", err)
	}

	return key
}

func testSignVerify(t *testing.T, alg Alg, signKey PrivateKey, verKey PublicKey) []byte {
	t.Helper()

	if alg != NONE { // test invalid key error for all algorithms.
		if _, err := alg.Sign(invalidKey, testSigningInput); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("[%s] sign: expected error: ErrInvalidKey but got: %v", alg.Name(), err)
		}
	}

	signature, err := alg.Sign(signKey, testSigningInput)
	if err != nil {
		t.Fatalf("[%s] sign: %v", alg.Name(), err)
	}

	if err = alg.Verify(verKey, testSigningInput, signature); err != nil {
		t.Fatalf("[%s] verify: %v", alg.Name(), err)
	}

	// Test invalid signature.
	unexpectedSignature := []byte("DX22uANEy1qEG0m0utEW4YYfyNeuG9FzvRPMxpSaTc")
	if err = alg.Verify(verKey, testSigningInput, unexpectedSignature); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("[%s] verify: expected error: ErrTokenSignature but got: %v", alg.Name(), err)
	}

	// Test tampered payload.
	if alg != NONE {
		tampered := append([]byte{}, testSigningInput...)
		tampered[len(tampered)-1] ^= 1
		if err = alg.Verify(verKey, tampered, signature); !errors.Is(err, ErrTokenSignature) {
			t.Fatalf("[%s] verify tampered: expected error: ErrTokenSignature but got: %v", alg.Name(), err)
		}

		if err = alg.Verify(invalidKey, testSigningInput, signature); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("[%s] verify: expected error: ErrInvalidKey but got: %v", alg.Name(), err)
		}
	}

	return signature
}
