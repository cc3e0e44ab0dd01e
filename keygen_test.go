package jwsalg

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var alphanumericPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestGenerateKeyMaterialSymmetric(t *testing.T) {
	for _, name := range []string{"HS256", "HS384", "HS512"} {
		for i := 0; i < 20; i++ {
			secret := GenerateKeyMaterial(name)
			if len(secret) != 6 || !alphanumericPattern.MatchString(secret) {
				t.Fatalf("%s: expected 6 alphanumeric characters but got %q", name, secret)
			}
		}
	}
}

func TestGenerateKeySecretLength(t *testing.T) {
	key, err := GenerateKey("HS512", WithSecretLength(64))
	if err != nil {
		t.Fatal(err)
	}
	if len(key.Secret) != 64 || !alphanumericPattern.MatchString(key.Secret) {
		t.Fatalf("expected 64 alphanumeric characters but got %q", key.Secret)
	}
	if key.Material() != key.Secret || key.Private != "" {
		t.Fatalf("expected material to be the secret")
	}
	if _, err = uuid.Parse(key.KeyID); err != nil {
		t.Fatalf("key id: %v", err)
	}

	if _, err = GenerateKey("HS256", WithSecretLength(0)); !IsKeyError(err, KeyGenerationError) {
		t.Fatalf("expected KeyGenerationError but got: %v", err)
	}
}

func TestGenerateKeyMaterialAsymmetric(t *testing.T) {
	tests := []struct {
		name  string
		check func(any) bool
	}{
		{"RS256", func(k any) bool { _, ok := k.(*rsa.PrivateKey); return ok }},
		{"ES256", func(k any) bool { k2, ok := k.(*ecdsa.PrivateKey); return ok && k2.Curve.Params().BitSize == 256 }},
		{"ES384", func(k any) bool { k2, ok := k.(*ecdsa.PrivateKey); return ok && k2.Curve.Params().BitSize == 384 }},
		{"ES512", func(k any) bool { k2, ok := k.(*ecdsa.PrivateKey); return ok && k2.Curve.Params().BitSize == 521 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material := GenerateKeyMaterial(tt.name)
			if material == "" {
				t.Fatalf("expected key material")
			}

			der, err := base64.StdEncoding.DecodeString(material)
			if err != nil || len(der) == 0 {
				t.Fatalf("expected non-empty base64 but got: %v", err)
			}

			signer, err := ParsePrivateKeyMaterial(material)
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(signer) {
				t.Fatalf("unexpected private key %T", signer)
			}
		})
	}
}

func TestGenerateKeyMaterialUnsupported(t *testing.T) {
	for _, name := range []string{"none", "", "PS256", "hs256"} {
		if material := GenerateKeyMaterial(name); material != "" {
			t.Fatalf("%q: expected empty material but got %q", name, material)
		}

		if _, err := GenerateKey(name); !errors.Is(err, ErrUnsupportedFamily) || !IsKeyError(err, KeyGenerationError) {
			t.Fatalf("%q: expected KeyGenerationError wrapping ErrUnsupportedFamily but got: %v", name, err)
		}
	}
}

func TestGenerateKeyEntropyFailure(t *testing.T) {
	_, err := GenerateKey("HS256", WithRandom(failingReader{}))
	if !IsKeyError(err, KeyGenerationError) {
		t.Fatalf("expected KeyGenerationError but got: %v", err)
	}

	f := NewFactory(WithGenerateOptions(WithRandom(failingReader{})))
	if material := f.GenerateKeyMaterial("HS256"); material != "" {
		t.Fatalf("expected empty material but got %q", material)
	}
}

func TestDerivePublicKeyPEM(t *testing.T) {
	key, err := GenerateKey("ES256")
	if err != nil {
		t.Fatal(err)
	}

	publicPEM, err := DerivePublicKeyPEM(key.Private)
	if err != nil {
		t.Fatal(err)
	}
	if publicPEM != key.PublicPEM {
		t.Fatalf("derived public key does not match the generated one:\n%s\n%s", publicPEM, key.PublicPEM)
	}

	if _, err = DerivePublicKeyPEM("%%%"); !IsKeyError(err, ParseError) {
		t.Fatalf("expected ParseError but got: %v", err)
	}
	if _, err = DerivePublicKeyPEM(base64.StdEncoding.EncodeToString([]byte("junk"))); !IsKeyError(err, ParseError) {
		t.Fatalf("expected ParseError but got: %v", err)
	}
}
