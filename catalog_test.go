package jwsalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupFamily(t *testing.T) {
	tests := []struct {
		name     string
		expected Family
	}{
		{"none", FamilyNone},
		{"HS256", FamilySymmetric},
		{"HS384", FamilySymmetric},
		{"HS512", FamilySymmetric},
		{"RS256", FamilyRSA},
		{"RS384", FamilyRSA},
		{"RS512", FamilyRSA},
		{"ES256", FamilyEC},
		{"ES384", FamilyEC},
		{"ES512", FamilyEC},
		// unregistered names.
		{"", FamilyNone},
		{"NONE", FamilyNone},
		{"hs256", FamilyNone},
		{"Rs256", FamilyNone},
		{"HS256 ", FamilyNone},
		{" ES256", FamilyNone},
		{"PS256", FamilyNone},
		{"EdDSA", FamilyNone},
	}

	for _, tt := range tests {
		if got := LookupFamily(tt.name); got != tt.expected {
			t.Errorf("LookupFamily(%q): expected %s but got %s", tt.name, tt.expected, got)
		}
	}
}

func TestFamilyPredicatesPartitionCatalog(t *testing.T) {
	for _, name := range Supported() {
		var matches int
		for _, is := range []func(string) bool{IsSymmetric, IsAsymmetricRSA, IsAsymmetricEC} {
			if is(name) {
				matches++
			}
		}

		if name == "none" {
			if matches != 0 {
				t.Errorf("%s: expected no family predicate to match but %d did", name, matches)
			}
			continue
		}
		if matches != 1 {
			t.Errorf("%s: expected exactly one family predicate to match but %d did", name, matches)
		}
	}

	for _, name := range []string{"", "hs256", "RS256\n", "ES"} {
		if IsSymmetric(name) || IsAsymmetricRSA(name) || IsAsymmetricEC(name) {
			t.Errorf("%q: expected no family predicate to match", name)
		}
	}
}

func TestSupported(t *testing.T) {
	expected := []string{"none", "HS256", "HS384", "HS512", "RS256", "RS384", "RS512", "ES256", "ES384", "ES512"}
	if diff := cmp.Diff(expected, Supported()); diff != "" {
		t.Fatalf("Supported() mismatch (-want +got):\n%s", diff)
	}

	// the returned slice must not alias the catalog.
	names := Supported()
	names[0] = "HS1"
	if diff := cmp.Diff(expected, Supported()); diff != "" {
		t.Fatalf("Supported() changed after caller mutation (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Supported() {
		d, ok := Lookup(name)
		if !ok {
			t.Fatalf("%s: not found", name)
		}
		if d.Name != name || d.Alg.Name() != name {
			t.Errorf("%s: descriptor mismatch: name=%s alg=%s", name, d.Name, d.Alg.Name())
		}
		if d.Family == FamilyNone && d.Hash != 0 || d.Family != FamilyNone && !d.Hash.Available() {
			t.Errorf("%s: unexpected hash %v", name, d.Hash)
		}
	}

	if _, ok := Lookup("HS1024"); ok {
		t.Fatalf("expected HS1024 to be unknown")
	}
}

func TestFamilyString(t *testing.T) {
	expected := map[Family]string{
		FamilyNone:      "none",
		FamilySymmetric: "symmetric",
		FamilyRSA:       "asymmetric_rsa",
		FamilyEC:        "asymmetric_ec",
	}
	for f, s := range expected {
		if f.String() != s {
			t.Errorf("expected %q but got %q", s, f.String())
		}
	}
}
