/*
Package jwsalg maps JSON Web Signature algorithm names to signing and
verification primitives bound to key material.

A token layer reads the "alg" header of a token and hands it, together with
a shared secret or a PEM public key, to Resolve. The returned Primitive signs
and verifies without the caller knowing which algorithm family it uses.

# Algorithms

The catalog is fixed and matched case-sensitively:

  - none: unsecured, no signature
  - HS256, HS384, HS512: HMAC with a shared secret
  - RS256, RS384, RS512: RSASSA-PKCS1-v1_5 with an RSA public key
  - ES256, ES384, ES512: ECDSA on P-256, P-384 and P-521

Use LookupFamily, IsSymmetric, IsAsymmetricRSA, IsAsymmetricEC and
Supported to inspect it.

# Key material

HMAC secrets are used as their raw UTF-8 bytes. Public keys are the base64
form of an X.509 (PKIX) encoded key, with or without the
"-----BEGIN PUBLIC KEY-----" and "-----END PUBLIC KEY-----" lines;
whitespace and line breaks anywhere in the material are ignored.

GenerateKeyMaterial creates a fresh secret or private key for an algorithm
and DerivePublicKeyPEM turns the latter into public key material.

# Outcomes

Resolve never fails. An unknown algorithm name resolves to the unsigned
primitive and unusable key material resolves to a primitive that cannot
verify anything. Check tells these cases apart:

	p := jwsalg.Resolve(header.Alg, keyMaterial)
	switch p.Check(signingInput, signature) {
	case jwsalg.Verified:
		// accept
	case jwsalg.Unsigned:
		// only accept if unsigned tokens are explicitly allowed
	default:
		// reject: Invalid or Unverifiable
	}

Verify returns nil only for Verified, so code that checks
"err == nil" never accepts an unsigned or unverifiable token.
*/
package jwsalg
