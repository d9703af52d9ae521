// Package signer provides request signing for the Changelly Fiat API.
//
// Every request is authenticated with two headers:
//
//   - X-Api-Key: the integrator's public key identifier
//   - X-Api-Signature: base64(RSA-SHA256(canonical string))
//
// # Canonical String
//
// The canonical string is the request target followed by the payload encoded
// as a JSON object:
//
//	GET  https://fiat-api.changelly.com/v1/offers?currencyFrom=USD&...{}
//	POST https://fiat-api.changelly.com/v1/orders{"walletAddress":"...",...}
//
// GET requests have no body, so the empty object "{}" is appended. POST
// requests must be signed over the exact bytes sent as the body.
//
// # Signing Requests
//
//	s := signer.NewRSASigner("/path/to/private.pem")
//	message := signer.CanonicalString(target, body)
//
//	if err := signer.SignRequest(ctx, req, publicKey, s, message); err != nil {
//	    // errors.Is(err, signer.ErrSignature)
//	}
//
// # Key References
//
// NewRSASigner accepts the PEM content itself, a file:// URI or a plain path.
// Both "RSA PRIVATE KEY" (PKCS#1) and "PRIVATE KEY" (PKCS#8) blocks are
// supported. The reference is resolved lazily: a missing or malformed key is
// reported by Sign, wrapped in ErrSignature.
//
// # Determinism
//
// PKCS#1 v1.5 signatures are deterministic, so the same key and canonical
// string always produce the same signature.
package signer
