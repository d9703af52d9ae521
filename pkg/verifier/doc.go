// Package verifier checks Changelly Fiat API request signatures.
//
// It is the counterpart of the signer package and is useful to confirm that
// a key pair is registered correctly before going live:
//
//	pub, _ := verifier.ParsePublicKey(pemBytes)
//	v := verifier.NewRSAVerifier(nil)
//	err := v.Verify(pub, signer.CanonicalString(target, body), signature)
//
// With a KeyResolver the public key is looked up from the X-Api-Key header:
//
//	v := verifier.NewRSAVerifier(verifier.StaticKeyResolver{"my-key-id": pub})
//	keyID, err := v.VerifyRequestWithKeyID(ctx, req, target, body)
package verifier
