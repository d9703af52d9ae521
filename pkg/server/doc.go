// Package server provides HTTP middleware that checks Changelly-style request
// signatures.
//
// It is meant for local stubs and integration tests of code built on the
// client package: a handler wrapped with the middleware only sees requests
// whose X-Api-Signature matches the public key registered for their X-Api-Key.
//
//	pub, _ := verifier.ParsePublicKey(pemBytes)
//	mw := server.NewSignatureAuthMiddleware(verifier.StaticKeyResolver{"my-key-id": pub})
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    keyID, _ := server.GetKeyIDFromContext(r.Context())
//	    fmt.Fprintf(w, `{"keyId":%q}`, keyID)
//	})
//
//	http.Handle("/v1/", mw.Wrap(handler))
//
// The signed target is rebuilt from the request as scheme://host/path?query,
// so the stub must be reached at the same address the client was configured with.
package server
