// Copyright (C) 2025 SAGE-X Project
//
// This file is part of changelly-fiat-go.
//
// changelly-fiat-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// changelly-fiat-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with changelly-fiat-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
)

var (
	// ErrMissingSignature is returned when a request lacks the authentication headers
	ErrMissingSignature = errors.New("missing signature headers")

	// ErrInvalidSignature is returned when the signature does not match the message
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrUnknownKey is returned when no public key is registered for a key id
	ErrUnknownKey = errors.New("unknown public key id")
)

// SignatureVerifier verifies signatures produced by signer.RSASigner
type SignatureVerifier interface {
	// Verify checks a base64 encoded signature over message
	Verify(pub *rsa.PublicKey, message []byte, signature string) error

	// VerifyRequest rebuilds the canonical string from target and body and
	// checks the X-Api-Signature header of req
	VerifyRequest(req *http.Request, target string, body []byte, pub *rsa.PublicKey) error

	// VerifyRequestWithKeyID resolves the public key from the X-Api-Key header
	// and verifies the request. Returns the verified key id.
	VerifyRequestWithKeyID(ctx context.Context, req *http.Request, target string, body []byte) (string, error)
}

// KeyResolver maps an API key id to its RSA public key
type KeyResolver interface {
	ResolvePublicKey(ctx context.Context, keyID string) (*rsa.PublicKey, error)
}
