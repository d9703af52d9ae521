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
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
)

// RSAVerifier implements SignatureVerifier for PKCS#1 v1.5 SHA-256 signatures
type RSAVerifier struct {
	resolver KeyResolver
}

// NewRSAVerifier creates a new RSAVerifier.
// resolver may be nil when VerifyRequestWithKeyID is not used.
func NewRSAVerifier(resolver KeyResolver) *RSAVerifier {
	return &RSAVerifier{resolver: resolver}
}

// Verify checks a base64 encoded signature over message
func (v *RSAVerifier) Verify(pub *rsa.PublicKey, message []byte, signature string) error {
	if pub == nil {
		return fmt.Errorf("public key cannot be nil")
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: malformed base64: %w", ErrInvalidSignature, err)
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return nil
}

// VerifyRequest rebuilds the canonical string and checks the request signature
func (v *RSAVerifier) VerifyRequest(req *http.Request, target string, body []byte, pub *rsa.PublicKey) error {
	signature := req.Header.Get(signer.HeaderSignature)
	if signature == "" {
		return ErrMissingSignature
	}

	return v.Verify(pub, signer.CanonicalString(target, body), signature)
}

// VerifyRequestWithKeyID verifies a request against the key registered for its X-Api-Key
func (v *RSAVerifier) VerifyRequestWithKeyID(ctx context.Context, req *http.Request, target string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	if v.resolver == nil {
		return "", fmt.Errorf("key resolver is not configured")
	}

	keyID := req.Header.Get(signer.HeaderAPIKey)
	if keyID == "" || req.Header.Get(signer.HeaderSignature) == "" {
		return "", ErrMissingSignature
	}

	pub, err := v.resolver.ResolvePublicKey(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve public key: %w", err)
	}

	if err := v.VerifyRequest(req, target, body, pub); err != nil {
		return "", err
	}

	return keyID, nil
}
