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

package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
	"github.com/sage-x-project/changelly-fiat-go/pkg/verifier"
)

type contextKey string

const keyIDKey contextKey = "changelly_api_key_id"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// SignatureAuthMiddleware verifies X-Api-Key / X-Api-Signature headers on
// incoming requests
type SignatureAuthMiddleware struct {
	verifier     verifier.SignatureVerifier
	errorHandler ErrorHandler
	optional     bool
}

// NewSignatureAuthMiddleware creates middleware resolving public keys with resolver
func NewSignatureAuthMiddleware(resolver verifier.KeyResolver) *SignatureAuthMiddleware {
	return NewSignatureAuthMiddlewareWithVerifier(verifier.NewRSAVerifier(resolver))
}

// NewSignatureAuthMiddlewareWithVerifier creates middleware with a custom verifier
func NewSignatureAuthMiddlewareWithVerifier(v verifier.SignatureVerifier) *SignatureAuthMiddleware {
	return &SignatureAuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
	}
}

// SetErrorHandler sets a custom error handler
func (m *SignatureAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional
// If true, requests without signature headers are allowed to pass through
func (m *SignatureAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature verification
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(signer.HeaderAPIKey) == "" || r.Header.Get(signer.HeaderSignature) == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, verifier.ErrMissingSignature)
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(r.Body)
			r.Body.Close()
			if err != nil {
				m.errorHandler(w, r, fmt.Errorf("failed to read request body: %w", err))
				return
			}
		}

		keyID, err := m.verifier.VerifyRequestWithKeyID(r.Context(), r, RequestTarget(r), bodyBytes)

		// Restore body for handler
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), keyIDKey, keyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestTarget rebuilds the absolute URL a client signed:
// scheme, host, path and query of the incoming request
func RequestTarget(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// GetKeyIDFromContext extracts the verified API key id from request context
func GetKeyIDFromContext(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(keyIDKey).(string)
	return keyID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
