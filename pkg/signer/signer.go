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

package signer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Header names used by the Changelly Fiat API for request authentication
const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderSignature = "X-Api-Signature"
)

// ErrSignature is returned when the private key cannot be loaded or the
// signing operation fails
var ErrSignature = errors.New("signature error")

// emptyPayload is the object encoding of an empty payload
var emptyPayload = []byte("{}")

// Signer signs the canonical string of a request
type Signer interface {
	// Sign returns the base64 encoded signature of message
	Sign(ctx context.Context, message []byte) (string, error)
}

// CanonicalString builds the string-to-sign of a request: the target URL
// followed by the JSON object encoded payload. GET requests carry no body and
// are signed as target + "{}".
func CanonicalString(target string, body []byte) []byte {
	if len(body) == 0 {
		body = emptyPayload
	}

	message := make([]byte, 0, len(target)+len(body))
	message = append(message, target...)
	return append(message, body...)
}

// SignRequest signs message with s and attaches the X-Api-Key and
// X-Api-Signature headers to req
func SignRequest(ctx context.Context, req *http.Request, publicKey string, s Signer, message []byte) error {
	if req == nil {
		return fmt.Errorf("%w: request cannot be nil", ErrSignature)
	}

	if s == nil {
		return fmt.Errorf("%w: signer cannot be nil", ErrSignature)
	}

	signature, err := s.Sign(ctx, message)
	if err != nil {
		return err
	}

	req.Header.Set(HeaderAPIKey, publicKey)
	req.Header.Set(HeaderSignature, signature)

	return nil
}
