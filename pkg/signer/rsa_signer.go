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
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
)

const fileScheme = "file://"

// RSASigner signs with an RSA private key using PKCS#1 v1.5 and SHA-256.
//
// The key reference is resolved on every call, so a rotated key file is
// picked up without rebuilding the signer.
type RSASigner struct {
	keyRef string
	key    *rsa.PrivateKey
}

// NewRSASigner creates a signer from a private key reference: PEM content,
// a file:// URI or a plain file path
func NewRSASigner(keyRef string) *RSASigner {
	return &RSASigner{keyRef: keyRef}
}

// NewRSASignerFromKey creates a signer from an already parsed key
func NewRSASignerFromKey(key *rsa.PrivateKey) *RSASigner {
	return &RSASigner{key: key}
}

// Sign signs message and returns the base64 encoded signature
func (s *RSASigner) Sign(ctx context.Context, message []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	key := s.key
	if key == nil {
		var err error
		key, err = LoadPrivateKey(s.keyRef)
		if err != nil {
			return "", err
		}
	}

	digest := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("%w: invalid API payload: %w", ErrSignature, err)
	}

	if len(signature) == 0 {
		return "", fmt.Errorf("%w: invalid API payload", ErrSignature)
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// LoadPrivateKey resolves a key reference and parses the RSA private key it
// points to. PKCS#1 and PKCS#8 PEM blocks are accepted.
func LoadPrivateKey(keyRef string) (*rsa.PrivateKey, error) {
	keyRef = strings.TrimSpace(keyRef)
	if keyRef == "" {
		return nil, fmt.Errorf("%w: private key is not configured", ErrSignature)
	}

	var data []byte
	if strings.Contains(keyRef, "-----BEGIN") {
		data = []byte(keyRef)
	} else {
		path := strings.TrimPrefix(keyRef, fileScheme)
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read private key: %w", ErrSignature, err)
		}
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: invalid private key: no PEM block found", ErrSignature)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid private key: %w", ErrSignature, err)
		}
		return key, nil
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid private key: %w", ErrSignature, err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is %T, not RSA", ErrSignature, parsed)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: unsupported PEM block %q", ErrSignature, block.Type)
	}
}
