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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	changellyfiat "github.com/sage-x-project/changelly-fiat-go"
	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
)

// send builds, signs and executes the request of an action and returns the
// validated JSON response body
func (c *Client) send(ctx context.Context, action Action, payload Payload) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	desc, ok := actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidArguments, action)
	}

	cfg := c.settings()

	req, message, err := c.newRequest(ctx, cfg, action, desc.method, payload)
	if err != nil {
		return nil, err
	}

	if err := signer.SignRequest(ctx, req, cfg.PublicKey, c.requestSigner(cfg), message); err != nil {
		if !errors.Is(err, ErrSignature) {
			err = fmt.Errorf("%w: %w", ErrSignature, err)
		}
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.DebugContext(ctx, "changelly request",
		"action", string(action),
		"method", desc.method,
		"status", resp.StatusCode,
		"bytes", len(body))

	if resp.StatusCode/100 != 2 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidResponse)
	}

	if isEmptyJSON(body) {
		return nil, fmt.Errorf("%w: empty JSON %s", ErrInvalidResponse, body)
	}

	return json.RawMessage(body), nil
}

// newRequest builds the HTTP request and its canonical string. For GET the
// payload goes into the query string; for POST it is the JSON body.
func (c *Client) newRequest(ctx context.Context, cfg *config.Config, action Action, method string, payload Payload) (*http.Request, []byte, error) {
	target := cfg.Endpoint(string(action))

	var body []byte
	switch method {
	case http.MethodGet:
		if len(payload) > 0 {
			target += "?" + payload.Query()
		}
	case http.MethodPost:
		var err error
		body, err = payload.MarshalJSON()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: unsupported method %s", ErrInvalidArguments, method)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", changellyfiat.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, signer.CanonicalString(target, body), nil
}

// requestSigner returns the configured signer, or an RSA signer over
// cfg.PrivateKey
func (c *Client) requestSigner(cfg *config.Config) signer.Signer {
	if c.signer != nil {
		return c.signer
	}
	return signer.NewRSASigner(cfg.PrivateKey)
}

// isEmptyJSON reports whether a valid JSON document is an empty array or object
func isEmptyJSON(body []byte) bool {
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return false
	}
	doc := compact.String()
	return doc == "[]" || doc == "{}"
}

// decodeJSON decodes a response body keeping numbers as json.Number
func decodeJSON(data json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}
