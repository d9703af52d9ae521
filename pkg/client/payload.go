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
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Field is a single named request parameter
type Field struct {
	Name  string
	Value string
}

// Payload is an ordered set of request parameters. Only non-empty values are
// kept, in declaration order.
type Payload []Field

// newPayload pairs names with values, dropping empty values
func newPayload(names, values []string) Payload {
	p := make(Payload, 0, len(names))
	for i, name := range names {
		if values[i] == "" {
			continue
		}
		p = append(p, Field{Name: name, Value: values[i]})
	}
	return p
}

// get returns the value of a parameter
func (p Payload) get(name string) (string, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Query encodes the payload as a URL query string in declaration order
func (p Payload) Query() string {
	var b strings.Builder
	for i, f := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}

// MarshalJSON encodes the payload as a JSON object in declaration order.
// An empty payload encodes as {}.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(enc, &buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(enc, &buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeString writes s as a JSON string, without the encoder's trailing newline
func encodeString(enc *json.Encoder, buf *bytes.Buffer, s string) error {
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode %q: %w", s, err)
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
