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
	"errors"
	"fmt"

	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
)

var (
	// ErrSignature is returned when the private key is missing or unreadable,
	// or when signing fails
	ErrSignature = signer.ErrSignature

	// ErrInvalidResponse is returned when the API answered with an empty or
	// unparseable body
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidArguments is returned when a request misses required fields
	ErrInvalidArguments = errors.New("invalid arguments")
)

// APIError is returned for non-2xx responses. Body holds the raw response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}
