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
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// OffersRequest describes a quote request. Amounts are decimal strings and
// are validated by the API, not locally.
type OffersRequest struct {
	CurrencyFrom string `validate:"required"`
	CurrencyTo   string `validate:"required"`
	AmountFrom   string `validate:"required"`
	Country      string `validate:"required"`

	// Optional
	ProviderCode   string
	ExternalUserID string
	State          string
	IP             string
}

func (r *OffersRequest) args() offerArgs {
	return offerArgs{
		r.CurrencyFrom,
		r.CurrencyTo,
		r.AmountFrom,
		r.Country,
		r.ProviderCode,
		r.ExternalUserID,
		r.State,
		r.IP,
	}
}

// Payload returns the query parameters sent for this request
func (r *OffersRequest) Payload() Payload {
	args := r.args()
	return newPayload(offerParams[:], args[:])
}

// OrderRequest describes an order to be created with a provider
type OrderRequest struct {
	WalletAddress   string `validate:"required"`
	ExternalOrderID string `validate:"required"`
	ExternalUserID  string `validate:"required"`
	ProviderCode    string `validate:"required"`
	CurrencyFrom    string `validate:"required"`
	CurrencyTo      string `validate:"required"`
	AmountFrom      string `validate:"required"`
	PaymentMethod   string `validate:"required"`
	Country         string `validate:"required"`

	// Optional
	State     string
	IP        string
	UserAgent string
}

func (r *OrderRequest) args() orderArgs {
	return orderArgs{
		r.WalletAddress,
		r.ExternalOrderID,
		r.ExternalUserID,
		r.ProviderCode,
		r.CurrencyFrom,
		r.CurrencyTo,
		r.AmountFrom,
		r.PaymentMethod,
		r.Country,
		r.State,
		r.IP,
		r.UserAgent,
	}
}

// Payload returns the JSON body fields sent for this request
func (r *OrderRequest) Payload() Payload {
	args := r.args()
	return newPayload(orderParams[:], args[:])
}

// validateRequest checks the required fields of a request struct
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidArguments, strings.Join(fields, ", "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
}
