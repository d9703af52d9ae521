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
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Response field names
const (
	fieldPaymentMethodOffer = "paymentMethodOffer"
	fieldMethod             = "method"
	fieldProviderCode       = "providerCode"
	fieldAmountExpectedTo   = "amountExpectedTo"
	fieldAmountExpectedFiat = "amountExpectedFiat"
)

// PaymentMethodCard is the payment method offers are filtered on
const PaymentMethodCard = "card"

// Offer is a provider quote merged with its card payment-method sub-offer.
// Numbers are kept as json.Number.
type Offer map[string]any

// ProviderCode returns the code of the provider that made the offer
func (o Offer) ProviderCode() string { return stringValue(o, fieldProviderCode) }

// Method returns the payment method of the merged sub-offer
func (o Offer) Method() string { return stringValue(o, fieldMethod) }

// AmountExpectedTo returns the expected crypto amount. A missing value is zero.
func (o Offer) AmountExpectedTo() (decimal.Decimal, error) {
	return decimalValue(o, fieldAmountExpectedTo)
}

// AmountExpectedFiat returns the converted display amount, if one was computed
func (o Offer) AmountExpectedFiat() (decimal.Decimal, bool) {
	if _, ok := o[fieldAmountExpectedFiat]; !ok {
		return decimal.Zero, false
	}
	d, err := decimalValue(o, fieldAmountExpectedFiat)
	return d, err == nil
}

// Get returns a field as a string
func (o Offer) Get(key string) string { return stringValue(o, key) }

// Provider is a payment provider record as returned by the API
type Provider map[string]any

// Code returns the provider code used in offer and order requests
func (p Provider) Code() string { return stringValue(p, "code") }

// Name returns the display name of the provider
func (p Provider) Name() string { return stringValue(p, "name") }

// Order is the order confirmation returned by the API
type Order map[string]any

// OrderID returns the Changelly order identifier
func (o Order) OrderID() string { return stringValue(o, "orderId") }

// RedirectURL returns the provider checkout URL the user is sent to
func (o Order) RedirectURL() string { return stringValue(o, "redirectUrl") }

// ExternalOrderID returns the integrator's order id echoed back by the API
func (o Order) ExternalOrderID() string { return stringValue(o, "externalOrderId") }

func stringValue(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func decimalValue(m map[string]any, key string) (decimal.Decimal, error) {
	switch v := m[key].(type) {
	case nil:
		return decimal.Zero, nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		if v == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("field %s is %T, not a number", key, v)
	}
}
