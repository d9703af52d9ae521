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

// Package convert defines the currency-conversion collaborator used to compute
// the display amount of card offers.
package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoRate is returned when a RateTable has no rate for a currency pair
var ErrNoRate = errors.New("no conversion rate")

// Converter converts an amount between two currencies
type Converter interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error)
}

// Func adapts a function to the Converter interface
type Func func(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error)

// Convert calls f
func (f Func) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	return f(ctx, from, to, amount)
}

// RateTable converts with fixed rates keyed by "FROM/TO" currency pair
type RateTable struct {
	rates map[string]decimal.Decimal
}

// NewRateTable parses a map of "FROM/TO" pairs to decimal rate strings
func NewRateTable(rates map[string]string) (*RateTable, error) {
	t := &RateTable{rates: make(map[string]decimal.Decimal, len(rates))}

	for pair, value := range rates {
		from, to, ok := strings.Cut(pair, "/")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid currency pair %q: expected FROM/TO", pair)
		}

		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", pair, err)
		}

		t.rates[pairKey(from, to)] = rate
	}

	return t, nil
}

// Convert multiplies amount by the rate of the from/to pair.
// Identical currencies convert at 1.
func (t *RateTable) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("context error: %w", err)
	}

	if strings.EqualFold(from, to) {
		return amount, nil
	}

	rate, ok := t.rates[pairKey(from, to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w for %s/%s", ErrNoRate, from, to)
	}

	return amount.Mul(rate), nil
}

func pairKey(from, to string) string {
	return strings.ToUpper(from) + "/" + strings.ToUpper(to)
}
