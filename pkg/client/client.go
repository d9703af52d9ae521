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
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
	"github.com/sage-x-project/changelly-fiat-go/pkg/convert"
	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
)

// Client is a Changelly Fiat API client that signs every request with the
// credentials of its Config
type Client struct {
	config     *config.Config
	signer     signer.Signer
	httpClient *http.Client
	converter  convert.Converter
	logger     *slog.Logger
	fromEnv    bool
}

// Option configures a Client
type Option func(*Client)

// WithSigner replaces the RSA signer built from Config.PrivateKey
func WithSigner(s signer.Signer) Option {
	return func(c *Client) { c.signer = s }
}

// WithConverter sets the converter used to compute amountExpectedFiat on offers
func WithConverter(conv convert.Converter) Option {
	return func(c *Client) { c.converter = conv }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new client.
// If cfg is nil, the configuration is read from the environment on every call.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(cfg *config.Config, httpClient *http.Client, opts ...Option) *Client {
	fromEnv := cfg == nil
	if fromEnv {
		cfg = config.FromEnv()
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     slog.New(slog.DiscardHandler),
		fromEnv:    fromEnv,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Offers returns the card offers of all providers for the requested amount.
// Offers without a card payment method are left out.
func (c *Client) Offers(ctx context.Context, req OffersRequest) ([]Offer, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	raw, err := c.send(ctx, ActionOffers, req.Payload())
	if err != nil {
		return nil, err
	}

	var rawOffers []map[string]any
	if err := decodeJSON(raw, &rawOffers); err != nil {
		return nil, err
	}

	offers := make([]Offer, 0, len(rawOffers))
	for _, rawOffer := range rawOffers {
		offer, ok := mergeCardOffer(rawOffer)
		if !ok {
			c.logger.DebugContext(ctx, "dropping offer without card payment method",
				"providerCode", stringValue(rawOffer, fieldProviderCode))
			continue
		}

		if err := c.convertOffer(ctx, req, offer); err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

// Providers returns the list of payment providers.
// The records are passed through as returned by the API.
func (c *Client) Providers(ctx context.Context) ([]Provider, error) {
	raw, err := c.send(ctx, ActionProviders, nil)
	if err != nil {
		return nil, err
	}

	var providers []Provider
	if err := decodeJSON(raw, &providers); err != nil {
		return nil, err
	}

	return providers, nil
}

// CreateOrder submits an order and returns the API confirmation unmodified
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	raw, err := c.send(ctx, ActionOrders, req.Payload())
	if err != nil {
		return nil, err
	}

	var order Order
	if err := decodeJSON(raw, &order); err != nil {
		return nil, err
	}

	return order, nil
}

// convertOffer sets amountExpectedFiat when a converter is configured
func (c *Client) convertOffer(ctx context.Context, req OffersRequest, offer Offer) error {
	if c.converter == nil {
		return nil
	}

	amount, err := offer.AmountExpectedTo()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	fiat, err := c.converter.Convert(ctx, req.CurrencyFrom, req.CurrencyTo, amount)
	if err != nil {
		return fmt.Errorf("currency conversion failed: %w", err)
	}

	offer[fieldAmountExpectedFiat] = fiat.String()
	return nil
}

// mergeCardOffer flattens a raw offer with its card sub-offer. Sub-offer
// fields take precedence. When several card sub-offers are present, the last
// one wins.
func mergeCardOffer(raw map[string]any) (Offer, bool) {
	subOffers, _ := raw[fieldPaymentMethodOffer].([]any)

	var card map[string]any
	for _, item := range subOffers {
		sub, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if method, _ := sub[fieldMethod].(string); method == PaymentMethodCard {
			card = sub
		}
	}

	if card == nil {
		return nil, false
	}

	offer := make(Offer, len(raw)+len(card))
	for k, v := range raw {
		offer[k] = v
	}
	for k, v := range card {
		offer[k] = v
	}
	delete(offer, fieldPaymentMethodOffer)

	return offer, true
}

// Config returns the client configuration
func (c *Client) Config() *config.Config {
	return c.settings()
}

// settings returns the configuration for the next request
func (c *Client) settings() *config.Config {
	if c.fromEnv {
		return config.FromEnv()
	}
	return c.config
}
