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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sage-x-project/changelly-fiat-go/pkg/client"
	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to CHANGELLY_* environment)")
	wallet := flag.String("wallet", "", "recipient wallet address (required)")
	orderID := flag.String("order-id", "", "external order id (generated when empty)")
	userID := flag.String("user", "567890", "external user id")
	provider := flag.String("provider", "", "provider code from the offers example (required)")
	from := flag.String("from", "USD", "fiat currency to spend")
	to := flag.String("to", "BTC", "crypto currency to buy")
	amount := flag.String("amount", "50", "amount of fiat to spend")
	method := flag.String("method", client.PaymentMethodCard, "payment method")
	country := flag.String("country", "EE", "ISO 3166-1 country code")
	state := flag.String("state", "", "US state code, required when country is US")
	ip := flag.String("ip", "", "end user IP address")
	userAgent := flag.String("user-agent", "", "end user browser user agent")
	flag.Parse()

	cfg := config.FromEnv()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if *orderID == "" {
		*orderID = uuid.NewString()
	}

	fmt.Printf("Creating order %s with %s...\n", *orderID, *provider)

	order, err := client.NewClient(cfg, nil).CreateOrder(context.Background(), client.OrderRequest{
		WalletAddress:   *wallet,
		ExternalOrderID: *orderID,
		ExternalUserID:  *userID,
		ProviderCode:    *provider,
		CurrencyFrom:    *from,
		CurrencyTo:      *to,
		AmountFrom:      *amount,
		PaymentMethod:   *method,
		Country:         *country,
		State:           *state,
		IP:              *ip,
		UserAgent:       *userAgent,
	})
	switch {
	case errors.Is(err, client.ErrInvalidArguments):
		flag.Usage()
		log.Fatalf("Error: %v", err)
	case err != nil:
		log.Fatalf("Failed to create order: %v", err)
	}

	fmt.Printf("Order ID:     %s\n", order.OrderID())
	fmt.Printf("Redirect URL: %s\n", order.RedirectURL())
}
