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
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/sage-x-project/changelly-fiat-go/pkg/client"
	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
	"github.com/sage-x-project/changelly-fiat-go/pkg/convert"
)

// Authentication:
//
//	Option 1: export CHANGELLY_PUBLIC_KEY and CHANGELLY_PRIVATE_KEY
//	Option 2: pass -config with a YAML file holding public_key and private_key
func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to CHANGELLY_* environment)")
	from := flag.String("from", "USD", "fiat currency to spend")
	to := flag.String("to", "BTC", "crypto currency to buy")
	amount := flag.String("amount", "50", "amount of fiat to spend")
	country := flag.String("country", "EE", "ISO 3166-1 country code")
	state := flag.String("state", "", "US state code, required when country is US")
	userID := flag.String("user", "567890", "external user id")
	ip := flag.String("ip", "", "end user IP address")
	provider := flag.String("provider", "", "restrict to one provider code")
	verbose := flag.Bool("v", false, "log requests")
	flag.Parse()

	fmt.Println("Changelly Fiat - Offers Example")
	fmt.Println("===============================")

	fmt.Println("\n1. Loading configuration...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("   Endpoint: %s\n", cfg.Endpoint(string(client.ActionOffers)))

	opts := []client.Option{}
	if len(cfg.Conversion.Rates) > 0 {
		rates, err := convert.NewRateTable(cfg.Conversion.Rates)
		if err != nil {
			log.Fatalf("Failed to load conversion rates: %v", err)
		}
		opts = append(opts, client.WithConverter(rates))
	}
	if *verbose {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	c := client.NewClient(cfg, nil, opts...)

	fmt.Printf("\n2. Requesting offers for %s %s -> %s in %s...\n", *amount, *from, *to, *country)
	offers, err := c.Offers(context.Background(), client.OffersRequest{
		CurrencyFrom:   *from,
		CurrencyTo:     *to,
		AmountFrom:     *amount,
		Country:        *country,
		ProviderCode:   *provider,
		ExternalUserID: *userID,
		State:          *state,
		IP:             *ip,
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			log.Fatalf("API error %d: %s", apiErr.StatusCode, apiErr.Body)
		}
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("   Received %d card offer(s)\n\n", len(offers))
	out, _ := json.MarshalIndent(offers, "", "  ")
	fmt.Println(string(out))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv(), nil
	}
	return config.Load(path)
}
