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
	"flag"
	"fmt"
	"log"

	"github.com/sage-x-project/changelly-fiat-go/pkg/client"
	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to CHANGELLY_* environment)")
	flag.Parse()

	cfg := config.FromEnv()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	providers, err := client.NewClient(cfg, nil).Providers(context.Background())
	if err != nil {
		log.Fatalf("Failed to list providers: %v", err)
	}

	fmt.Printf("%d provider(s):\n", len(providers))
	for _, p := range providers {
		fmt.Printf("  %-12s %s\n", p.Code(), p.Name())
	}
}
