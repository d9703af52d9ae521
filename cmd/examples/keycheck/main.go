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
	"os"

	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
	"github.com/sage-x-project/changelly-fiat-go/pkg/signer"
	"github.com/sage-x-project/changelly-fiat-go/pkg/verifier"
)

// keycheck signs a sample request with the configured private key and
// verifies it against a public key file, without calling the API.
func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to CHANGELLY_* environment)")
	publicKeyPath := flag.String("public-key", "", "PEM public key registered with Changelly (required)")
	flag.Parse()

	if *publicKeyPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	pemData, err := os.ReadFile(*publicKeyPath)
	if err != nil {
		log.Fatalf("Failed to read public key: %v", err)
	}

	pub, err := verifier.ParsePublicKey(pemData)
	if err != nil {
		log.Fatalf("Failed to parse public key: %v", err)
	}

	message := signer.CanonicalString(cfg.Endpoint("providers"), nil)
	signature, err := signer.NewRSASigner(cfg.PrivateKey).Sign(context.Background(), message)
	if err != nil {
		log.Fatalf("Failed to sign: %v", err)
	}

	if err := verifier.NewRSAVerifier(nil).Verify(pub, message, signature); err != nil {
		log.Fatalf("Key pair mismatch: %v", err)
	}

	fmt.Println("Key pair OK")
	fmt.Printf("  Canonical string: %s\n", message)
	fmt.Printf("  %s: %s\n", signer.HeaderSignature, signature)
}
