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

// Package config holds the credentials and endpoint used by the Changelly Fiat client.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production Changelly Fiat API endpoint
const DefaultBaseURL = "https://fiat-api.changelly.com/v1"

// Environment variables read by FromEnv
const (
	EnvPublicKey  = "CHANGELLY_PUBLIC_KEY"
	EnvPrivateKey = "CHANGELLY_PRIVATE_KEY"
	EnvBaseURL    = "CHANGELLY_BASE_URL"
)

// Config contains the API credentials of an integrator.
//
// PrivateKey is a reference to a PEM encoded RSA private key: either the PEM
// content itself, a file:// URI or a plain file path. It is not resolved here;
// a missing or malformed key surfaces when the first request is signed.
//
// A Config must not be mutated while requests using it are in flight.
type Config struct {
	PublicKey  string `yaml:"public_key"`
	PrivateKey string `yaml:"private_key"`
	BaseURL    string `yaml:"base_url"`

	Conversion Conversion `yaml:"conversion"`
}

// Conversion configures the static rate table used by the examples.
// Keys are currency pairs written as "FROM/TO", values are decimal strings.
type Conversion struct {
	Rates map[string]string `yaml:"rates"`
}

// New creates a Config from an explicit key pair
func New(publicKey, privateKey string) *Config {
	return &Config{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		BaseURL:    DefaultBaseURL,
	}
}

// FromEnv creates a Config from the CHANGELLY_* environment variables.
// Unset variables are left empty; BaseURL falls back to DefaultBaseURL.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file. Non-empty environment variables take
// precedence over values from the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Endpoint returns the URL of an API resource, e.g. Endpoint("offers")
func (c *Config) Endpoint(resource string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + resource
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPublicKey); v != "" {
		c.PublicKey = v
	}
	if v := os.Getenv(EnvPrivateKey); v != "" {
		c.PrivateKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}
