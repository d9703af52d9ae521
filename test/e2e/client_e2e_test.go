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

package e2e

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/changelly-fiat-go/pkg/client"
	"github.com/sage-x-project/changelly-fiat-go/pkg/config"
	"github.com/sage-x-project/changelly-fiat-go/pkg/convert"
	"github.com/sage-x-project/changelly-fiat-go/pkg/server"
	"github.com/sage-x-project/changelly-fiat-go/pkg/verifier"
)

const publicKeyID = "e2e-public-key"

// setupStub starts a signature-checking stub API and writes a config file
// pointing at it
func setupStub(t *testing.T, mux *http.ServeMux) (*config.Config, *httptest.Server) {
	t.Setenv(config.EnvPublicKey, "")
	t.Setenv(config.EnvPrivateKey, "")
	t.Setenv(config.EnvBaseURL, "")

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	keyPath := filepath.Join(dir, "private.pem")
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

	mw := server.NewSignatureAuthMiddleware(verifier.StaticKeyResolver{publicKeyID: &key.PublicKey})
	stub := httptest.NewServer(mw.Wrap(mux))
	t.Cleanup(stub.Close)

	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
public_key: %s
private_key: file://%s
base_url: %s/v1
conversion:
  rates:
    USD/BTC: "50000"
`, publicKeyID, keyPath, stub.URL)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	return cfg, stub
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// TestE2E_FullPurchaseFlow runs providers -> offers -> order against a stub
// that rejects any request whose signature does not verify
func TestE2E_FullPurchaseFlow(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/providers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"code": "moonpay", "name": "MoonPay"},
			{"code": "banxa", "name": "Banxa"},
		})
	})

	mux.HandleFunc("GET /v1/offers", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("country") == "" {
			http.Error(w, `{"errorType":"validation","errorMessage":"country is required"}`, http.StatusBadRequest)
			return
		}
		writeJSON(w, []map[string]any{
			{
				"providerCode": "moonpay",
				"amountFrom":   q.Get("amountFrom"),
				"paymentMethodOffer": []map[string]any{
					{"method": "card", "amountExpectedTo": "0.00075", "fee": "3.99"},
					{"method": "sepa", "amountExpectedTo": "0.00079", "fee": "1.00"},
				},
			},
			{
				"providerCode": "banxa",
				"paymentMethodOffer": []map[string]any{
					{"method": "sepa", "amountExpectedTo": "0.00078"},
				},
			},
		})
	})

	mux.HandleFunc("POST /v1/orders", func(w http.ResponseWriter, r *http.Request) {
		keyID, _ := server.GetKeyIDFromContext(r.Context())
		body, _ := io.ReadAll(r.Body)

		var order map[string]string
		if err := json.Unmarshal(body, &order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, map[string]any{
			"orderId":         "cf-" + order["externalOrderId"][:8],
			"externalOrderId": order["externalOrderId"],
			"providerCode":    order["providerCode"],
			"redirectUrl":     "https://buy.moonpay.com/?ref=" + keyID,
		})
	})

	cfg, _ := setupStub(t, mux)

	rates, err := convert.NewRateTable(cfg.Conversion.Rates)
	require.NoError(t, err)

	c := client.NewClient(cfg, nil, client.WithConverter(rates))
	ctx := context.Background()

	providers, err := c.Providers(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "moonpay", providers[0].Code())

	offers, err := c.Offers(ctx, client.OffersRequest{
		CurrencyFrom:   "USD",
		CurrencyTo:     "BTC",
		AmountFrom:     "50",
		Country:        "EE",
		ExternalUserID: "567890",
		State:          "",
		IP:             "203.0.113.7",
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "moonpay", offers[0].ProviderCode())
	assert.Equal(t, "3.99", offers[0].Get("fee"))
	assert.Equal(t, "50", offers[0].Get("amountFrom"))
	assert.Equal(t, "37.5", offers[0]["amountExpectedFiat"])

	externalOrderID := uuid.NewString()
	order, err := c.CreateOrder(ctx, client.OrderRequest{
		WalletAddress:   "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		ExternalOrderID: externalOrderID,
		ExternalUserID:  "567890",
		ProviderCode:    offers[0].ProviderCode(),
		CurrencyFrom:    "USD",
		CurrencyTo:      "BTC",
		AmountFrom:      "50",
		PaymentMethod:   offers[0].Method(),
		Country:         "EE",
		UserAgent:       "Mozilla/5.0 (X11; Linux x86_64)",
	})
	require.NoError(t, err)
	assert.Equal(t, externalOrderID, order.ExternalOrderID())
	assert.Equal(t, "cf-"+externalOrderID[:8], order.OrderID())
	assert.Equal(t, "https://buy.moonpay.com/?ref="+publicKeyID, order.RedirectURL())
}

// TestE2E_WrongKeyIsRejected verifies that a stub with a different public key
// answers 401 and the client surfaces it as an APIError
func TestE2E_WrongKeyIsRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/providers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{})
	})

	cfg, _ := setupStub(t, mux)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	cfg.PrivateKey = string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(other)}))

	_, err = client.NewClient(cfg, nil).Providers(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "signature verification failed")
}

// TestE2E_APIErrorBodyIsVerbatim checks that validation errors reach the caller unchanged
func TestE2E_APIErrorBodyIsVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/offers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errorType":"validation","errorMessage":"amountFrom must be greater than 30"}`))
	})

	cfg, _ := setupStub(t, mux)

	_, err := client.NewClient(cfg, nil).Offers(context.Background(), client.OffersRequest{
		CurrencyFrom: "USD", CurrencyTo: "BTC", AmountFrom: "1", Country: "EE",
	})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, `{"errorType":"validation","errorMessage":"amountFrom must be greater than 30"}`, apiErr.Body)
}
