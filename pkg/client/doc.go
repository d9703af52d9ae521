// Package client provides a Changelly Fiat API client with automatic request signing.
//
// The client wraps a standard http.Client and signs every request with the
// integrator's RSA private key. It exposes the three operations of the API:
// listing offers, listing providers and creating orders.
//
// # Basic Usage
//
//	cfg := config.New("YOUR_PUBLIC_KEY", "/full/path/to/private.pem")
//	c := client.NewClient(cfg, nil)
//
//	offers, err := c.Offers(ctx, client.OffersRequest{
//	    CurrencyFrom: "USD",
//	    CurrencyTo:   "BTC",
//	    AmountFrom:   "50",
//	    Country:      "EE",
//	})
//
// # Ambient Configuration
//
// A nil Config reads CHANGELLY_PUBLIC_KEY and CHANGELLY_PRIVATE_KEY from the
// environment:
//
//	c := client.NewClient(nil, nil)
//
// Keys are not validated when the client is built. A missing or malformed
// private key is reported by the first call as ErrSignature.
//
// # Offers
//
// The API returns one record per provider, each with a list of payment-method
// sub-offers. Offers keeps only providers that have a "card" sub-offer and
// returns the offer flattened with that sub-offer; sub-offer fields take
// precedence. With a converter configured, amountExpectedFiat is added:
//
//	c := client.NewClient(cfg, nil, client.WithConverter(rates))
//
// # Orders
//
//	order, err := c.CreateOrder(ctx, client.OrderRequest{
//	    WalletAddress:   "bc1q...",
//	    ExternalOrderID: uuid.NewString(),
//	    ExternalUserID:  "567890",
//	    ProviderCode:    "moonpay",
//	    CurrencyFrom:    "USD",
//	    CurrencyTo:      "BTC",
//	    AmountFrom:      "50",
//	    PaymentMethod:   "card",
//	    Country:         "EE",
//	})
//	fmt.Println(order.RedirectURL())
//
// # Request Signing
//
// GET requests are signed over the full URL followed by "{}". POST requests
// are signed over the endpoint URL followed by the exact JSON body that is
// sent. Only non-empty parameters are included, in a fixed order.
//
// # Error Handling
//
//	offers, err := c.Offers(ctx, req)
//	var apiErr *client.APIError
//	switch {
//	case errors.As(err, &apiErr):
//	    log.Printf("API error %d: %s", apiErr.StatusCode, apiErr.Body)
//	case errors.Is(err, client.ErrSignature):
//	    log.Printf("check your private key: %v", err)
//	case errors.Is(err, client.ErrInvalidResponse):
//	    log.Printf("unexpected response: %v", err)
//	case errors.Is(err, client.ErrInvalidArguments):
//	    log.Printf("bad request: %v", err)
//	case err != nil:
//	    log.Printf("request failed: %v", err)
//	}
//
// Nothing is retried and no partial results are returned.
//
// # Thread Safety
//
// Client is safe for concurrent use as long as its Config is not modified
// while requests are in flight.
package client
