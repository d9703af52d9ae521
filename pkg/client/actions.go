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

import "net/http"

// Action is a logical API operation. Its value is the endpoint path.
type Action string

const (
	ActionOffers    Action = "offers"
	ActionProviders Action = "providers"
	ActionOrders    Action = "orders"
)

// actionDescriptor binds an action to its HTTP verb
type actionDescriptor struct {
	method string
}

var actions = map[Action]actionDescriptor{
	ActionOffers:    {method: http.MethodGet},
	ActionProviders: {method: http.MethodGet},
	ActionOrders:    {method: http.MethodPost},
}

// Parameter names in wire order. Each request type returns its arguments as
// an array of the same type, so names and values always line up.
type (
	offerArgs [8]string
	orderArgs [12]string
)

var offerParams = offerArgs{
	"currencyFrom",
	"currencyTo",
	"amountFrom",
	"country",
	"providerCode",
	"externalUserId",
	"state",
	"ip",
}

var orderParams = orderArgs{
	"walletAddress",
	"externalOrderId",
	"externalUserId",
	"providerCode",
	"currencyFrom",
	"currencyTo",
	"amountFrom",
	"paymentMethod",
	"country",
	"state",
	"ip",
	"userAgent",
}
