// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package marketdata defines the endpoints of the Alpaca Market Data API:
// historical trades and bars. Unlike the trading endpoints, these live on a
// separate host, so every endpoint in this package overrides the client's
// base URL with the package-level URL.
//
// Both endpoints are paginated: a response carrying a next_page_token has
// more pages, which alpaca.Pages() follows transparently.
//
// Official documentation is at https://docs.alpaca.markets/reference .
package marketdata

import "github.com/stockparfait/alpaca"

// URL is the base URL of the Market Data API. It may be overwritten in
// tests before issuing any requests.
var URL = alpaca.DataURL

// Error condition kinds used by the endpoints of this package.
const (
	ErrKindInvalidInput = "invalid input"
)

// MaxLimit is the largest number of items the service returns in one page.
const MaxLimit = 10000
