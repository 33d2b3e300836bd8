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

// Package alpaca implements a typed client for the Alpaca brokerage and
// market data HTTP APIs.
//
// Official documentation is at https://docs.alpaca.markets/ .
//
// The package is built around a single generic dispatch mechanism. Each
// remote operation is described by an Endpoint value which fixes the
// request and response types, knows how to turn a request into a URL path
// and query, and maps HTTP status codes to typed errors. Issue() executes
// any such endpoint against a Client holding the API credentials. Endpoints
// whose responses carry a continuation token can be consumed page by page
// with a PageIterator.
//
// Concrete endpoints are defined in the trading and marketdata subpackages;
// this package itself is endpoint-agnostic.
package alpaca
