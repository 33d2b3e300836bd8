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

// Package trading defines the endpoints of the Alpaca Trading API: the
// market calendar and clock, and the asset catalog. All endpoints use the
// client's base URL.
//
// Official documentation is at https://docs.alpaca.markets/reference .
package trading

// Error condition kinds used by the endpoints of this package.
const (
	ErrKindAssetNotFound = "asset not found"
)
