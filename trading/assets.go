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

package trading

import (
	"net/http"
	"net/url"

	"github.com/stockparfait/alpaca"
	"github.com/stockparfait/errors"
)

// Asset is a single asset traded on the platform.
type Asset struct {
	ID           string `json:"id"`
	Class        string `json:"class"`
	Exchange     string `json:"exchange"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Tradable     bool   `json:"tradable"`
	Marginable   bool   `json:"marginable"`
	Shortable    bool   `json:"shortable"`
	EasyToBorrow bool   `json:"easy_to_borrow"`
	Fractionable bool   `json:"fractionable"`
}

// AssetRequest is the request of the GetAsset endpoint.
type AssetRequest struct {
	Symbol string
}

// GetAsset is the GET /v2/assets/{symbol} endpoint retrieving a single
// asset. An unknown symbol yields an EndpointError of kind
// ErrKindAssetNotFound.
var GetAsset = alpaca.Endpoint[AssetRequest, Asset]{
	Name: "get asset",
	Path: func(req AssetRequest) string { return "/v2/assets/" + req.Symbol },
	Query: func(req AssetRequest) (url.Values, error) {
		if req.Symbol == "" {
			return nil, errors.Reason("symbol is empty")
		}
		return nil, nil
	},
	Errors: []alpaca.ErrorMapping{
		alpaca.MapAPIError(http.StatusNotFound, ErrKindAssetNotFound),
	},
}

// AssetsRequest is the request of the GetAssets endpoint. Empty fields are
// not sent, leaving the filtering to the service defaults.
type AssetsRequest struct {
	Status string // e.g. "active"
	Class  string // e.g. "us_equity"
}

// GetAssets is the GET /v2/assets endpoint listing assets, optionally
// filtered by status and class.
var GetAssets = alpaca.Endpoint[AssetsRequest, []Asset]{
	Name: "get assets",
	Path: func(AssetsRequest) string { return "/v2/assets" },
	Query: func(req AssetsRequest) (url.Values, error) {
		v := make(url.Values)
		if req.Status != "" {
			v.Set("status", req.Status)
		}
		if req.Class != "" {
			v.Set("asset_class", req.Class)
		}
		return v, nil
	},
}
