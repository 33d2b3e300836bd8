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

package alpaca

import (
	"os"
	"strings"

	"github.com/stockparfait/errors"
)

// Default base URLs. The trading URL points to the paper trading
// environment; set APCA_API_BASE_URL to https://api.alpaca.markets for live
// trading.
const (
	TradingURL = "https://paper-api.alpaca.markets"
	DataURL    = "https://data.alpaca.markets"
)

// Environment variables recognized by NewApiInfoFromEnv.
const (
	EnvKeyID     = "APCA_API_KEY_ID"
	EnvSecretKey = "APCA_API_SECRET_KEY"
	EnvBaseURL   = "APCA_API_BASE_URL"
)

// ApiInfo holds the credentials and the base URL shared by all requests
// issued from one Client. It is immutable after construction.
type ApiInfo struct {
	KeyID     string
	SecretKey string
	BaseURL   string // no trailing slash
}

// NewApiInfo creates an ApiInfo with the default trading base URL when
// baseURL is empty.
func NewApiInfo(keyID, secretKey, baseURL string) (ApiInfo, error) {
	if keyID == "" {
		return ApiInfo{}, errors.Reason("API key ID is empty")
	}
	if secretKey == "" {
		return ApiInfo{}, errors.Reason("API secret key is empty")
	}
	if baseURL == "" {
		baseURL = TradingURL
	}
	return ApiInfo{
		KeyID:     keyID,
		SecretKey: secretKey,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// NewApiInfoFromEnv creates an ApiInfo from the APCA_API_KEY_ID,
// APCA_API_SECRET_KEY and (optionally) APCA_API_BASE_URL environment
// variables.
func NewApiInfoFromEnv() (ApiInfo, error) {
	info, err := NewApiInfo(
		os.Getenv(EnvKeyID), os.Getenv(EnvSecretKey), os.Getenv(EnvBaseURL))
	if err != nil {
		return ApiInfo{}, errors.Annotate(
			err, "failed to read credentials from environment")
	}
	return info, nil
}
