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
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// Client is a stateless dispatcher over an immutable ApiInfo. It performs
// no retries, no caching and no rate limiting, and is safe to share across
// concurrent calls.
type Client struct {
	api  ApiInfo
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cl *Client) { cl.http.Timeout = timeout }
}

// NewClient creates a Client for the given credentials.
func NewClient(api ApiInfo, opts ...Option) *Client {
	c := &Client{
		api:  api,
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ApiInfo returns the credential context of the Client.
func (c *Client) ApiInfo() ApiInfo { return c.api }

// Issue executes the endpoint with the given request against the client and
// classifies the response.
//
// The error is one of:
//   - *ConversionError: the request did not serialize; nothing was sent;
//   - an annotated transport error from the underlying HTTP client;
//   - *DecodeError: a success status with a malformed body;
//   - *EndpointError: a status documented by the endpoint's error mappings;
//   - *UnexpectedStatusError: any other status, body preserved.
//
// Taxonomy errors are returned unwrapped, so callers may type-assert on
// them directly.
func Issue[I, O any](ctx context.Context, c *Client, e Endpoint[I, O], req I) (O, error) {
	var out O
	httpReq, err := buildRequest(ctx, c, e, req)
	if err != nil {
		return out, err
	}
	logging.Debugf(ctx, "%s: %s %s", e.Name, httpReq.Method, httpReq.URL)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return out, errors.Annotate(err, "%s: request failed", e.Name)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, errors.Annotate(err, "%s: failed to read response body", e.Name)
	}
	return classify(e, resp.StatusCode, body)
}

// buildRequest resolves the effective base URL, path and query, and
// attaches the authentication headers. A query conversion failure
// short-circuits before any network activity.
func buildRequest[I, O any](ctx context.Context, c *Client, e Endpoint[I, O], req I) (*http.Request, error) {
	uri := c.api.BaseURL
	if e.BaseURL != nil {
		if u := e.BaseURL(); u != "" {
			uri = u
		}
	}
	uri += e.Path(req)
	if e.Query != nil {
		query, err := e.Query(req)
		if err != nil {
			return nil, &ConversionError{Cause: err}
		}
		if len(query) > 0 {
			uri += "?" + query.Encode()
		}
	}
	var body io.Reader
	if e.Body != nil {
		raw, err := e.Body(req)
		if err != nil {
			return nil, &ConversionError{Cause: err}
		}
		body = bytes.NewReader(raw)
	}
	httpReq, err := http.NewRequestWithContext(ctx, e.method(), uri, body)
	if err != nil {
		return nil, errors.Annotate(err, "%s: failed to create request", e.Name)
	}
	httpReq.Header.Set("APCA-API-KEY-ID", c.api.KeyID)
	httpReq.Header.Set("APCA-API-SECRET-KEY", c.api.SecretKey)
	httpReq.Header.Set("Accept", "application/json")
	if e.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}
