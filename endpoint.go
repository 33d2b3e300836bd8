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
	"encoding/json"
	"net/http"
	"net/url"
)

// Endpoint describes one remote API operation with request type I and
// response type O. It is the only place where endpoint-specific HTTP
// semantics live: the path and query construction, the success status set,
// and the mapping of failure statuses to typed errors. The rest of the
// package is endpoint-agnostic.
//
// Endpoints are declared as package-level values in the trading and
// marketdata subpackages and passed to Issue() or Pages().
type Endpoint[I, O any] struct {
	// Name identifies the endpoint in error and log messages.
	Name string

	// Method is the HTTP method; GET when empty.
	Method string

	// BaseURL, when non-nil, overrides the client's base URL. It is a
	// function so that endpoints can honor a package-level URL variable
	// overwritten in tests.
	BaseURL func() string

	// Path constructs the URL path from the request. Infallible.
	Path func(req I) string

	// Query constructs the URL query from the request. A nil Query means the
	// endpoint takes no query parameters. An error fails the call before any
	// network activity.
	Query func(req I) (url.Values, error)

	// Body serializes the request body for non-GET methods. Nil for GET.
	Body func(req I) ([]byte, error)

	// Success is the set of status codes decoded as O; {200} when empty.
	Success []int

	// Errors maps specific failure status codes to typed errors. Evaluated
	// in order; any status matching neither Success nor Errors becomes an
	// UnexpectedStatusError.
	Errors []ErrorMapping
}

// ErrorMapping associates one HTTP status code with a decoder producing the
// typed error for that condition. Decode always returns a non-nil error.
type ErrorMapping struct {
	Status int
	Decode func(status int, body []byte) error
}

// MapAPIError is the common ErrorMapping: decode the body as the standard
// APIError payload and return an EndpointError of the given kind. A body
// that does not parse as an APIError still yields the EndpointError, with
// the decode failure attached.
func MapAPIError(status int, kind string) ErrorMapping {
	return ErrorMapping{
		Status: status,
		Decode: func(status int, body []byte) error {
			var payload APIError
			if err := json.Unmarshal(body, &payload); err != nil {
				return &EndpointError{Kind: kind, Status: status, DecodeErr: err}
			}
			return &EndpointError{Kind: kind, Status: status, Payload: payload}
		},
	}
}

func (e Endpoint[I, O]) method() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}

func (e Endpoint[I, O]) isSuccess(status int) bool {
	if len(e.Success) == 0 {
		return status == http.StatusOK
	}
	for _, s := range e.Success {
		if s == status {
			return true
		}
	}
	return false
}

// classify decodes a raw response into O or into one of the endpoint's
// typed errors. See the package documentation for the taxonomy.
func classify[I, O any](e Endpoint[I, O], status int, body []byte) (O, error) {
	var out O
	if e.isSuccess(status) {
		if err := json.Unmarshal(body, &out); err != nil {
			return out, &DecodeError{Body: body, Cause: err}
		}
		return out, nil
	}
	for _, m := range e.Errors {
		if m.Status == status {
			return out, m.Decode(status, body)
		}
	}
	return out, &UnexpectedStatusError{Status: status, Body: body}
}
