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

import "fmt"

// APIError is the standard error payload returned by the Alpaca API in the
// body of non-2xx responses.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConversionError indicates that a request value could not be serialized
// into a query string. It is returned before any network activity.
type ConversionError struct {
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert request to a query: %s", e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// DecodeError indicates that a response body with a success status did not
// decode as the endpoint's output type. The raw body is preserved.
type DecodeError struct {
	Body  []byte
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body: %s", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// EndpointError is a business error documented by the endpoint: the status
// code matched one of its error mappings. When the body failed to decode as
// the expected payload, DecodeErr holds the failure and Payload is the zero
// value; the matched status is reported either way.
type EndpointError struct {
	Kind      string // the endpoint's name for this error condition
	Status    int    // the matched HTTP status code
	Payload   APIError
	DecodeErr error
}

func (e *EndpointError) Error() string {
	if e.DecodeErr != nil {
		return fmt.Sprintf("%s: status %d with undecodable payload: %s",
			e.Kind, e.Status, e.DecodeErr)
	}
	return fmt.Sprintf("%s: status %d: [%d] %s",
		e.Kind, e.Status, e.Payload.Code, e.Payload.Message)
}

// UnexpectedStatusError indicates a status code absent from the endpoint's
// mappings. The status and body are preserved verbatim for diagnosis.
type UnexpectedStatusError struct {
	Status int
	Body   []byte
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, string(e.Body))
}
