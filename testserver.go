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
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// TestServer is a scripted HTTP server for tests of this package and of
// endpoint consumers. Each request pops the next element of ResponseBody
// and ResponseStatus (the last element repeats when the script runs out;
// an empty ResponseStatus means 200 for every request), and records the
// request's path, query and headers.
type TestServer struct {
	ResponseBody   []string
	ResponseStatus []int

	RequestPath    string
	RequestQuery   url.Values
	RequestHeaders http.Header
	NumRequests    int

	mu     sync.Mutex
	server *httptest.Server
}

// NewTestServer creates and starts a TestServer.
func NewTestServer() *TestServer {
	s := &TestServer{}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func scripted[T any](script []T, i int, dflt T) T {
	if len(script) == 0 {
		return dflt
	}
	if i >= len(script) {
		i = len(script) - 1
	}
	return script[i]
}

func (s *TestServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.RequestPath = r.URL.Path
	s.RequestQuery = r.URL.Query()
	s.RequestHeaders = r.Header.Clone()
	status := scripted(s.ResponseStatus, s.NumRequests, http.StatusOK)
	body := scripted(s.ResponseBody, s.NumRequests, "")
	s.NumRequests++

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// URL returns the base URL of the test server, to be used as the base URL
// of an ApiInfo or an Endpoint.
func (s *TestServer) URL() string { return s.server.URL }

// Client returns an HTTP client connected to the test server, to be
// injected with WithHTTPClient.
func (s *TestServer) Client() *http.Client { return s.server.Client() }

// Close shuts down the test server.
func (s *TestServer) Close() { s.server.Close() }
