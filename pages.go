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
	"context"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// Paged is implemented by endpoint outputs that carry a continuation
// token. The token is opaque; the framework only checks its presence.
type Paged interface {
	// NextPage returns the continuation token of the next page, or "" when
	// this is the last page.
	NextPage() string
}

// PageRequest is implemented by requests of paginated endpoints.
type PageRequest[I any] interface {
	// WithPageToken returns a copy of the request with the page token set.
	WithPageToken(token string) I
}

// PageIterator iterates over the pages of a paginated endpoint, issuing one
// call per page. Each round depends on the previous round's token, so the
// iterator is inherently sequential and must not be shared across
// goroutines. The server's page order is preserved.
//
// The iteration stops only when a page arrives without a continuation
// token; bounding the number of pages is the caller's responsibility.
type PageIterator[I PageRequest[I], O Paged] struct {
	context   context.Context
	client    *Client
	endpoint  Endpoint[I, O]
	request   I
	next      string // token for the next call
	pageCount int
	started   bool
}

// Pages creates a PageIterator starting from the given request, whose page
// token is normally unset.
func Pages[I PageRequest[I], O Paged](ctx context.Context, c *Client, e Endpoint[I, O], req I) *PageIterator[I, O] {
	return &PageIterator[I, O]{context: ctx, client: c, endpoint: e, request: req}
}

// Next fetches the next page into *page. The first value is false when
// there are no more pages; no call is issued past the last page. On error
// the iterator stops.
func (it *PageIterator[I, O]) Next(page *O) (bool, error) {
	if it.started && it.next == "" {
		return false, nil
	}
	if it.started {
		it.request = it.request.WithPageToken(it.next)
	}
	it.started = true
	out, err := Issue(it.context, it.client, it.endpoint, it.request)
	if err != nil {
		it.next = ""
		return false, errors.Annotate(err, "%s: failed to fetch page %d",
			it.endpoint.Name, it.pageCount+1)
	}
	*page = out
	it.next = out.NextPage()
	it.pageCount++
	logging.Debugf(it.context, "%s: fetched page %d; next page token: %q",
		it.endpoint.Name, it.pageCount, it.next)
	return true, nil
}

// PageCount returns the number of pages fetched so far.
func (it *PageIterator[I, O]) PageCount() int { return it.pageCount }
