// Copyright 2024 The imagepreview Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imagepreview

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// DefaultClient is the client used by fetchers created without an
	// explicit one. It reuses connections across requests and is shared
	// by all such fetchers for the lifetime of the process.
	DefaultClient = &http.Client{}
)

// Fetcher downloads the raw bytes for a list of image URLs. All
// downloads of a single call run concurrently on the same client, so
// the client must be safe for concurrent use (http.Client is).
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a fetcher using the given client. If client is nil
// DefaultClient is used. Timeouts and redirect policies are whatever the
// client is configured with; the fetcher adds none of its own.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = DefaultClient
	}
	return &Fetcher{client: client}
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) ([]byte, error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, reqErr
	}
	resp, respErr := f.client.Do(req)
	if respErr != nil {
		return nil, respErr
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	data, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, errors.Wrapf(readErr, "GET %s: reading body", url)
	}
	return data, nil
}

// FetchAll downloads all URLs concurrently and returns the response
// bodies in input order: the buffer at index i always belongs to
// urls[i], independent of completion order. The call returns only after
// every download has finished. The first failure is returned as a
// *TransportError and no partial results are handed out; downloads
// still in flight at that point are simply discarded when they finish.
//
// An empty url list fails with ErrEmptyInput.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([][]byte, error) {
	if len(urls) == 0 {
		return nil, ErrEmptyInput
	}

	type result struct {
		pos  int
		data []byte
		err  error
	}

	res := make([][]byte, len(urls))
	results := make(chan result, len(urls))
	// one goroutine per source, all issued before any is awaited
	for i, url := range urls {
		go func(pos int, url string) {
			data, err := f.fetchOne(ctx, url)
			results <- result{pos: pos, data: data, err: err}
		}(i, url)
	}

	var err error
	for range urls {
		next := <-results
		if next.err != nil {
			if err == nil {
				err = &TransportError{URL: urls[next.pos], Err: next.err}
			}
			continue
		}
		res[next.pos] = next.data
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
