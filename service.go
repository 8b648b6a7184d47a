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
	"image"
	"net/http"
)

// Service runs the whole pipeline: fetch the sources, decode them and
// compose the contact sheet. It is safe for concurrent use; every call
// works on its own buffers and the only shared piece is the HTTP client,
// which reuses connections across requests.
type Service struct {
	fetcher *Fetcher

	// NumRoutines controls how many goroutines decode images
	// concurrently. Values <= 0 select DefaultNumRoutines.
	NumRoutines int
}

// NewService returns a service downloading images through the given
// client. If client is nil DefaultClient is used.
func NewService(client *http.Client) *Service {
	return &Service{
		fetcher:     NewFetcher(client),
		NumRoutines: DefaultNumRoutines(),
	}
}

// ProcessURLs downloads all URLs, decodes the results and composes the
// contact sheet. The stages run in order and the first failure of any
// stage aborts the call with that stage's error: ErrEmptyInput for an
// empty url list, *TransportError for a failed download, *DecodeError
// for a buffer that is not a supported image.
func (s *Service) ProcessURLs(ctx context.Context, urls []string) (*image.NRGBA, error) {
	buffers, fetchErr := s.fetcher.FetchAll(ctx, urls)
	if fetchErr != nil {
		return nil, fetchErr
	}
	return s.ProcessBuffers(buffers)
}

// ProcessBuffers decodes the given raw image buffers and composes the
// contact sheet. This is the entry point for sources that are already
// in memory and need no download.
func (s *Service) ProcessBuffers(buffers [][]byte) (*image.NRGBA, error) {
	if len(buffers) == 0 {
		return nil, ErrEmptyInput
	}
	images, decodeErr := DecodeAll(buffers, s.NumRoutines)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return Compose(images)
}

// ProcessEncodedSourceList decodes a base64 source list payload (see
// DecodeSourceList for the accepted variants) and processes the
// resulting URLs. A payload that decodes to no usable URLs surfaces as
// ErrEmptyInput from the fetch stage.
func (s *Service) ProcessEncodedSourceList(ctx context.Context, encoded string) (*image.NRGBA, error) {
	urls, decodeErr := DecodeSourceList(encoded)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return s.ProcessURLs(ctx, urls)
}
