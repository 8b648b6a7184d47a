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
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no image sources are given, or when
	// after filtering no usable URLs remain.
	ErrEmptyInput = errors.New("No images provided")
)

// DecodeError is returned when a source's bytes could not be interpreted
// as a supported image format. It carries the codec diagnostic.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to decode image: %v", e.Err)
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when downloading a source's bytes failed,
// either because of a network failure or a non-success status code.
type TransportError struct {
	// URL is the source that failed.
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Failed to download image: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodingDecodeError is returned when none of the attempted base64
// variants could decode a source list payload. It carries the error of
// the last variant tried.
type EncodingDecodeError struct {
	Err error
}

func (e *EncodingDecodeError) Error() string {
	return fmt.Sprintf("Failed to decode base64: %v", e.Err)
}

// Unwrap returns the error of the last base64 variant tried.
func (e *EncodingDecodeError) Unwrap() error {
	return e.Err
}

// TextDecodeError is returned when a decoded source list payload is not
// valid UTF-8 text.
type TextDecodeError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *TextDecodeError) Error() string {
	return fmt.Sprintf("Invalid UTF-8 in decoded data at byte %d", e.Offset)
}
