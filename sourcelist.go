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
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// sourceListEncodings are the base64 variants accepted for source list
// payloads, tried in order. Clients built on different base64 defaults
// (standard padded, URL-safe unpadded, URL-safe padded) all work without
// negotiating an encoding. If a payload happens to be decodable by more
// than one variant the first success wins.
var sourceListEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawURLEncoding,
	base64.URLEncoding,
}

// DecodeSourceList decodes a base64 source list payload into a list of
// image URLs. The decoded bytes must be valid UTF-8 text containing the
// URLs joined by commas; the text is split on commas, every piece is
// trimmed of surrounding whitespace and empty pieces are dropped.
//
// If no base64 variant can decode the payload the call fails with a
// *EncodingDecodeError, if the decoded bytes are not valid UTF-8 with a
// *TextDecodeError. The returned list may be empty (for example for a
// payload of only commas); rejecting empty lists is left to the
// downstream fetch.
func DecodeSourceList(encoded string) ([]string, error) {
	raw, decodeErr := decodeBase64(encoded)
	if decodeErr != nil {
		return nil, decodeErr
	}
	if !utf8.Valid(raw) {
		return nil, &TextDecodeError{Offset: invalidOffset(raw)}
	}
	parts := strings.Split(string(raw), ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		urls = append(urls, part)
	}
	return urls, nil
}

func decodeBase64(encoded string) ([]byte, error) {
	var lastErr error
	for _, encoding := range sourceListEncodings {
		raw, decodeErr := encoding.DecodeString(encoded)
		if decodeErr == nil {
			return raw, nil
		}
		lastErr = decodeErr
	}
	return nil, &EncodingDecodeError{Err: lastErr}
}

// invalidOffset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1 if data is valid.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
