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
	"bytes"
	"image"
	"runtime"

	"github.com/disintegration/imaging"
)

// DefaultNumRoutines returns the number of goroutines used for decoding
// when no explicit count is given.
func DefaultNumRoutines() int {
	numRoutines := runtime.NumCPU() * 2
	if numRoutines <= 0 {
		// don't know if this can happen, better safe than sorry
		numRoutines = 4
	}
	return numRoutines
}

// Decode parses a single image buffer and converts it to the canonical
// four channel, straight alpha representation used by the compositor.
// Any source pixel format (grayscale, paletted, RGB, ...) is accepted,
// so later stages never branch on the format. Unsupported or malformed
// data fails with a *DecodeError carrying the codec diagnostic.
func Decode(data []byte) (*image.NRGBA, error) {
	img, decodeErr := imaging.Decode(bytes.NewReader(data))
	if decodeErr != nil {
		return nil, &DecodeError{Err: decodeErr}
	}
	return imaging.Clone(img), nil
}

// DecodeAll decodes all buffers and returns the images in input order:
// the image at index i was decoded from buffers[i]. Decoding runs on
// numRoutines goroutines (values <= 0 select DefaultNumRoutines) since
// the buffers are independent and read-only. The first failure aborts
// the whole call with a *DecodeError; no partial results are returned.
func DecodeAll(buffers [][]byte, numRoutines int) ([]*image.NRGBA, error) {
	if numRoutines <= 0 {
		numRoutines = DefaultNumRoutines()
	}

	type job struct {
		pos  int
		data []byte
	}

	res := make([]*image.NRGBA, len(buffers))
	jobs := make(chan job, len(buffers))
	errorChan := make(chan error, len(buffers))
	for w := 0; w < numRoutines; w++ {
		go func() {
			for next := range jobs {
				img, imgErr := Decode(next.data)
				if imgErr != nil {
					errorChan <- imgErr
					continue
				}
				res[next.pos] = img
				errorChan <- nil
			}
		}()
	}

	go func() {
		for i, data := range buffers {
			jobs <- job{pos: i, data: data}
		}
		close(jobs)
	}()

	// any error that occurs sets this variable (first error)
	var err error
	for i := 0; i < len(buffers); i++ {
		nextErr := <-errorChan
		if nextErr != nil && err == nil {
			err = nextErr
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
