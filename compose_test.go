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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// solidImage returns a width x height image filled with c.
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestComposeEmpty(t *testing.T) {
	canvas, err := Compose(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, canvas)
}

func TestComposeSingleImage(t *testing.T) {
	canvas, err := Compose([]*image.NRGBA{solidImage(100, 100, red)})
	require.NoError(t, err)
	assert.Equal(t, 100, canvas.Bounds().Dx())
	assert.Equal(t, 100, canvas.Bounds().Dy())
	// the image covers the whole sheet, no padding anywhere
	assert.Equal(t, red, canvas.NRGBAAt(0, 0))
	assert.Equal(t, red, canvas.NRGBAAt(99, 99))
	assert.Equal(t, red, canvas.NRGBAAt(50, 50))
}

func TestComposeFourQuadrants(t *testing.T) {
	images := []*image.NRGBA{
		solidImage(50, 50, red),
		solidImage(50, 50, green),
		solidImage(50, 50, blue),
		solidImage(50, 50, black),
	}
	canvas, err := Compose(images)
	require.NoError(t, err)
	require.Equal(t, 100, canvas.Bounds().Dx())
	require.Equal(t, 100, canvas.Bounds().Dy())
	// row major fill order: red green / blue black
	assert.Equal(t, red, canvas.NRGBAAt(25, 25))
	assert.Equal(t, green, canvas.NRGBAAt(75, 25))
	assert.Equal(t, blue, canvas.NRGBAAt(25, 75))
	assert.Equal(t, black, canvas.NRGBAAt(75, 75))
}

func TestComposeFiveImagesLeavesLastCellWhite(t *testing.T) {
	images := make([]*image.NRGBA, 5)
	for i := range images {
		images[i] = solidImage(40, 40, red)
	}
	canvas, err := Compose(images)
	require.NoError(t, err)
	require.Equal(t, 120, canvas.Bounds().Dx())
	require.Equal(t, 80, canvas.Bounds().Dy())
	// cells 0-4 are filled
	for i := 0; i < 5; i++ {
		x := (i%3)*40 + 20
		y := (i/3)*40 + 20
		assert.Equal(t, red, canvas.NRGBAAt(x, y), "cell %d", i)
	}
	// cell 5 stays background white
	assert.Equal(t, white, canvas.NRGBAAt(100, 60))
}

func TestComposeSmallerImagePadding(t *testing.T) {
	images := []*image.NRGBA{
		solidImage(100, 100, red),
		solidImage(60, 40, green),
	}
	canvas, err := Compose(images)
	require.NoError(t, err)
	// 2x2 grid of 100x100 cells
	require.Equal(t, 200, canvas.Bounds().Dx())
	require.Equal(t, 200, canvas.Bounds().Dy())
	// the smaller image sits at the top left of its cell
	assert.Equal(t, green, canvas.NRGBAAt(100, 0))
	assert.Equal(t, green, canvas.NRGBAAt(159, 39))
	// right and bottom of the cell stay white
	assert.Equal(t, white, canvas.NRGBAAt(160, 0))
	assert.Equal(t, white, canvas.NRGBAAt(100, 40))
	// the two empty cells of the second row stay white
	assert.Equal(t, white, canvas.NRGBAAt(50, 150))
	assert.Equal(t, white, canvas.NRGBAAt(150, 150))
}

func TestComposeIdempotent(t *testing.T) {
	images := []*image.NRGBA{
		solidImage(30, 20, red),
		solidImage(20, 30, green),
		solidImage(25, 25, blue),
	}
	first, err := Compose(images)
	require.NoError(t, err)
	second, err := Compose(images)
	require.NoError(t, err)
	assert.Equal(t, first.Bounds(), second.Bounds())
	assert.Equal(t, first.Pix, second.Pix)
}

func TestComposeOrderDeterminesCell(t *testing.T) {
	a := solidImage(10, 10, red)
	b := solidImage(10, 10, green)

	canvas, err := Compose([]*image.NRGBA{a, b})
	require.NoError(t, err)
	assert.Equal(t, red, canvas.NRGBAAt(5, 5))
	assert.Equal(t, green, canvas.NRGBAAt(15, 5))

	// swapping the input order swaps the cells, nothing else
	swapped, err := Compose([]*image.NRGBA{b, a})
	require.NoError(t, err)
	assert.Equal(t, green, swapped.NRGBAAt(5, 5))
	assert.Equal(t, red, swapped.NRGBAAt(15, 5))
	assert.Equal(t, canvas.NRGBAAt(5, 15), swapped.NRGBAAt(5, 15))
	assert.Equal(t, canvas.NRGBAAt(15, 15), swapped.NRGBAAt(15, 15))
}

func TestComposeAlphaOverlay(t *testing.T) {
	// fully transparent pixels let the white background show through
	transparent := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	canvas, err := Compose([]*image.NRGBA{transparent})
	require.NoError(t, err)
	assert.Equal(t, white, canvas.NRGBAAt(5, 5))

	// half transparent red blends with the background
	halfRed := solidImage(10, 10, color.NRGBA{R: 255, A: 128})
	canvas, err = Compose([]*image.NRGBA{halfRed})
	require.NoError(t, err)
	blended := canvas.NRGBAAt(5, 5)
	assert.EqualValues(t, 255, blended.A)
	assert.EqualValues(t, 255, blended.R)
	assert.Greater(t, blended.G, uint8(100))
	assert.Less(t, blended.G, uint8(150))
}

func TestComposeDoesNotMutateInput(t *testing.T) {
	img := solidImage(10, 10, red)
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	_, err := Compose([]*image.NRGBA{img, solidImage(10, 10, green)})
	require.NoError(t, err)
	assert.Equal(t, pix, img.Pix)
}
