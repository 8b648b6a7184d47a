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
	"image/draw"
)

var (
	// CanvasBackground is the color every canvas cell starts out with.
	// Cells without a source image, and the parts of a cell a smaller
	// image does not cover, keep this color in the final sheet.
	CanvasBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Compose lays the given images out on a fresh canvas and returns it.
// The grid shape is PlanGrid(len(images)); every cell is as wide as the
// widest image and as tall as the tallest one, so the canvas measures
// Cols * maxWidth by Rows * maxHeight pixels. Image i occupies the cell
// at column i % Cols and row i / Cols, filling the grid left to right,
// top to bottom.
//
// Images are drawn at their native size at the top left corner of their
// cell with a straight alpha overlay: opaque pixels overwrite the
// canvas, transparent pixels let the white background show through.
// Images are never scaled; smaller images leave white padding on the
// right and bottom of their cell and trailing cells of the last row
// stay white.
//
// The images themselves are only read. Composing the same image list
// twice yields pixel-identical canvases. An empty list fails with
// ErrEmptyInput.
func Compose(images []*image.NRGBA) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrEmptyInput
	}

	var maxWidth, maxHeight int
	for _, img := range images {
		if w := img.Bounds().Dx(); w > maxWidth {
			maxWidth = w
		}
		if h := img.Bounds().Dy(); h > maxHeight {
			maxHeight = h
		}
	}

	shape := PlanGrid(len(images))
	canvas := image.NewNRGBA(image.Rect(0, 0, shape.Cols*maxWidth, shape.Rows*maxHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(CanvasBackground), image.Point{}, draw.Src)

	for i, img := range images {
		col := i % shape.Cols
		row := i / shape.Cols
		bounds := img.Bounds()
		cell := image.Rect(0, 0, bounds.Dx(), bounds.Dy()).
			Add(image.Pt(col*maxWidth, row*maxHeight))
		draw.Draw(canvas, cell, img, bounds.Min, draw.Over)
	}

	return canvas, nil
}
