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

// GridShape describes how the output canvas is tiled: Cols columns and
// Rows rows, so the canvas holds Cols * Rows cells.
type GridShape struct {
	Cols, Rows int
}

// NumCells returns the total number of cells in the grid.
func (s GridShape) NumCells() int {
	return s.Cols * s.Rows
}

// PlanGrid returns the grid shape for the given number of images.
// The policy is fixed: a single image gets the whole sheet, two to four
// images share a 2x2 grid and larger sets are laid out three columns
// wide with as many rows as needed. Small counts stay square-ish so
// thumbnails remain readable, large counts never grow wider than three
// columns. The same count always yields the same shape and the shape
// always has at least as many cells as images.
//
// A count of 0 yields the degenerate shape (0, 0); callers must reject
// empty input before planning.
func PlanGrid(count int) GridShape {
	switch {
	case count <= 0:
		return GridShape{}
	case count == 1:
		return GridShape{Cols: 1, Rows: 1}
	case count <= 4:
		return GridShape{Cols: 2, Rows: 2}
	default:
		return GridShape{Cols: 3, Rows: (count + 2) / 3}
	}
}
