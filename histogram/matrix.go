// SPDX-License-Identifier: MIT

// Package histogram: the Matrix result type. Counts is row-major over
// range bins, so Counts[i][j] is range-bin i, mean-bin j.
package histogram

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadBinCount indicates a requested bin count below 1 on either axis.
var ErrBadBinCount = errors.New("histogram: bin counts must be ≥ 1")

// ErrIndexOutOfBounds indicates a cell index outside the matrix.
var ErrIndexOutOfBounds = errors.New("histogram: index out of bounds")

// Matrix is a 2-D range×mean frequency matrix. RangeEdges has one more
// element than Counts has rows, MeanEdges one more than Counts has columns;
// both edge slices are non-decreasing. Counts[i][j] holds the accumulated
// Cycle.Count weight of bin (i,j). A Matrix is built once by Build and not
// mutated afterwards.
type Matrix struct {
	RangeEdges []float64
	MeanEdges  []float64
	Counts     [][]float64
}

// Bins returns the (rangeBins, meanBins) dimensions.
// Complexity: O(1).
func (m *Matrix) Bins() (int, int) {
	return len(m.RangeEdges) - 1, len(m.MeanEdges) - 1
}

// At retrieves the accumulated count of cell (i, j).
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): read the cell.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.Counts) {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	if j < 0 || j >= len(m.Counts[i]) {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.Counts[i][j], nil
}

// Total returns the sum of all cells, i.e. the total count weight binned.
// Complexity: O(r·c).
func (m *Matrix) Total() float64 {
	var sum float64
	for _, row := range m.Counts {
		for _, v := range row {
			sum += v
		}
	}

	return sum
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r·c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		RangeEdges: append([]float64(nil), m.RangeEdges...),
		MeanEdges:  append([]float64(nil), m.MeanEdges...),
		Counts:     make([][]float64, len(m.Counts)),
	}
	for i, row := range m.Counts {
		cp.Counts[i] = append([]float64(nil), row...)
	}

	return cp
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// range bin.
// Complexity: O(r·c) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, row := range m.Counts {
		sb.WriteString("[")
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
