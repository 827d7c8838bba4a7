// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns num evenly spaced values over the closed interval
// [start, stop]. num must be at least 2.
func Linspace(start, stop float64, num int) []float64 {
	return floats.Span(make([]float64, num), start, stop)
}

// Rebin1D combines groups of binSize consecutive bins of xs by
// summation. If binSize does not divide len(xs), the trailing
// remainder bins are dropped.
func Rebin1D(xs []float64, binSize int) ([]float64, error) {
	if binSize < 1 {
		return nil, errors.Errorf("mathx: bin size must be at least 1, got %d", binSize)
	}
	if binSize > len(xs) {
		return nil, errors.Errorf("mathx: bin size %d exceeds array length %d", binSize, len(xs))
	}

	out := make([]float64, len(xs)/binSize)
	for i := range out {
		start := i * binSize
		out[i] = floats.Sum(xs[start : start+binSize])
	}
	return out, nil
}

// Flatten reshapes a row-major 2-D array into 1-D. Rows may have
// different lengths.
func Flatten(rows [][]float64) []float64 {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	out := make([]float64, 0, n)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
