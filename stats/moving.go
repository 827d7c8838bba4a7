// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/pkg/errors"

// ConvMode selects how much of the boundary a windowed convolution
// keeps.
type ConvMode int

//go:generate stringer -type=ConvMode

const (
	// ConvFull keeps every point of overlap between window and
	// data, length n+w-1. The ends see partial windows.
	ConvFull ConvMode = iota

	// ConvSame keeps the central max(n, w) points, aligned with
	// the input. The ends still see partial windows.
	ConvSame

	// ConvValid keeps only points where the window overlaps the
	// data completely, length max(n, w)-min(n, w)+1.
	ConvValid
)

// MovingMean returns the moving average of xs within a window of
// width w, computed by convolution with a ones(w)/w kernel. mode
// selects the boundary handling.
func MovingMean(xs []float64, w int, mode ConvMode) ([]float64, error) {
	if w < 1 {
		return nil, errors.Errorf("stats: window width must be positive, got %d", w)
	}
	if len(xs) == 0 {
		return nil, errors.New("stats: moving mean of empty data")
	}

	n := len(xs)
	full := make([]float64, n+w-1)
	for k := range full {
		lo := k - w + 1
		if lo < 0 {
			lo = 0
		}
		hi := k
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += xs[i]
		}
		full[k] = sum / float64(w)
	}

	short, long := n, w
	if short > long {
		short, long = long, short
	}
	switch mode {
	default:
		panic("unknown convolution mode")
	case ConvFull:
		return full, nil
	case ConvSame:
		start := (short - 1) / 2
		return full[start : start+long], nil
	case ConvValid:
		return full[short-1 : long], nil
	}
}
