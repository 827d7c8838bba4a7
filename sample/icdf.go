// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat/distuv"
)

// InverseCDF draws random samples from an arbitrary tabulated density
// by inverse-transform sampling.
//
// The density is given as (xs, ys) pairs, where xs are strictly
// increasing domain values and ys are the corresponding non-negative
// density values. The density does not need to be normalized.
// Construction computes the cumulative distribution of ys and fits a
// piecewise-linear interpolant mapping cumulative probability back to
// the domain; sampling maps uniform draws through that inverse.
//
// Each InverseCDF owns its random source, so distinct samplers can be
// used from distinct goroutines, but a single InverseCDF must not be
// shared without external synchronization.
type InverseCDF struct {
	xs, cdf []float64
	inv     interp.PiecewiseLinear
	uniform distuv.Uniform
}

// NewInverseCDF builds an inverse-CDF sampler for the density ys
// tabulated at xs, drawing randomness from src.
//
// It returns an error if src is nil, if the slice lengths differ or
// are too short to interpolate, if any density value is negative or
// the density sums to zero, or if the cumulative distribution is not
// strictly increasing (a run of zero-density bins makes the inverse
// ill-defined; trim such bins before constructing the sampler).
func NewInverseCDF(xs, ys []float64, src rand.Source) (*InverseCDF, error) {
	if src == nil {
		return nil, errors.New("sample: no random source; use NewInverseCDFSeed or supply one")
	}
	if len(xs) != len(ys) {
		return nil, errors.Errorf("sample: mismatched lengths: %d domain values, %d density values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, errors.Errorf("sample: need at least 2 density points, got %d", len(xs))
	}

	total := 0.0
	for i, y := range ys {
		if y < 0 {
			return nil, errors.Errorf("sample: negative density %v at index %d", y, i)
		}
		total += y
	}
	if total <= 0 {
		return nil, errors.New("sample: density sums to zero")
	}

	// Kahan-compensated cumulative sum. Individual normalized
	// densities can be tiny, so plain accumulation drifts.
	cdf := make([]float64, len(ys))
	sum, comp := 0.0, 0.0
	for i, y := range ys {
		term := y/total - comp
		t := sum + term
		comp = (t - sum) - term
		sum = t
		cdf[i] = sum
	}

	// Fit panics rather than erroring on a non-increasing abscissa,
	// so check invertibility up front. A run of zero-density bins
	// produces repeated cumulative values.
	for i := 1; i < len(cdf); i++ {
		if cdf[i] <= cdf[i-1] {
			return nil, errors.Errorf("sample: cumulative distribution is not invertible: cdf[%d]=%v does not exceed cdf[%d]=%v; trim zero-density bins", i, cdf[i], i-1, cdf[i-1])
		}
	}

	d := &InverseCDF{xs: xs, cdf: cdf}
	if err := d.inv.Fit(cdf, xs); err != nil {
		return nil, errors.Wrap(err, "sample: fitting inverse interpolant")
	}
	d.uniform = distuv.Uniform{Min: cdf[0], Max: cdf[len(cdf)-1], Src: src}
	return d, nil
}

// NewInverseCDFSeed is NewInverseCDF with a deterministic source
// seeded by seed. Samplers built with the same seed produce identical
// sample sequences.
func NewInverseCDFSeed(xs, ys []float64, seed uint64) (*InverseCDF, error) {
	return NewInverseCDF(xs, ys, rand.NewSource(seed))
}

// SampleN returns n samples distributed according to the tabulated
// density. Every sample lies within [xs[0], xs[len(xs)-1]].
//
// SampleN panics if n is negative.
func (d *InverseCDF) SampleN(n int) []float64 {
	if n < 0 {
		panic("sample: negative sample count")
	}
	out := make([]float64, n)
	for i := range out {
		// Uniform draws are in [cdf[0], cdf[len-1]), so the
		// inverse never extrapolates.
		out[i] = d.inv.Predict(d.uniform.Rand())
	}
	return out
}

// CDF returns a copy of the cumulative distribution constructed from
// the input density. It is non-decreasing and its last element is 1
// up to floating-point round-off. The first element equals the
// normalized weight of the first bin, so it is nonzero whenever
// ys[0] > 0.
func (d *InverseCDF) CDF() []float64 {
	out := make([]float64, len(d.cdf))
	copy(out, d.cdf)
	return out
}
