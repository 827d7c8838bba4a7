// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// BinCenters returns the centers of the histogram bins described by
// edges. For n edges it returns n-1 centers; fewer than two edges
// yield nil.
func BinCenters(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = edges[i] + (edges[i+1]-edges[i])/2
	}
	return centers
}

// HistPDF normalizes a histogram into a probability density: each
// count is divided by its bin width and the total count, so the
// density integrates to one over the bins. An effectively empty
// histogram (total below 1e-16) yields all zeros.
func HistPDF(hist, widths []float64) ([]float64, error) {
	if len(hist) != len(widths) {
		return nil, errors.Errorf("stats: %d histogram bins but %d widths", len(hist), len(widths))
	}

	total := 0.0
	for _, h := range hist {
		total += h
	}
	pdf := make([]float64, len(hist))
	if total < 1e-16 {
		return pdf, nil
	}
	for i, h := range hist {
		pdf[i] = h / widths[i] / total
	}
	return pdf, nil
}

// binWidth returns dx, or the linear spacing of xs when dx is not
// positive.
func binWidth(xs []float64, dx float64) float64 {
	if dx > 0 {
		return dx
	}
	return (xs[len(xs)-1] - xs[0]) / float64(len(xs))
}

// PDFMean returns the mean of the density pdf tabulated at xs. dx is
// the bin spacing; pass 0 to assume linearly spaced bins.
func PDFMean(xs, pdf []float64, dx float64) float64 {
	dx = binWidth(xs, dx)
	mean := 0.0
	for i, p := range pdf {
		mean += p * xs[i] * dx
	}
	return mean
}

// PDFVariance returns the variance of the density pdf tabulated at
// xs. dx is the bin spacing; pass 0 to assume linearly spaced bins.
func PDFVariance(xs, pdf []float64, dx float64) float64 {
	dx = binWidth(xs, dx)
	mean := PDFMean(xs, pdf, dx)
	variance := 0.0
	for i, p := range pdf {
		d := xs[i] - mean
		variance += p * dx * d * d
	}
	return variance
}

// PDFStdDev returns the standard deviation of the density pdf
// tabulated at xs. dx is the bin spacing; pass 0 to assume linearly
// spaced bins.
func PDFStdDev(xs, pdf []float64, dx float64) float64 {
	return math.Sqrt(PDFVariance(xs, pdf, dx))
}

// PDFPercentile returns the x value below which fraction p of the
// density lies, by inverting the cumulative sum of pdf. p must be in
// [0, 1]. Like the inverse-CDF sampler, a run of zero-density bins
// makes the inverse ill-defined and returns an error.
func PDFPercentile(xs, pdf []float64, p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Errorf("stats: percentile %v outside [0, 1]", p)
	}
	if len(xs) != len(pdf) {
		return 0, errors.Errorf("stats: mismatched lengths %d and %d", len(xs), len(pdf))
	}
	if len(xs) < 2 {
		return 0, errors.Errorf("stats: need at least 2 density points, got %d", len(xs))
	}

	cum := make([]float64, len(pdf))
	sum := 0.0
	for i, v := range pdf {
		sum += v
		cum[i] = sum
	}
	if sum <= 0 {
		return 0, errors.New("stats: density sums to zero")
	}
	for i := range cum {
		cum[i] /= sum
	}

	// Fit panics on a non-increasing abscissa, so check
	// invertibility up front. A zero-density bin repeats the
	// previous cumulative value.
	for i := 1; i < len(cum); i++ {
		if cum[i] <= cum[i-1] {
			return 0, errors.Errorf("stats: cumulative distribution is not invertible: cum[%d]=%v does not exceed cum[%d]=%v", i, cum[i], i-1, cum[i-1])
		}
	}

	var inv interp.PiecewiseLinear
	if err := inv.Fit(cum, xs); err != nil {
		return 0, errors.Wrap(err, "stats: fitting inverse interpolant")
	}
	return inv.Predict(p), nil
}

// PDFMedian returns the median of the density pdf tabulated at xs.
func PDFMedian(xs, pdf []float64) (float64, error) {
	return PDFPercentile(xs, pdf, 0.5)
}

// SigmaPercentiles returns the lower and upper percentiles of a
// Gaussian that bound the central +/- sigma standard deviations. For
// example, sigma=1 gives (0.1587, 0.8413).
func SigmaPercentiles(sigma float64) (lo, hi float64, err error) {
	if sigma < 0 {
		return 0, 0, errors.Errorf("stats: negative sigma %v", sigma)
	}
	p := math.Erf(sigma / math.Sqrt2)
	return (1 - p) / 2, (1 + p) / 2, nil
}

// LerpPDFs linearly interpolates between two tabulated densities
// associated with scalars x0 and x1, evaluated at x. The result at
// x=x0 is pdf0 and at x=x1 is pdf1; x is normally between the two.
func LerpPDFs(x, x0, x1 float64, pdf0, pdf1 []float64) ([]float64, error) {
	if len(pdf0) != len(pdf1) {
		return nil, errors.Errorf("stats: mismatched density lengths %d and %d", len(pdf0), len(pdf1))
	}
	if x0 == x1 {
		return nil, errors.New("stats: coincident interpolation points")
	}

	dist := x - x0
	scale := dist / (x1 - x0)
	out := make([]float64, len(pdf0))
	for i := range out {
		out[i] = pdf0[i] + scale*(pdf1[i]-pdf0[i])
	}
	return out, nil
}
