// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"strings"
	"testing"
)

func TestBinCenters(t *testing.T) {
	got := BinCenters([]float64{0, 1, 2, 4})
	if !aeqSlice([]float64{0.5, 1.5, 3}, got) {
		t.Errorf("BinCenters = %v", got)
	}
	if BinCenters([]float64{1}) != nil {
		t.Error("BinCenters of a single edge should be nil")
	}
}

func TestHistPDF(t *testing.T) {
	// Unit-width bins: density is count / total.
	pdf, err := HistPDF([]float64{1, 3, 4, 2}, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !aeqSlice([]float64{0.1, 0.3, 0.4, 0.2}, pdf) {
		t.Errorf("HistPDF = %v", pdf)
	}

	// The density must integrate to one over the bins.
	widths := []float64{0.5, 0.5, 2, 1}
	pdf, err = HistPDF([]float64{5, 3, 8, 4}, widths)
	if err != nil {
		t.Fatal(err)
	}
	integral := 0.0
	for i, p := range pdf {
		integral += p * widths[i]
	}
	if !aeq(1, integral) {
		t.Errorf("density integrates to %v, want 1", integral)
	}

	// Empty histogram yields zeros, not NaN.
	pdf, err = HistPDF([]float64{0, 0, 0}, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !aeqSlice([]float64{0, 0, 0}, pdf) {
		t.Errorf("empty histogram density = %v", pdf)
	}

	if _, err := HistPDF([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("mismatched lengths should error")
	}
}

func TestPDFMoments(t *testing.T) {
	// A symmetric triangle density centered on 0.
	xs := []float64{-2, -1, 0, 1, 2}
	pdf := []float64{0, 0.25, 0.5, 0.25, 0}

	if mean := PDFMean(xs, pdf, 1); !aeq(0, mean) {
		t.Errorf("mean = %v, want 0", mean)
	}
	if v := PDFVariance(xs, pdf, 1); !aeq(0.5, v) {
		t.Errorf("variance = %v, want 0.5", v)
	}
	if sd := PDFStdDev(xs, pdf, 1); !aeq(0.70710678, sd) {
		t.Errorf("std dev = %v, want sqrt(0.5)", sd)
	}

	// dx=0 assumes linear spacing: (2 - -2)/5 = 0.8 here, which
	// only rescales the (unnormalized) moments.
	if mean := PDFMean(xs, pdf, 0); !aeq(0, mean) {
		t.Errorf("mean with derived dx = %v, want 0", mean)
	}
}

func TestPDFPercentile(t *testing.T) {
	// Uniform density: percentiles interpolate linearly between
	// the cumulative points.
	xs := []float64{0, 1, 2, 3}
	pdf := []float64{1, 1, 1, 1}

	med, err := PDFMedian(xs, pdf)
	if err != nil {
		t.Fatal(err)
	}
	// Cumulative points are (0.25, 0.5, 0.75, 1) at xs, so the
	// 0.5 percentile lands exactly on xs[1].
	if !aeq(1, med) {
		t.Errorf("median = %v, want 1", med)
	}

	p, err := PDFPercentile(xs, pdf, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(3, p) {
		t.Errorf("percentile(1) = %v, want 3", p)
	}

	if _, err := PDFPercentile(xs, pdf, 1.5); err == nil {
		t.Error("percentile outside [0,1] should error")
	}
	if _, err := PDFPercentile(xs, []float64{0, 0, 0, 0}, 0.5); err == nil {
		t.Error("zero density should error")
	}
	if _, err := PDFPercentile(xs, []float64{0, 0, 1, 0}, 0.5); err == nil {
		t.Error("degenerate cumulative distribution should error")
	} else if !strings.Contains(err.Error(), "not invertible") {
		t.Errorf("degenerate cumulative distribution: got %q", err)
	}
}

func TestSigmaPercentiles(t *testing.T) {
	lo, hi, err := SigmaPercentiles(1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.15865525393145707, lo) || !aeq(0.8413447460685429, hi) {
		t.Errorf("sigma=1 -> (%v, %v)", lo, hi)
	}

	lo, hi, err = SigmaPercentiles(2.5)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.006209665325776159, lo) || !aeq(0.9937903346742238, hi) {
		t.Errorf("sigma=2.5 -> (%v, %v)", lo, hi)
	}

	if _, _, err := SigmaPercentiles(-1); err == nil {
		t.Error("negative sigma should error")
	}
}

func TestLerpPDFs(t *testing.T) {
	pdf0 := []float64{0, 1, 0}
	pdf1 := []float64{1, 0, 1}

	mid, err := LerpPDFs(0.5, 0, 1, pdf0, pdf1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqSlice([]float64{0.5, 0.5, 0.5}, mid) {
		t.Errorf("midpoint = %v", mid)
	}

	at0, err := LerpPDFs(0, 0, 1, pdf0, pdf1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqSlice(pdf0, at0) {
		t.Errorf("at x0 = %v, want pdf0", at0)
	}

	if _, err := LerpPDFs(0.5, 1, 1, pdf0, pdf1); err == nil {
		t.Error("coincident points should error")
	}
	if _, err := LerpPDFs(0.5, 0, 1, pdf0, pdf1[:2]); err == nil {
		t.Error("mismatched lengths should error")
	}
}
