// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// MeanMedianMode returns the mean, median and mode of xs. The mode is
// the most frequent value; when several values are equally frequent
// the smallest is returned.
func MeanMedianMode(xs []float64) (mean, median, mode float64, err error) {
	if len(xs) == 0 {
		return 0, 0, 0, errors.New("stats: mean of empty data")
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n := len(sorted); n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	mode, _ = stat.Mode(sorted, nil)
	return mean, median, mode, nil
}
