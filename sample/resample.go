// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Bootstrap resamples data with replacement, returning bootnum
// resamples of sampleLen values each. A sampleLen of zero means
// len(data), the usual bootstrap.
func Bootstrap(data []float64, bootnum, sampleLen int, src rand.Source) ([][]float64, error) {
	if src == nil {
		return nil, errors.New("sample: no random source for bootstrap")
	}
	if len(data) == 0 {
		return nil, errors.New("sample: bootstrap of empty data")
	}
	if bootnum < 1 {
		return nil, errors.Errorf("sample: bootnum must be positive, got %d", bootnum)
	}
	if sampleLen < 0 {
		return nil, errors.Errorf("sample: negative sample length %d", sampleLen)
	}
	if sampleLen == 0 {
		sampleLen = len(data)
	}

	rng := rand.New(src)
	boot := make([][]float64, bootnum)
	for i := range boot {
		row := make([]float64, sampleLen)
		for j := range row {
			row[j] = data[rng.Intn(len(data))]
		}
		boot[i] = row
	}
	return boot, nil
}

// Jackknife returns the n leave-one-out resamples of data: row i is
// data with element i deleted. The result is deterministic.
func Jackknife(data []float64) ([][]float64, error) {
	if len(data) < 2 {
		return nil, errors.Errorf("sample: jackknife needs at least 2 values, got %d", len(data))
	}

	out := make([][]float64, len(data))
	for i := range data {
		row := make([]float64, 0, len(data)-1)
		row = append(row, data[:i]...)
		row = append(row, data[i+1:]...)
		out[i] = row
	}
	return out, nil
}
