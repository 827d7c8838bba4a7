// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got = Linspace(-5, 5, 10)
	require.Len(t, got, 10)
	assert.Equal(t, -5.0, got[0])
	assert.Equal(t, 5.0, got[9])
}

func TestRebin1D(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}

	got, err := Rebin1D(xs, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 11}, got)

	// Remainder bins are dropped.
	got, err = Rebin1D(xs, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, got)

	got, err = Rebin1D(xs, 1)
	require.NoError(t, err)
	assert.Equal(t, xs, got)

	_, err = Rebin1D(xs, 0)
	assert.Error(t, err)
	_, err = Rebin1D(xs, 7)
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	got := Flatten([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	assert.Equal(t, []float64{1, 2, 3}, Flatten([][]float64{{1, 2, 3}}))
	assert.Empty(t, Flatten(nil))
}
