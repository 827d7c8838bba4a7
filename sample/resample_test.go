// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBootstrap(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}

	boot, err := Bootstrap(data, 100, 0, rand.NewSource(123456))
	require.NoError(t, err)
	require.Len(t, boot, 100)

	members := map[float64]bool{}
	for _, v := range data {
		members[v] = true
	}
	for _, row := range boot {
		require.Len(t, row, len(data))
		for _, v := range row {
			assert.True(t, members[v], "resampled value %v not in data", v)
		}
	}

	short, err := Bootstrap(data, 3, 4, rand.NewSource(1))
	require.NoError(t, err)
	require.Len(t, short, 3)
	assert.Len(t, short[0], 4)
}

func TestBootstrapReproducible(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	a, err := Bootstrap(data, 10, 0, rand.NewSource(7))
	require.NoError(t, err)
	b, err := Bootstrap(data, 10, 0, rand.NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBootstrapErrors(t *testing.T) {
	data := []float64{1, 2, 3}
	_, err := Bootstrap(data, 10, 0, nil)
	assert.Error(t, err)
	_, err = Bootstrap(nil, 10, 0, rand.NewSource(1))
	assert.Error(t, err)
	_, err = Bootstrap(data, 0, 0, rand.NewSource(1))
	assert.Error(t, err)
	_, err = Bootstrap(data, 10, -1, rand.NewSource(1))
	assert.Error(t, err)
}

func TestJackknife(t *testing.T) {
	data := []float64{10, 20, 30, 40}
	out, err := Jackknife(data)
	require.NoError(t, err)
	want := [][]float64{
		{20, 30, 40},
		{10, 30, 40},
		{10, 20, 40},
		{10, 20, 30},
	}
	assert.Equal(t, want, out)

	_, err = Jackknife([]float64{1})
	assert.Error(t, err)
}
