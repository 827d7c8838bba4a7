// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a grab bag of routines for histograms and tabulated
// probability densities.
package stats // import "github.com/acollier/go-sciutil/stats"
