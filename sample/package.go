// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sample draws random samples from tabulated distributions.
package sample // import "github.com/acollier/go-sciutil/sample"
