// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides small array and angle helpers used across the
// toolkit.
package mathx // import "github.com/acollier/go-sciutil/mathx"
