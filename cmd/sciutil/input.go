// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readColumns reads whitespace-separated numeric rows of ncols
// columns from the named file, or from stdin when path is empty.
// Blank lines and lines starting with "#" are skipped.
func readColumns(path string, ncols int) ([][]float64, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cols := make([][]float64, ncols)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != ncols {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineno, ncols, len(fields))
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	return cols, scanner.Err()
}
