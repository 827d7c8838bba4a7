// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// strenc encodes floating point numbers as filename-safe strings and
// decodes them again.
//
// Scientific pipelines often bake parameter values into file names,
// where a decimal point is unwelcome. The usual convention replaces
// it with a letter, so redshift 2.5 becomes "z2p5". Encoding captures
// that convention: a separator standing in for the decimal point, an
// optional fixed precision, and optional prefix and suffix tags.
package strenc // import "github.com/acollier/go-sciutil/strenc"

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Encoding describes how a float is rendered as a string. The zero
// value formats with a plain decimal point and the shortest
// representation that round-trips.
type Encoding struct {
	// Separator stands in for the decimal point. Empty means ".".
	Separator string

	// Precision is the number of decimal places, used only when
	// Fixed is true. Zero with Fixed set rounds to an integer.
	Precision int

	// Fixed selects fixed-precision formatting. When false the
	// shortest representation that round-trips is used.
	Fixed bool

	// Prefix and Suffix are added around the encoded number.
	Prefix, Suffix string
}

func (e Encoding) sep() string {
	if e.Separator == "" {
		return "."
	}
	return e.Separator
}

// Format renders f according to the encoding, for example
// Encoding{Separator: "p", Prefix: "z"}.Format(23.5) == "z23p5".
func (e Encoding) Format(f float64) string {
	prec := -1
	if e.Fixed {
		prec = e.Precision
	}
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if sep := e.sep(); sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return e.Prefix + s + e.Suffix
}

// Parse decodes a string produced by Format (or by hand in the same
// convention) back into a float. Missing prefixes and suffixes are
// tolerated; a string that does not contain a number under the
// encoding is an error.
func (e Encoding) Parse(s string) (float64, error) {
	orig := s
	s = strings.TrimPrefix(s, e.Prefix)
	s = strings.TrimSuffix(s, e.Suffix)
	if sep := e.sep(); sep != "." {
		if strings.Count(s, sep) > 1 {
			return 0, errors.Errorf("strenc: %q contains %q more than once", orig, sep)
		}
		s = strings.Replace(s, sep, ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "strenc: cannot decode %q", orig)
	}
	return f, nil
}
