// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fit provides weighted least-squares polynomial fitting.
package fit // import "github.com/acollier/go-sciutil/fit"

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PolyResult is the result of a weighted least-squares polynomial
// fit.
type PolyResult struct {
	// Coeffs are the best-fit coefficients, lowest order first, so
	// the model is Coeffs[0] + Coeffs[1]*x + Coeffs[2]*x^2 + ...
	Coeffs []float64

	// Uncerts are the one-sigma uncertainties on Coeffs, from the
	// diagonal of the coefficient covariance matrix.
	Uncerts []float64

	// ChiSq is the chi-squared of the best fit and RedChiSq is
	// ChiSq divided by the degrees of freedom, n-(order+1).
	ChiSq, RedChiSq float64
}

// Eval evaluates the fitted polynomial at x.
func (r PolyResult) Eval(x float64) float64 {
	return Eval(r.Coeffs, x)
}

// Eval evaluates the polynomial with the given coefficients (lowest
// order first) at x using Horner's scheme.
func Eval(coeffs []float64, x float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// Poly fits a polynomial of the given order to (xs, ys) points with
// one-sigma uncertainties yerrs, minimizing chi-squared. This is the
// standard generalized least squares solution
//
//	b = (A' C^-1 A)^-1 A' C^-1 y
//
// with A the Vandermonde design matrix and C = diag(yerr^2); see
// Hogg, Bovy & Lang (2010), "Data analysis recipes: Fitting a model
// to data", sections 1-2.
//
// All uncertainties must be positive, and there must be more points
// than coefficients so the reduced chi-squared is defined.
func Poly(xs, ys, yerrs []float64, order int) (PolyResult, error) {
	n := len(xs)
	if len(ys) != n || len(yerrs) != n {
		return PolyResult{}, errors.Errorf("fit: mismatched lengths %d, %d, %d", n, len(ys), len(yerrs))
	}
	if order < 0 {
		return PolyResult{}, errors.Errorf("fit: negative polynomial order %d", order)
	}
	terms := order + 1
	if n <= terms {
		return PolyResult{}, errors.Errorf("fit: %d points cannot constrain %d coefficients", n, terms)
	}
	for i, e := range yerrs {
		if !(e > 0) {
			return PolyResult{}, errors.Errorf("fit: uncertainty %v at index %d is not positive", e, i)
		}
	}

	// Whitened design matrix B = C^-1/2 A and data b = C^-1/2 y:
	// row i of the Vandermonde matrix scaled by 1/yerr[i]. Then
	// A' C^-1 A = B'B and A' C^-1 y = B'b.
	B := mat.NewDense(n, terms, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		w := 1 / yerrs[i]
		p := 1.0
		for j := 0; j < terms; j++ {
			B.Set(i, j, p*w)
			p *= xs[i]
		}
		b.SetVec(i, ys[i]*w)
	}

	var normal mat.Dense
	normal.Mul(B.T(), B)
	var rhs mat.VecDense
	rhs.MulVec(B.T(), b)

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(&normal, &rhs); err != nil {
		return PolyResult{}, errors.Wrap(err, "fit: singular normal matrix")
	}

	// Coefficient covariance is the inverse of the normal matrix.
	var cov mat.Dense
	if err := cov.Inverse(&normal); err != nil {
		return PolyResult{}, errors.Wrap(err, "fit: cannot invert normal matrix")
	}

	res := PolyResult{
		Coeffs:  make([]float64, terms),
		Uncerts: make([]float64, terms),
	}
	for j := 0; j < terms; j++ {
		res.Coeffs[j] = coeffs.AtVec(j)
		res.Uncerts[j] = math.Sqrt(cov.At(j, j))
	}

	var err error
	res.ChiSq, res.RedChiSq, err = PolyChiSq(res.Coeffs, xs, ys, yerrs)
	if err != nil {
		return PolyResult{}, err
	}
	return res, nil
}

// Line fits a straight line, returning coefficients ordered
// [intercept, slope].
func Line(xs, ys, yerrs []float64) (PolyResult, error) {
	return Poly(xs, ys, yerrs, 1)
}

// PolyChiSq returns the chi-squared and reduced chi-squared of the
// polynomial with the given coefficients (lowest order first) against
// (xs, ys) points with one-sigma uncertainties yerrs.
func PolyChiSq(coeffs, xs, ys, yerrs []float64) (chisq, redchisq float64, err error) {
	n := len(xs)
	if len(ys) != n || len(yerrs) != n {
		return 0, 0, errors.Errorf("fit: mismatched lengths %d, %d, %d", n, len(ys), len(yerrs))
	}
	if len(coeffs) == 0 {
		return 0, 0, errors.New("fit: no coefficients")
	}
	dof := n - len(coeffs)
	if dof <= 0 {
		return 0, 0, errors.Errorf("fit: %d points leave no degrees of freedom for %d coefficients", n, len(coeffs))
	}

	for i := range xs {
		if !(yerrs[i] > 0) {
			return 0, 0, errors.Errorf("fit: uncertainty %v at index %d is not positive", yerrs[i], i)
		}
		r := (ys[i] - Eval(coeffs, xs[i])) / yerrs[i]
		chisq += r * r
	}
	return chisq, chisq / float64(dof), nil
}
