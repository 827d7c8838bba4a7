// Copyright 2024 The go-sciutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AngleUnit selects between degree and radian measure.
type AngleUnit int

//go:generate stringer -type=AngleUnit

const (
	Degrees AngleUnit = iota
	Radians
)

// turn returns one full rotation in the unit.
func (u AngleUnit) turn() float64 {
	switch u {
	default:
		panic("unknown angle unit")
	case Degrees:
		return 360
	case Radians:
		return 2 * math.Pi
	}
}

// Axis identifies a coordinate axis.
type Axis int

//go:generate stringer -type=Axis

const (
	XAxis Axis = iota
	YAxis
)

// Deg2Rad converts an angle in degrees to radians. If wrap is true
// the result is reduced to [0, 2pi).
func Deg2Rad(theta float64, wrap bool) float64 {
	rad := theta * math.Pi / 180
	if wrap {
		rad = math.Mod(rad, 2*math.Pi)
		if rad < 0 {
			rad += 2 * math.Pi
		}
	}
	return rad
}

// Rad2Deg converts an angle in radians to degrees. If wrap is true
// the result is reduced to [0, 360).
func Rad2Deg(theta float64, wrap bool) float64 {
	deg := theta * 180 / math.Pi
	if wrap {
		deg = math.Mod(deg, 360)
		if deg < 0 {
			deg += 360
		}
	}
	return deg
}

// LinspaceAngles returns num evenly spaced angles from start to stop,
// reduced to [0, turn). When start > stop the sequence wraps through
// zero: angles are cyclic, so the range (330, 30) in degrees is
// (0, 60) shifted by 330 and reduced mod 360. Like Linspace, num must
// be at least 2.
func LinspaceAngles(start, stop float64, num int, unit AngleUnit) []float64 {
	turn := unit.turn()

	var samples []float64
	if start <= stop {
		samples = floats.Span(make([]float64, num), start, stop)
	} else {
		samples = floats.Span(make([]float64, num), 0, turn+stop-start)
		floats.AddConst(start, samples)
	}
	for i, a := range samples {
		a = math.Mod(a, turn)
		if a < 0 {
			a += turn
		}
		samples[i] = a
	}
	return samples
}

// AngleToAxis returns the angle between the given axis and the line
// drawn from origin (ox, oy) to point (x, y), measured in unit. The
// result follows math.Atan2 conventions, in (-turn/2, turn/2].
func AngleToAxis(x, y, ox, oy float64, axis Axis, unit AngleUnit) float64 {
	dx, dy := x-ox, y-oy

	var rad float64
	switch axis {
	default:
		panic("unknown axis")
	case XAxis:
		rad = math.Atan2(dy, dx)
	case YAxis:
		// Swapping the arguments measures from the y axis.
		rad = math.Atan2(dx, dy)
	}

	if unit == Degrees {
		return Rad2Deg(rad, false)
	}
	return rad
}
