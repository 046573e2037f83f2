// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the closed-form Mohr's circle of 2D plane stress
package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// NptsDefault is the default number of points to trace the circle
const NptsDefault = 101

// StressState holds the stresses acting on the x and z faces of a 2D element
//
//        z ^     σz
//          |     ↓
//          |  -------
//          |  |     | τxz
//          |  |     | ← σx
//          |  -------
//          +-------------> x
//
//  Note: compression (-), tension (+) and clockwise shear (+)
type StressState struct {
	Sx       float64 // normal stress on the x-face
	Sz       float64 // normal stress on the z-face
	Txz      float64 // shear stress on the x-z faces
	ThetaDeg float64 // inclination of the plane of interest [degrees]
}

// MohrResult holds all quantities derived from a StressState
type MohrResult struct {

	// circle
	C float64 // centre
	R float64 // radius == maximum shear stress

	// principal stresses
	S1 float64 // major principal stress
	S2 float64 // minor principal stress

	// transformed stresses @ θ
	SxP  float64 // σ'x
	SzP  float64 // σ'z
	TauP float64 // τ'xz

	// auxiliary
	ThetaP float64 // inclination of the major principal plane [degrees]
	PoleX  float64 // pole (origin of planes): x-coordinate
	PoleY  float64 // pole (origin of planes): y-coordinate
}

// ComputeCircle computes the centre and radius of Mohr's circle
func ComputeCircle(s StressState) (c, r float64) {
	c = (s.Sx + s.Sz) / 2.0
	d := (s.Sx - s.Sz) / 2.0
	r = math.Sqrt(d*d + s.Txz*s.Txz)
	return
}

// PrincipalStresses returns the major and minor principal stresses
func PrincipalStresses(c, r float64) (s1, s2 float64) {
	return c + r, c - r
}

// Transform computes the stresses on the planes rotated by s.ThetaDeg
func Transform(s StressState) (sxp, szp, taup float64) {
	c := (s.Sx + s.Sz) / 2.0
	d := (s.Sx - s.Sz) / 2.0
	α := 2.0 * s.ThetaDeg * math.Pi / 180.0
	co, si := math.Cos(α), math.Sin(α)
	sxp = c + d*co + s.Txz*si
	szp = c - d*co - s.Txz*si
	taup = -d*si + s.Txz*co
	return
}

// PrincipalAngle returns the inclination [degrees] of the plane where σ'x = σ1 and τ' = 0
func PrincipalAngle(s StressState) float64 {
	return 0.5 * math.Atan2(2.0*s.Txz, s.Sx-s.Sz) * 180.0 / math.Pi
}

// Pole returns the origin of planes
func Pole(s StressState) (x, y float64) {
	return s.Sx, s.Txz
}

// CirclePoints traces the circle with npts points with t ∈ [0, 2π]
func CirclePoints(c, r float64, npts int) (X, Y []float64) {
	if npts < 1 {
		return []float64{}, []float64{}
	}
	var T []float64
	if npts == 1 {
		T = []float64{0}
	} else {
		T = utl.LinSpace(0, 2.0*math.Pi, npts)
	}
	X = make([]float64, npts)
	Y = make([]float64, npts)
	for i, t := range T {
		X[i] = r*math.Cos(t) + c
		Y[i] = r * math.Sin(t)
	}
	return
}

// Compute computes all quantities
func Compute(s StressState) (o *MohrResult) {
	o = new(MohrResult)
	o.C, o.R = ComputeCircle(s)
	o.S1, o.S2 = PrincipalStresses(o.C, o.R)
	o.SxP, o.SzP, o.TauP = Transform(s)
	o.ThetaP = PrincipalAngle(s)
	o.PoleX, o.PoleY = Pole(s)
	return
}

// TauMax returns the maximum in-plane shear stress
func (o MohrResult) TauMax() float64 {
	return o.R
}
