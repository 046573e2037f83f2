// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Traction computes the traction vector t = σ·n on the plane with unit normal n
func Traction(s StressState, n [2]float64) (t [2]float64) {
	t[0] = s.Sx*n[0] + s.Txz*n[1]
	t[1] = s.Txz*n[0] + s.Sz*n[1]
	return
}

// TransformDir computes the stresses on the planes whose normals are
// n = (nx, nz)/|n| (x'-face) and m = (-nz, nx)/|n| (z'-face)
//   σ'x = n·σ·n   σ'z = m·σ·m   τ' = m·σ·n
//  Note: a zero direction gives NaN values
func TransformDir(s StressState, nx, nz float64) (sxp, szp, taup float64) {
	l := math.Hypot(nx, nz)
	n := [2]float64{nx / l, nz / l}
	m := [2]float64{-n[1], n[0]}
	tn := Traction(s, n)
	tm := Traction(s, m)
	sxp = n[0]*tn[0] + n[1]*tn[1]
	szp = m[0]*tm[0] + m[1]*tm[1]
	taup = m[0]*tn[0] + m[1]*tn[1]
	return
}
