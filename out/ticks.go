// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "math"

// NminorPerMajor is the number of minor divisions between major ticks
const NminorPerMajor = 5

// Ticks computes "nice" tick positions covering [lo, hi]
//  ndiv  -- approximate number of major divisions
//  major -- positions of major ticks; spacing is 1, 2 or 5 × 10ᵏ
//  minor -- positions of minor ticks; spacing is step / NminorPerMajor
//  Note: a zero-length range is widened by max(1, |lo|·1e-9) on each side,
//        thus the widening is never lost to rounding of large values
func Ticks(lo, hi float64, ndiv int) (major, minor []float64, step float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return
	}
	if ndiv < 1 {
		ndiv = 5
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi-lo == 0 {
		w := math.Max(1, math.Abs(lo)*1e-9)
		lo, hi = lo-w, hi+w
	}
	step = NiceStep((hi - lo) / float64(ndiv))
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, nil, 0
	}
	major = multiples(lo, hi, step)
	minor = multiples(lo, hi, step/NminorPerMajor)
	return
}

// NiceStep rounds up raw to 1, 2 or 5 × 10ᵏ
func NiceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	f := raw / mag
	switch {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// multiples returns all k·step within [lo, hi]
func multiples(lo, hi, step float64) (res []float64) {
	kmin := int(math.Ceil(lo/step - 1e-9))
	kmax := int(math.Floor(hi/step + 1e-9))
	for k := kmin; k <= kmax; k++ {
		res = append(res, float64(k)*step)
	}
	return
}
