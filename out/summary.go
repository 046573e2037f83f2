// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/cpmech/gosl/io"
)

// Summary returns the properties of the circle and the results of the stress analysis
func Summary(res *ana.MohrResult) string {
	var b bytes.Buffer
	io.Ff(&b, "Properties of Mohr's Circle\n")
	io.Ff(&b, "  Radius: %.2f\n", res.R)
	io.Ff(&b, "  Centre: %.2f\n", res.C)
	io.Ff(&b, "Results of Stress Analysis\n")
	io.Ff(&b, "  Maximum Shear Stress: %.2f\n", res.TauMax())
	io.Ff(&b, "  Major Principle Stress: %.2f\n", res.S1)
	io.Ff(&b, "  Minor Principle Stress: %.2f\n", res.S2)
	io.Ff(&b, "  Transformed Lateral Stress: %.2f\n", res.SxP)
	io.Ff(&b, "  Transformed Longitudinal Stress: %.2f\n", res.SzP)
	io.Ff(&b, "  Transformed Shear Stress: %.2f\n", res.TauP)
	io.Ff(&b, "  Inclination of Major Principal Plane: %.2f\n", res.ThetaP)
	io.Ff(&b, "  Pole: (%.2f, %.2f)\n", res.PoleX, res.PoleY)
	return b.String()
}
