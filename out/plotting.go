// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/ali-c7/mohrscircle/inp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// axis labels
var (
	LblNormal = "Normal Stress ($\\sigma_{x}$)"
	LblShear  = "Shear Stress ($\\tau_{xz}$)"
	LblTitle  = "Mohr's Circle of Stresses"
)

// Plot draws figure with matplotlib and saves it to dirout/fnkey.png
//  Note: plt keeps a global buffer; do not call Plot concurrently
func Plot(fig *Figure, prm *inp.PlotData, dirout, fnkey string) {

	// clear buffer
	plt.Reset(false, nil)

	// circle
	plt.Plot(fig.X, fig.Y, &plt.A{C: ClrCircle, Ls: "-", Lw: 1.5})

	// lines
	for _, s := range fig.Segments {
		plt.Plot(s.X[:], s.Y[:], &plt.A{C: s.Clr, Ls: "-", Lw: s.Lw})
	}

	// points
	for _, m := range fig.Markers {
		a := &plt.A{C: m.Clr, M: "o", Ms: 6, Ls: "none"}
		if prm.Legend {
			a.L = m.Tex
		}
		plt.PlotOne(m.X, m.Y, a)
	}

	// axes
	xmin, xmax, ymin, ymax := fig.Bounds()
	plt.Equal()
	plt.AxisRange(xmin, xmax, ymin, ymax)
	plt.Title(LblTitle, nil)
	plt.Gll(LblNormal, LblShear, nil)
	plt.Save(dirout, fnkey)
	io.Pfgreen("file <%s/%s.png> written\n", dirout, fnkey)
}
