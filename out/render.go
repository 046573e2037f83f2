// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/ali-c7/mohrscircle/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fogleman/gg"
)

// Canvas maps stress coordinates onto pixels keeping the aspect ratio equal to one
type Canvas struct {
	Dc     *gg.Context // drawing context
	Margin float64     // margin around drawing area [pixels]
	Xmin   float64     // left limit
	Ymax   float64     // top limit
	Scale  float64     // pixels per stress unit
	Ox, Oy float64     // pixel coordinates of (Xmin, Ymax)
}

// NewCanvas allocates a new context for the drawing area given by the figure bounds
func NewCanvas(fig *Figure, width, height int) (o *Canvas) {
	o = new(Canvas)
	o.Dc = gg.NewContext(width, height)
	o.Margin = 40
	xmin, xmax, ymin, ymax := fig.Bounds()
	w := float64(width) - 2*o.Margin
	h := float64(height) - 2*o.Margin
	o.Scale = math.Min(w/(xmax-xmin), h/(ymax-ymin))
	o.Xmin, o.Ymax = xmin, ymax
	o.Ox = o.Margin + (w-(xmax-xmin)*o.Scale)/2
	o.Oy = o.Margin + (h-(ymax-ymin)*o.Scale)/2
	return
}

// Px returns the pixel coordinates of (x, y)
func (o *Canvas) Px(x, y float64) (px, py float64) {
	return o.Ox + (x-o.Xmin)*o.Scale, o.Oy + (o.Ymax-y)*o.Scale
}

// Line draws a straight line
func (o *Canvas) Line(x0, y0, x1, y1 float64, clr string, lw float64) {
	a, b := o.Px(x0, y0)
	c, d := o.Px(x1, y1)
	o.Dc.SetHexColor(clr)
	o.Dc.SetLineWidth(lw)
	o.Dc.DrawLine(a, b, c, d)
	o.Dc.Stroke()
}

// RenderPNG draws the figure onto a raster image
func RenderPNG(fig *Figure, prm *inp.PlotData) *gg.Context {

	// background
	cv := NewCanvas(fig, prm.Width, prm.Height)
	dc := cv.Dc
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// grid
	xmin, xmax, ymin, ymax := fig.Bounds()
	if prm.Grid {
		drawGrid(cv, xmin, xmax, ymin, ymax)
	}

	// circle
	if len(fig.X) > 1 {
		dc.SetHexColor(ClrCircle)
		dc.SetLineWidth(1.5)
		for i := range fig.X {
			px, py := cv.Px(fig.X[i], fig.Y[i])
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}

	// lines
	for _, s := range fig.Segments {
		cv.Line(s.X[0], s.Y[0], s.X[1], s.Y[1], s.Clr, s.Lw*1.5)
	}

	// points
	for _, m := range fig.Markers {
		px, py := cv.Px(m.X, m.Y)
		dc.SetHexColor(m.Clr)
		dc.DrawCircle(px, py, 5)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(m.Alias, px+8, py-8, 0, 0)
	}

	// legend
	if prm.Legend {
		drawLegend(cv, fig.Markers)
	}

	// labels
	dc.SetRGB(0, 0, 0)
	w, h := float64(prm.Width), float64(prm.Height)
	dc.DrawStringAnchored("Mohr's Circle of Stresses", w/2, cv.Margin/2, 0.5, 0.5)
	dc.DrawStringAnchored("normal stress", w/2, h-cv.Margin/4, 0.5, 0)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), cv.Margin/4, h/2)
	dc.DrawStringAnchored("shear stress", cv.Margin/4, h/2, 0.5, 1)
	dc.Pop()
	return dc
}

// SavePNG renders the figure and saves it to dirout/fnkey.png
func SavePNG(fig *Figure, prm *inp.PlotData, dirout, fnkey string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("SavePNG: cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".png")
	dc := RenderPNG(fig, prm)
	err = dc.SavePNG(fn)
	if err != nil {
		return chk.Err("SavePNG: cannot save figure %q:\n%v", fn, err)
	}
	io.Pfgreen("file <%s> written\n", fn)
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func drawGrid(cv *Canvas, xmin, xmax, ymin, ymax float64) {
	dc := cv.Dc
	xmaj, xmnr, _ := Ticks(xmin, xmax, 8)
	ymaj, ymnr, _ := Ticks(ymin, ymax, 8)
	draw := func(X, Y []float64, clr string, lw float64) {
		for _, x := range X {
			cv.Line(x, ymin, x, ymax, clr, lw)
		}
		for _, y := range Y {
			cv.Line(xmin, y, xmax, y, clr, lw)
		}
	}
	draw(xmnr, ymnr, "#e8e8e8", 0.5)
	draw(xmaj, ymaj, "#c0c0c0", 1)

	// tick labels
	dc.SetHexColor("#404040")
	for _, x := range xmaj {
		px, py := cv.Px(x, ymin)
		dc.DrawStringAnchored(io.Sf("%g", x), px, py+4, 0.5, 1)
	}
	for _, y := range ymaj {
		px, py := cv.Px(xmin, y)
		dc.DrawStringAnchored(io.Sf("%g", y), px-4, py, 1, 0.5)
	}
}

func drawLegend(cv *Canvas, markers []*Marker) {
	dc := cv.Dc
	x, y := cv.Margin+10, cv.Margin+10
	for _, m := range markers {
		dc.SetHexColor(m.Clr)
		dc.DrawCircle(x, y, 4)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(m.Alias, x+10, y, 0, 0.5)
		y += 16
	}
}
