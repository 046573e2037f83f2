// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/ali-c7/mohrscircle/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ticks01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ticks01")

	major, minor, step := Ticks(-50, 110, 8)
	io.Pforan("major = %v\n", major)
	chk.Float64(tst, "step", 1e-15, step, 20)
	chk.Array(tst, "major", 1e-13, major, []float64{-40, -20, 0, 20, 40, 60, 80, 100})
	chk.Int(tst, "nminor", len(minor), 40)
	chk.Float64(tst, "minor[0]", 1e-13, minor[0], -48)
	chk.Float64(tst, "minor[n-1]", 1e-13, minor[len(minor)-1], 108)

	// reversed and degenerate ranges
	major, _, step = Ticks(3, -3, 3)
	chk.Float64(tst, "step", 1e-15, step, 2)
	chk.Array(tst, "major", 1e-15, major, []float64{-2, 0, 2})
	major, _, step = Ticks(7, 7, 4)
	chk.Float64(tst, "step", 1e-15, step, 0.5)
	chk.Float64(tst, "major[0]", 1e-15, major[0], 6)
	chk.Float64(tst, "major[n-1]", 1e-15, major[len(major)-1], 8)

	// degenerate range with large value
	major, minor, step = Ticks(1e20, 1e20, 8)
	io.Pforan("major = %v  step = %v\n", major, step)
	chk.Float64(tst, "step", 1, step, 5e10)
	chk.Int(tst, "nmajor", len(major), 5)
	chk.Int(tst, "nminor", len(minor), 21)
	if major[0] >= 1e20 || major[len(major)-1] <= 1e20 {
		tst.Errorf("major ticks should surround the value: %v\n", major)
		return
	}

	// non-finite
	major, minor, _ = Ticks(0, math.Inf(1), 5)
	chk.Int(tst, "nmajor", len(major), 0)
	chk.Int(tst, "nminor", len(minor), 0)
	major, minor, step = Ticks(-1e308, 1e308, 8)
	chk.Int(tst, "nmajor (overflow)", len(major), 0)
	chk.Int(tst, "nminor (overflow)", len(minor), 0)
	chk.Float64(tst, "step (overflow)", 1e-15, step, 0)

	// nice steps
	chk.Float64(tst, "0.013", 1e-17, NiceStep(0.013), 0.02)
	chk.Float64(tst, "3.3", 1e-15, NiceStep(3.3), 5)
	chk.Float64(tst, "7", 1e-15, NiceStep(7), 10)
	chk.Float64(tst, "100", 1e-15, NiceStep(100), 100)
}

func Test_figure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("figure01")

	s := ana.StressState{Sx: 100, Sz: -40, Txz: 30, ThetaDeg: 45}
	fig := NewFigure(s, ana.NptsDefault, false)
	chk.Int(tst, "npts", len(fig.X), 101)
	chk.Int(tst, "nsegments", len(fig.Segments), 4)
	chk.Int(tst, "nmarkers", len(fig.Markers), 7)

	c, r := fig.Res.C, fig.Res.R
	d := fig.GetSegment("vertical diameter")
	chk.Array(tst, "vdiam x", 1e-15, d.X[:], []float64{c, c})
	chk.Array(tst, "vdiam y", 1e-15, d.Y[:], []float64{-r, r})
	d = fig.GetSegment("horizontal diameter")
	chk.Array(tst, "hdiam x", 1e-15, d.X[:], []float64{c - r, c + r})
	d = fig.GetSegment("stress chord")
	chk.Array(tst, "chord x", 1e-15, d.X[:], []float64{100, -40})
	chk.Array(tst, "chord y", 1e-15, d.Y[:], []float64{-30, 30})
	d = fig.GetSegment("transformed chord")
	chk.Array(tst, "chord' x", 1e-13, d.X[:], []float64{60, 0})
	chk.Array(tst, "chord' y", 1e-13, d.Y[:], []float64{70, -70})
	if fig.GetSegment("pole vertical") != nil || fig.GetMarker("pole") != nil {
		tst.Errorf("pole should not be drawn\n")
		return
	}

	// every chord passes through the centre
	for _, key := range []string{"stress chord", "transformed chord"} {
		d = fig.GetSegment(key)
		chk.Float64(tst, key+": mid x", 1e-13, (d.X[0]+d.X[1])/2, c)
		chk.Float64(tst, key+": mid y", 1e-13, (d.Y[0]+d.Y[1])/2, 0)
	}

	m := fig.GetMarker("centre")
	chk.Array(tst, "centre", 1e-15, []float64{m.X, m.Y}, []float64{30, 0})
	m = fig.GetMarker("sz'")
	chk.Array(tst, "sz'", 1e-13, []float64{m.X, m.Y}, []float64{0, -70})

	xmin, xmax, ymin, ymax := fig.Bounds()
	chk.Array(tst, "bounds", 1e-13, []float64{xmin, xmax, ymin, ymax}, []float64{c - 1.1*r, c + 1.1*r, -1.1 * r, 1.1 * r})
}

func Test_figure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("figure02. pole and degenerate circle")

	fig := NewFigure(ana.StressState{Sx: 100, Sz: -40, Txz: 30}, 21, true)
	chk.Int(tst, "nsegments", len(fig.Segments), 8)
	p := fig.GetMarker("pole")
	chk.Array(tst, "pole", 1e-15, []float64{p.X, p.Y}, []float64{100, 30})
	xmin, xmax, _, _ := fig.Bounds()
	d := fig.GetSegment("pole horizontal")
	chk.Array(tst, "pole horizontal x", 1e-15, d.X[:], []float64{xmin, xmax})

	// lines from the pole are parallel to the inclined planes' normals
	for _, θdeg := range []float64{0, 30, 45, 120, -75} {
		s := ana.StressState{Sx: 100, Sz: -40, Txz: 30, ThetaDeg: θdeg}
		fig = NewFigure(s, 21, true)
		θ := θdeg * math.Pi / 180.0
		n := []float64{math.Cos(θ), math.Sin(θ)}
		m := []float64{-math.Sin(θ), math.Cos(θ)}
		dz := fig.GetSegment("pole plane z")
		dx := fig.GetSegment("pole plane x")
		chk.Array(tst, "pole plane z: end", 1e-12, []float64{dz.X[1], dz.Y[1]}, []float64{fig.Res.SzP, fig.Res.TauP})
		chk.Array(tst, "pole plane x: end", 1e-12, []float64{dx.X[1], dx.Y[1]}, []float64{fig.Res.SxP, -fig.Res.TauP})
		crossz := (dz.X[1]-dz.X[0])*n[1] - (dz.Y[1]-dz.Y[0])*n[0]
		crossx := (dx.X[1]-dx.X[0])*m[1] - (dx.Y[1]-dx.Y[0])*m[0]
		io.Pforan("θ = %4g  cross(z) = %v  cross(x) = %v\n", θdeg, crossz, crossx)
		chk.Float64(tst, "cross(z)", 1e-10, crossz, 0)
		chk.Float64(tst, "cross(x)", 1e-10, crossx, 0)
	}

	fig = NewFigure(ana.StressState{}, 11, false)
	xmin, xmax, ymin, ymax := fig.Bounds()
	chk.Array(tst, "bounds", 1e-15, []float64{xmin, xmax, ymin, ymax}, []float64{-1, 1, -1, 1})
}

func Test_summary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary01")

	res := ana.Compute(ana.StressState{Sx: 100, Sz: -40, Txz: 30})
	txt := Summary(res)
	io.Pf("%s", txt)
	for _, line := range []string{
		"Radius: 76.16",
		"Centre: 30.00",
		"Maximum Shear Stress: 76.16",
		"Major Principle Stress: 106.16",
		"Minor Principle Stress: -46.16",
		"Transformed Lateral Stress: 100.00",
		"Transformed Longitudinal Stress: -40.00",
		"Transformed Shear Stress: 30.00",
		"Pole: (100.00, 30.00)",
	} {
		if !strings.Contains(txt, line) {
			tst.Errorf("summary is missing %q\n", line)
			return
		}
	}
}

func Test_render01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("render01")

	prm := &inp.PlotData{Width: 400, Height: 300, Grid: true}
	fig := NewFigure(ana.StressState{Sx: 100, Sz: -40, Txz: 30}, ana.NptsDefault, true)
	dc := RenderPNG(fig, prm)
	chk.Int(tst, "width", dc.Width(), 400)
	chk.Int(tst, "height", dc.Height(), 300)

	// background
	img := dc.Image()
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		tst.Errorf("corner should be white: %d %d %d\n", r>>8, g>>8, b>>8)
		return
	}

	// centre marker
	cv := NewCanvas(fig, 400, 300)
	px, py := cv.Px(fig.Res.C, 0)
	r, g, b, _ = img.At(int(px), int(py)).RGBA()
	io.Pforan("centre @ (%g,%g) => %d %d %d\n", px, py, r>>8, g>>8, b>>8)
	if r>>8 < 150 || g>>8 > 60 || b>>8 < 150 {
		tst.Errorf("centre marker should be magenta: %d %d %d\n", r>>8, g>>8, b>>8)
		return
	}

	// equal aspect ratio
	xa, _ := cv.Px(0, 0)
	xb, _ := cv.Px(10, 0)
	_, ya := cv.Px(0, 0)
	_, yb := cv.Px(0, 10)
	chk.Float64(tst, "aspect", 1e-10, xb-xa, ya-yb)
}

func Test_render02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("render02. save png")

	dirout := filepath.Join(tst.TempDir(), "figs")
	prm := &inp.PlotData{Width: 200, Height: 200, Legend: true}
	fig := NewFigure(ana.StressState{Sx: -80, Sz: -250, Txz: -45, ThetaDeg: 30}, 51, false)
	err := SavePNG(fig, prm, dirout, "soil")
	if err != nil {
		tst.Errorf("SavePNG failed:\n%v", err)
		return
	}
	info, err := os.Stat(filepath.Join(dirout, "soil.png"))
	if err != nil {
		tst.Errorf("cannot find figure:\n%v", err)
		return
	}
	if info.Size() == 0 {
		tst.Errorf("figure file is empty\n")
	}

	if chk.Verbose {
		Plot(fig, prm, "/tmp/mohrscircle", "out_render02")
	}
}
