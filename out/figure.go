// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the presentation of Mohr's circle: summary and figures
package out

import (
	"math"

	"github.com/ali-c7/mohrscircle/ana"
)

// colours shared by all renderers
var (
	ClrCircle  = "#000000" // circle outline and diameters
	ClrChord   = "#ff0000" // chord joining the input stress points
	ClrChordP  = "#00bfbf" // chord joining the transformed stress points
	ClrPole    = "#0000ff" // lines through the pole
	ClrSx      = "#00bfbf" // σx marker
	ClrSz      = "#000000" // σz marker
	ClrS1      = "#0000ff" // σ'1 marker
	ClrS2      = "#ff0000" // σ'2 marker
	ClrCentre  = "#bf00bf" // centre marker
	ClrSxTheta = "#1f77b4" // σ'xθ marker
	ClrSzTheta = "#ff7f0e" // σ'zθ marker
	ClrPoleMrk = "#0000ff" // pole marker
)

// Segment holds a straight line between two points
type Segment struct {
	Alias string     // e.g. "chord"
	X     [2]float64 // x-coordinates of end points
	Y     [2]float64 // y-coordinates of end points
	Clr   string     // colour
	Lw    float64    // line width
}

// Marker holds a named point on the circle
type Marker struct {
	Alias string  // plain text label; e.g. "sx"
	Tex   string  // TeX label; e.g. "$\\sigma_{x}$"
	X     float64 // normal stress
	Y     float64 // shear stress
	Clr   string  // colour
}

// Figure holds all entities to be drawn for one stress state
type Figure struct {
	State    ana.StressState // input
	Res      *ana.MohrResult // results
	X, Y     []float64       // circle outline
	Segments []*Segment      // lines
	Markers  []*Marker       // points
}

// NewFigure computes all results and entities to be drawn
//  npts     -- number of points along the circle
//  withPole -- add lines through the pole and the pole marker
func NewFigure(s ana.StressState, npts int, withPole bool) (o *Figure) {

	// results
	o = new(Figure)
	o.State = s
	o.Res = ana.Compute(s)
	r := o.Res
	o.X, o.Y = ana.CirclePoints(r.C, r.R, npts)

	// lines
	o.Segments = []*Segment{
		{"vertical diameter", [2]float64{r.C, r.C}, [2]float64{-r.R, r.R}, ClrCircle, 1},
		{"horizontal diameter", [2]float64{r.S2, r.S1}, [2]float64{0, 0}, ClrCircle, 1},
		{"stress chord", [2]float64{s.Sx, s.Sz}, [2]float64{-s.Txz, s.Txz}, ClrChord, 1.5},
		{"transformed chord", [2]float64{r.SxP, r.SzP}, [2]float64{-r.TauP, r.TauP}, ClrChordP, 1.5},
	}

	// points
	o.Markers = []*Marker{
		{"sx", "$\\sigma_{x}$", s.Sx, -s.Txz, ClrSx},
		{"sz", "$\\sigma_{z}$", s.Sz, s.Txz, ClrSz},
		{"s1", "$\\sigma^\\prime_{1}$", r.S1, 0, ClrS1},
		{"s2", "$\\sigma^\\prime_{2}$", r.S2, 0, ClrS2},
		{"centre", "Centre", r.C, 0, ClrCentre},
		{"sx'", "$\\sigma^\\prime_{x\\theta}$", r.SxP, -r.TauP, ClrSxTheta},
		{"sz'", "$\\sigma^\\prime_{z\\theta}$", r.SzP, r.TauP, ClrSzTheta},
	}

	// pole and lines from the pole to the stresses on the inclined planes
	if withPole {
		xmin, xmax, ymin, ymax := o.Bounds()
		θ := s.ThetaDeg * math.Pi / 180.0
		sxp, szp, taup := ana.TransformDir(s, math.Cos(θ), math.Sin(θ))
		o.Segments = append(o.Segments,
			&Segment{"pole vertical", [2]float64{r.PoleX, r.PoleX}, [2]float64{ymin, ymax}, ClrPole, 0.8},
			&Segment{"pole horizontal", [2]float64{xmin, xmax}, [2]float64{r.PoleY, r.PoleY}, ClrPole, 0.8},
			&Segment{"pole plane x", [2]float64{r.PoleX, sxp}, [2]float64{r.PoleY, -taup}, ClrSxTheta, 0.8},
			&Segment{"pole plane z", [2]float64{r.PoleX, szp}, [2]float64{r.PoleY, taup}, ClrSzTheta, 0.8},
		)
		o.Markers = append(o.Markers, &Marker{"pole", "Pole", r.PoleX, r.PoleY, ClrPoleMrk})
	}
	return
}

// Bounds returns the limits of the drawing area: the box around the circle
// with a padding of 10% of the radius (or 1 if the circle is a point)
func (o *Figure) Bounds() (xmin, xmax, ymin, ymax float64) {
	c, r := o.Res.C, o.Res.R
	pad := 0.1 * r
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		pad = 1
	}
	xmin, xmax = c-r-pad, c+r+pad
	ymin, ymax = -r-pad, r+pad
	return
}

// GetSegment returns the segment with given alias
//  Note: returns nil if not found
func (o *Figure) GetSegment(alias string) *Segment {
	for _, s := range o.Segments {
		if s.Alias == alias {
			return s
		}
	}
	return nil
}

// GetMarker returns the marker with given alias
//  Note: returns nil if not found
func (o *Figure) GetMarker(alias string) *Marker {
	for _, m := range o.Markers {
		if m.Alias == alias {
			return m
		}
	}
	return nil
}
