// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"flag"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/ali-c7/mohrscircle/inp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// input data
	fnpath := "lecture.mohr"
	stname := "textbook"
	npts := 37
	doplot := false

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		fnpath = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		stname = flag.Arg(1)
	}
	if len(flag.Args()) > 2 {
		npts = io.Atoi(flag.Arg(2))
	}
	if len(flag.Args()) > 3 {
		doplot = io.Atob(flag.Arg(3))
	}

	// check extension
	if io.FnExt(fnpath) == "" {
		fnpath += ".mohr"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  fnpath = %30s // input filename\n", fnpath)
	io.Pf("  stname = %30s // state name\n", stname)
	io.Pf("  npts   = %30v // number of angles\n", npts)
	io.Pf("  doplot = %30v // plot with matplotlib\n", doplot)
	io.Pf("\n")

	// load input
	dat, err := inp.ReadInput(fnpath)
	if err != nil {
		io.PfRed("cannot load input:\n%v\n", err)
		return
	}
	sd := dat.GetState(stname)
	if sd == nil {
		io.PfRed("cannot find state named %q\n", stname)
		return
	}
	s := sd.StressState()
	res := ana.Compute(s)

	// sweep θ over one period
	Θ := utl.LinSpace(-90, 90, npts)
	Sx := make([]float64, npts)
	Sz := make([]float64, npts)
	Tau := make([]float64, npts)
	io.Pf("%10s%14s%14s%14s%14s\n", "θ", "σ'x", "σ'z", "τ'", "σ'x+σ'z")
	for i, θ := range Θ {
		s.ThetaDeg = θ
		Sx[i], Sz[i], Tau[i] = ana.Transform(s)
		io.Pf("%10.2f%14.4f%14.4f%14.4f%14.4f\n", θ, Sx[i], Sz[i], Tau[i], Sx[i]+Sz[i])
	}
	io.Pforan("\nσ1 = %g  σ2 = %g  θp = %g\n", res.S1, res.S2, res.ThetaP)

	// plot
	if doplot {
		plt.Reset(false, nil)
		plt.Plot(Θ, Sx, &plt.A{C: "r", L: "$\\sigma^\\prime_{x}$"})
		plt.Plot(Θ, Sz, &plt.A{C: "g", L: "$\\sigma^\\prime_{z}$"})
		plt.Plot(Θ, Tau, &plt.A{C: "b", L: "$\\tau^\\prime$"})
		plt.Gll("$\\theta$ [deg]", "stresses", nil)
		plt.Save(dat.DirOut, io.Sf("sweep_%s_%s", dat.Key, sd.Name))
	}
}
