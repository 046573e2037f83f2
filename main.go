// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/ali-c7/mohrscircle/inp"
	"github.com/ali-c7/mohrscircle/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if chk.Verbose {
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// usage
	args := os.Args[1:]
	if len(args) < 1 {
		io.Pf("usage:\n")
		io.Pf("  mohrscircle file.mohr [verbose] [plt]\n")
		io.Pf("  mohrscircle sx sz txz theta [verbose] [png]\n")
		return
	}

	// stresses given directly
	//  Note: negative values would be taken as flags; thus, os.Args is used here
	if len(args) >= 4 {
		runFields(args)
		return
	}

	// read input parameters
	fnpath, _ := io.ArgToFilename(0, "", ".mohr", true)
	verbose := io.ArgToBool(1, true)
	withPlt := io.ArgToBool(2, false)
	runFile(fnpath, verbose, withPlt)
}

// runFields computes the circle for stresses given as arguments
func runFields(args []string) {

	// parse
	s, err := inp.ParseFields(inp.Fields{Sx: args[0], Sz: args[1], Txz: args[2], Theta: args[3]})
	if err != nil {
		chk.Panic("%v", err)
	}
	verbose, withPng := true, false
	if len(args) > 4 {
		verbose = io.Atob(args[4])
	}
	if len(args) > 5 {
		withPng = io.Atob(args[5])
	}

	// message
	if verbose {
		io.PfWhite("\nMohr's Circle -- 2D plane stress\n\n")
		io.Pforan("σx = %g  σz = %g  τxz = %g  θ = %g\n\n", s.Sx, s.Sz, s.Txz, s.ThetaDeg)
	}

	// results
	fig := out.NewFigure(*s, ana.NptsDefault, true)
	io.Pf("%s", out.Summary(fig.Res))

	// figure
	if withPng {
		var inpdat inp.Input
		inpdat.SetDefault()
		err = out.SavePNG(fig, &inpdat.Plot, inpdat.DirOut, "mohrscircle")
		if err != nil {
			chk.Panic("%v", err)
		}
	}
}

// runFile computes and draws all states in an input file
func runFile(fnpath string, verbose, withPlt bool) {

	// input data
	dat, err := inp.ReadInput(fnpath)
	if err != nil {
		chk.Panic("%v", err)
	}

	// message
	if verbose {
		io.PfWhite("\nMohr's Circle -- 2D plane stress\n\n")
		io.Pf("file   = %v\n", fnpath)
		io.Pf("desc   = %v\n", dat.Desc)
		io.Pf("dirout = %v\n", dat.DirOut)
		io.Pf("npts   = %v\n", dat.Npts)
	}

	// compute and draw each state
	for _, sd := range dat.States {
		fig := out.NewFigure(sd.StressState(), dat.Npts, dat.Plot.Pole)
		io.Pf("\n===================== %s =====================\n", sd.Name)
		if verbose {
			io.Pforan("σx = %g  σz = %g  τxz = %g  θ = %g\n", sd.Sx, sd.Sz, sd.Txz, sd.Theta)
		}
		io.Pf("%s", out.Summary(fig.Res))
		fnkey := io.Sf("%s_%s", dat.Key, sd.Name)
		err = out.SavePNG(fig, &dat.Plot, dat.DirOut, fnkey)
		if err != nil {
			chk.Panic("%v", err)
		}
		if withPlt || dat.Plot.Plt {
			out.Plot(fig, &dat.Plot, dat.DirOut, fnkey+"_plt")
		}
	}
}
