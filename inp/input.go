// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.mohr) JSON or YAML file
// and the parsing of the raw input fields
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// StateData holds one stress state as given in the input file
type StateData struct {
	Name  string  `json:"name" yaml:"name"`   // name of state; e.g. "footing"
	Sx    float64 `json:"sx" yaml:"sx"`       // horizontal stress
	Sz    float64 `json:"sz" yaml:"sz"`       // vertical stress
	Txz   float64 `json:"txz" yaml:"txz"`     // shear stress (clockwise positive)
	Theta float64 `json:"theta" yaml:"theta"` // inclination [degrees]
}

// PlotData holds options for figures
type PlotData struct {
	Width  int  `json:"width" yaml:"width"`   // width of png figure [pixels]
	Height int  `json:"height" yaml:"height"` // height of png figure [pixels]
	Grid   bool `json:"grid" yaml:"grid"`     // draw grid with major and minor ticks
	Legend bool `json:"legend" yaml:"legend"` // draw legend
	Pole   bool `json:"pole" yaml:"pole"`     // draw lines through the pole
	Plt    bool `json:"plt" yaml:"plt"`       // also generate figure with matplotlib
}

// Input holds all data read from a .mohr file
type Input struct {

	// global information
	Desc   string       `json:"desc" yaml:"desc"`     // description
	DirOut string       `json:"dirout" yaml:"dirout"` // directory for output; e.g. /tmp/mohrscircle
	Npts   int          `json:"npts" yaml:"npts"`     // number of points along circle
	States []*StateData `json:"states" yaml:"states"` // stress states
	Plot   PlotData     `json:"plot" yaml:"plot"`     // figure options

	// derived
	Key string `json:"-" yaml:"-"` // filename key; e.g. mysim01.mohr => mysim01
}

// ReadInput reads a .mohr file. Files with .yaml or .yml extensions are decoded
// as YAML; anything else is decoded as JSON
func ReadInput(fnpath string) (o *Input, err error) {

	// read file
	//  Note: gosl's io.ReadFile panics on failure; an error is returned instead
	b, err := os.ReadFile(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("ReadInput: cannot read input file %q:\n%v", fnpath, err)
	}

	// set default values
	o = new(Input)
	o.SetDefault()

	// decode
	ext := strings.ToLower(filepath.Ext(fnpath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadInput: cannot unmarshal input file %q:\n%v", fnpath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(fnpath))
	o.PostProcess()
	return
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.DirOut = "/tmp/mohrscircle"
	o.Npts = ana.NptsDefault
	o.Plot.Width = 800
	o.Plot.Height = 800
	o.Plot.Grid = true
	o.Plot.Legend = true
}

// PostProcess fixes values just read from file
func (o *Input) PostProcess() {
	o.DirOut = os.ExpandEnv(o.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/mohrscircle"
	}
	if o.Npts < 2 {
		o.Npts = ana.NptsDefault
	}
	if o.Plot.Width < 1 {
		o.Plot.Width = 800
	}
	if o.Plot.Height < 1 {
		o.Plot.Height = 800
	}
	for i, s := range o.States {
		if s.Name == "" {
			s.Name = io.Sf("state%d", i)
		}
	}
}

// GetInfo returns formatted information
func (o *Input) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// GetState returns the stress state structure by giving its name
//  Note: returns nil if not found
func (o Input) GetState(name string) *StateData {
	for _, s := range o.States {
		if name == s.Name {
			return s
		}
	}
	return nil
}

// StressState converts this data to the structure used by ana
func (o StateData) StressState() ana.StressState {
	return ana.StressState{Sx: o.Sx, Sz: o.Sz, Txz: o.Txz, ThetaDeg: o.Theta}
}
