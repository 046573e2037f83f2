// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/ali-c7/mohrscircle/ana"
	"github.com/cpmech/gosl/chk"
)

// Fields holds the raw text typed into the input fields
type Fields struct {
	Sx    string // horizontal stress
	Sz    string // vertical stress
	Txz   string // shear stress
	Theta string // inclination
}

// ParseFields converts the raw text of all input fields to a stress state.
// Empty fields are taken as zero. It stops at the first field that is not a
// real number.
func ParseFields(f Fields) (s *ana.StressState, err error) {
	s = new(ana.StressState)
	items := []struct {
		name string
		text string
		dest *float64
	}{
		{"horizontal stress", f.Sx, &s.Sx},
		{"vertical stress", f.Sz, &s.Sz},
		{"shear stress", f.Txz, &s.Txz},
		{"inclination", f.Theta, &s.ThetaDeg},
	}
	for _, it := range items {
		*it.dest, err = ParseValue(it.text)
		if err != nil {
			return nil, chk.Err("ParseFields: %s: %v", it.name, err)
		}
	}
	return
}

// ParseValue parses one field
func ParseValue(text string) (v float64, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	v, err = strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, chk.Err("%q is not a real number", text)
	}
	return
}

// Reset returns the state obtained after clearing all entries
func Reset() *ana.StressState {
	return new(ana.StressState)
}
