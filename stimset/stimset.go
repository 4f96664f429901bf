// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimset

import (
	"fmt"

	"github.com/emer/stims/stim"
	"github.com/goki/ki/kit"
)

// StimClass is the top-level division of the stimulus taxonomy.
type StimClass int

//go:generate stringer -type=StimClass

var KiT_StimClass = kit.Enums.AddEnum(StimClassN, kit.NotBitFlag, nil)

func (ev StimClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StimClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Gratings are full-field periodic patterns (sinusoidal, hyperbolic, polar)
	Gratings StimClass = iota

	// Contours are localized line-based shapes (bars, stars, angles, arcs)
	Contours

	StimClassN
)

// Stim is one named stimulus: a pattern generator plus its taxonomy
// labels.
type Stim struct {
	Nm       string       `desc:"unique name of this stimulus, encoding its parameters"`
	Class    StimClass    `desc:"top-level stimulus class"`
	Subclass string       `desc:"subclass grouping, e.g. sine, bar, angle"`
	Pat      stim.Pattern `desc:"the pattern generator"`
}

// Bank is an ordered collection of stimuli sharing one sheet
// coordinate system, rendered on demand into an etable.Table.
type Bank struct {
	Nm    string     `desc:"name of the bank"`
	Sheet *stim.Sheet `desc:"sheet coordinate system shared by all stimuli"`
	Stims []Stim     `desc:"the stimuli in presentation order"`
}

// NewBank returns a new empty bank rendering over the given sheet.
func NewBank(name string, sh *stim.Sheet) *Bank {
	return &Bank{Nm: name, Sheet: sh}
}

// Add appends stimuli to the bank.
func (bk *Bank) Add(stims ...Stim) {
	bk.Stims = append(bk.Stims, stims...)
}

// NStims returns the number of stimuli in the bank.
func (bk *Bank) NStims() int { return len(bk.Stims) }

// Subclasses returns the distinct subclass names in bank order.
func (bk *Bank) Subclasses() []string {
	var scs []string
	seen := map[string]bool{}
	for _, st := range bk.Stims {
		if !seen[st.Subclass] {
			seen[st.Subclass] = true
			scs = append(scs, st.Subclass)
		}
	}
	return scs
}

// SubclassStims returns the indexes of stimuli in the given subclass.
func (bk *Bank) SubclassStims(subclass string) []int {
	var idxs []int
	for i, st := range bk.Stims {
		if st.Subclass == subclass {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Validate checks that the bank is renderable: a valid sheet and
// unique stimulus names.
func (bk *Bank) Validate() error {
	if bk.Sheet == nil {
		return fmt.Errorf("stimset.Bank %s: no Sheet set", bk.Nm)
	}
	if err := bk.Sheet.Validate(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, st := range bk.Stims {
		if seen[st.Nm] {
			return fmt.Errorf("stimset.Bank %s: duplicate stimulus name: %s", bk.Nm, st.Nm)
		}
		seen[st.Nm] = true
		if st.Pat == nil {
			return fmt.Errorf("stimset.Bank %s: stimulus %s has no pattern", bk.Nm, st.Nm)
		}
	}
	return nil
}
