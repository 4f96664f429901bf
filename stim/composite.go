// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/goki/ki/kit"
)

// PatternOps are the operators for combining sub-pattern values in a
// Composite.
type PatternOp int

//go:generate stringer -type=PatternOp

var KiT_PatternOp = kit.Enums.AddEnum(PatternOpN, kit.NotBitFlag, nil)

func (ev PatternOp) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PatternOp) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Add sums the sub-pattern values
	Add PatternOp = iota

	// Sub subtracts each subsequent sub-pattern value from the first
	Sub

	// Mul multiplies the sub-pattern values
	Mul

	// Max takes the maximum sub-pattern value -- the usual choice for
	// overlaying multiple contour elements
	Max

	// Min takes the minimum sub-pattern value
	Min

	// Mean averages the sub-pattern values
	Mean

	PatternOpN
)

// Composite combines any number of sub-patterns with the given
// operator.  Each sub-pattern applies its own geometry (offset,
// orientation, scaling) within the composite's own pattern frame, so
// composites nest and rotate as a unit.
type Composite struct {
	Geom `view:"inline"`
	Op   PatternOp `def:"Max" desc:"operator for combining the sub-pattern values"`
	Pats []Pattern `desc:"the sub-patterns to combine"`
}

func (cp *Composite) Defaults() {
	cp.Geom.Defaults()
	cp.Op = Max
	for _, p := range cp.Pats {
		p.Defaults()
	}
}

// Add appends sub-patterns to the composite.
func (cp *Composite) Add(pats ...Pattern) {
	cp.Pats = append(cp.Pats, pats...)
}

func (cp *Composite) Eval(x, y float32) float32 {
	if len(cp.Pats) == 0 {
		return 0
	}
	v := EvalAt(cp.Pats[0], x, y)
	for _, p := range cp.Pats[1:] {
		pv := EvalAt(p, x, y)
		switch cp.Op {
		case Add, Mean:
			v += pv
		case Sub:
			v -= pv
		case Mul:
			v *= pv
		case Max:
			if pv > v {
				v = pv
			}
		case Min:
			if pv < v {
				v = pv
			}
		}
	}
	if cp.Op == Mean {
		v /= float32(len(cp.Pats))
	}
	return v
}
