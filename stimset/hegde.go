// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimset

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/stims/stim"
)

// Standard parameter values for the Hegde & Van Essen subclass
// enumerations, in sheet coordinates on the default radius 0.5 sheet.
var (
	// StdOrients are the 4 standard orientations
	StdOrients = []float32{0, 0.25 * math32.Pi, 0.5 * math32.Pi, 0.75 * math32.Pi}

	// StdFreqs are the low and high spatial frequencies for gratings
	StdFreqs = []float32{2, 4}

	// StdThicks are the thin and thick bar thicknesses
	StdThicks = []float32{0.03, 0.08}
)

func orideg(ori float32) int {
	return int(ori*180/math32.Pi + 0.5)
}

// SineGratings enumerates the sinusoidal grating subclass:
// 4 orientations x 2 frequencies = 8 stimuli.
func SineGratings() []Stim {
	var stims []Stim
	for _, ori := range StdOrients {
		for _, fq := range StdFreqs {
			sg := &stim.SineGrating{}
			sg.Defaults()
			sg.Freq = fq
			sg.Orient = ori
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("sine_o%03d_f%g", orideg(ori), fq),
				Class:    Gratings,
				Subclass: "sine",
				Pat:      sg,
			})
		}
	}
	return stims
}

// HyperbolicGratings enumerates the hyperbolic grating subclass:
// 4 orientations x 2 frequencies = 8 stimuli.
func HyperbolicGratings() []Stim {
	var stims []Stim
	for _, ori := range StdOrients {
		for _, fq := range StdFreqs {
			hg := &stim.HyperbolicGrating{}
			hg.Defaults()
			hg.Freq = fq
			hg.Orient = ori
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("hyper_o%03d_f%g", orideg(ori), fq),
				Class:    Gratings,
				Subclass: "hyper",
				Pat:      hg,
			})
		}
	}
	return stims
}

// PolarGratings enumerates the polar grating subclass: concentric
// rings at 2 frequencies, radial fans at 2 spoke counts, and spirals
// at 2 frequencies x 2 winding directions = 8 stimuli.
func PolarGratings() []Stim {
	var stims []Stim
	for _, fq := range StdFreqs {
		cr := &stim.ConcentricRings{}
		cr.Defaults()
		cr.Freq = fq
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("conc_f%g", fq),
			Class:    Gratings,
			Subclass: "polar",
			Pat:      cr,
		})
	}
	for _, sp := range []float32{4, 8} {
		rd := &stim.RadialGrating{}
		rd.Defaults()
		rd.Spokes = sp
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("rad_s%g", sp),
			Class:    Gratings,
			Subclass: "polar",
			Pat:      rd,
		})
	}
	for _, fq := range StdFreqs {
		for _, dir := range []float32{1, -1} {
			sl := &stim.Spiral{}
			sl.Defaults()
			sl.Freq = fq
			sl.Dir = dir
			dnm := "ccw"
			if dir < 0 {
				dnm = "cw"
			}
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("spir_f%g_%s", fq, dnm),
				Class:    Gratings,
				Subclass: "polar",
				Pat:      sl,
			})
		}
	}
	return stims
}

// Bars enumerates the bar subclass: 4 orientations x 2 thicknesses
// = 8 stimuli.
func Bars() []Stim {
	var stims []Stim
	for _, ori := range StdOrients {
		for _, th := range StdThicks {
			ln := &stim.Line{}
			ln.Defaults()
			ln.Len = 0.6
			ln.Thick = th
			ln.Orient = ori
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("bar_o%03d_t%g", orideg(ori), th),
				Class:    Contours,
				Subclass: "bar",
				Pat:      ln,
			})
		}
	}
	return stims
}

// TriStars enumerates the tri-star subclass: 3-armed stars at 4
// rotations = 4 stimuli.
func TriStars() []Stim {
	var stims []Stim
	for i := 0; i < 4; i++ {
		ori := float32(i) * 0.5 * math32.Pi
		st := &stim.Star{}
		st.Defaults()
		st.N = 3
		st.Phase = 0.5 * math32.Pi // one arm up at zero rotation
		st.Orient = ori
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("tristar_o%03d", orideg(ori)),
			Class:    Contours,
			Subclass: "tristar",
			Pat:      st,
		})
	}
	return stims
}

// Stars enumerates the star subclass: 5- and 6-armed stars x 2 arm
// lengths = 4 stimuli.
func Stars() []Stim {
	var stims []Stim
	for _, n := range []int{5, 6} {
		for _, ln := range []float32{0.25, 0.35} {
			st := &stim.Star{}
			st.Defaults()
			st.N = n
			st.Len = ln
			st.Phase = 0.5 * math32.Pi
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("star_n%d_l%g", n, ln),
				Class:    Contours,
				Subclass: "star",
				Pat:      st,
			})
		}
	}
	return stims
}

// Crosses enumerates the cross subclass: upright and oblique crosses
// x 2 sizes = 4 stimuli.
func Crosses() []Stim {
	var stims []Stim
	for _, ori := range []float32{0, 0.25 * math32.Pi} {
		for _, wd := range []float32{0.4, 0.6} {
			cr := &stim.Cross{}
			cr.Defaults()
			cr.Width = wd
			cr.Orient = ori
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("cross_o%03d_w%g", orideg(ori), wd),
				Class:    Contours,
				Subclass: "cross",
				Pat:      cr,
			})
		}
	}
	return stims
}

// Angles enumerates the angle subclass: acute, right and obtuse
// angles x 4 orientations = 12 stimuli.
func Angles() []Stim {
	seps := []float32{0.25 * math32.Pi, 0.5 * math32.Pi, 0.75 * math32.Pi}
	snms := []string{"acute", "right", "obtuse"}
	var stims []Stim
	for si, sep := range seps {
		for _, ori := range StdOrients {
			an := &stim.Angle{}
			an.Defaults()
			an.Sep = sep
			an.Orient = ori
			stims = append(stims, Stim{
				Nm:       fmt.Sprintf("angle_%s_o%03d", snms[si], orideg(ori)),
				Class:    Contours,
				Subclass: "angle",
				Pat:      an,
			})
		}
	}
	return stims
}

// Arcs enumerates the arc subclass: quarter arcs at 4 orientations,
// semicircles at 2 orientations, and full circles at 2 sizes
// = 8 stimuli.
func Arcs() []Stim {
	var stims []Stim
	for _, ori := range StdOrients {
		ac := &stim.Arc{}
		ac.Defaults()
		ac.Len = 0.5 * math32.Pi
		ac.Orient = ori
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("arc_quarter_o%03d", orideg(ori)),
			Class:    Contours,
			Subclass: "arc",
			Pat:      ac,
		})
	}
	for _, ori := range []float32{0, math32.Pi} {
		ac := &stim.Arc{}
		ac.Defaults()
		ac.Len = math32.Pi
		ac.Orient = ori
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("arc_semi_o%03d", orideg(ori)),
			Class:    Contours,
			Subclass: "arc",
			Pat:      ac,
		})
	}
	for _, sz := range []float32{0.3, 0.5} {
		ac := &stim.Arc{}
		ac.Defaults()
		ac.Len = 2 * math32.Pi
		ac.Size = sz
		stims = append(stims, Stim{
			Nm:       fmt.Sprintf("circle_d%g", sz),
			Class:    Contours,
			Subclass: "arc",
			Pat:      ac,
		})
	}
	return stims
}

// StdBank returns the full standard bank with all subclasses in
// taxonomy order: 64 stimuli total.
func StdBank(sh *stim.Sheet) *Bank {
	bk := NewBank("HegdeVanEssen", sh)
	bk.Add(SineGratings()...)
	bk.Add(HyperbolicGratings()...)
	bk.Add(PolarGratings()...)
	bk.Add(Bars()...)
	bk.Add(TriStars()...)
	bk.Add(Stars()...)
	bk.Add(Crosses()...)
	bk.Add(Angles()...)
	bk.Add(Arcs()...)
	return bk
}
