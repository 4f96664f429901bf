// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/chewxy/math32"
)

//////////////////////////////////////////////////////////////////////////////////////
//  Cartesian gratings

// SineGrating is a sinusoidal grating with luminance varying along the
// pattern y axis, so stripes run horizontally at Orient = 0.
type SineGrating struct {
	Geom  `view:"inline"`
	Freq  float32 `def:"2" min:"0" desc:"spatial frequency in cycles per unit of sheet coordinates"`
	Phase float32 `desc:"phase of the sinusoid at the pattern origin, in radians"`
}

func (sg *SineGrating) Defaults() {
	sg.Geom.Defaults()
	sg.Freq = 2
	sg.Phase = 0
}

func (sg *SineGrating) Eval(x, y float32) float32 {
	return 0.5 + 0.5*math32.Sin(2*math32.Pi*sg.Freq*y+sg.Phase)
}

// Gabor is a sinusoidal grating windowed by an oriented gaussian
// envelope -- the standard localized grating stimulus.
type Gabor struct {
	Geom   `view:"inline"`
	Freq   float32 `def:"2" min:"0" desc:"spatial frequency in cycles per unit of sheet coordinates"`
	Phase  float32 `desc:"phase of the sinusoid at the pattern origin, in radians"`
	XSigma float32 `def:"0.2" min:"0" desc:"gaussian envelope width along the stripes"`
	YSigma float32 `def:"0.1" min:"0" desc:"gaussian envelope width across the stripes"`
}

func (gb *Gabor) Defaults() {
	gb.Geom.Defaults()
	gb.Freq = 2
	gb.Phase = 0
	gb.XSigma = 0.2
	gb.YSigma = 0.1
}

func (gb *Gabor) Eval(x, y float32) float32 {
	if gb.XSigma <= 0 || gb.YSigma <= 0 {
		return 0
	}
	xn := x / gb.XSigma
	yn := y / gb.YSigma
	env := math32.Exp(-0.5 * (xn*xn + yn*yn))
	return env * (0.5 + 0.5*math32.Cos(2*math32.Pi*gb.Freq*y+gb.Phase))
}

// HyperbolicGrating has luminance varying with distance along the
// rectangular hyperbolas xy = const, giving a saddle-shaped grating
// with bands concentrated around the two pattern axes.
type HyperbolicGrating struct {
	Geom  `view:"inline"`
	Freq  float32 `def:"2" min:"0" desc:"spatial frequency in cycles per unit of hyperbolic distance sqrt(|x^2 - y^2|)"`
	Phase float32 `desc:"phase at the pattern origin, in radians"`
}

func (hg *HyperbolicGrating) Defaults() {
	hg.Geom.Defaults()
	hg.Freq = 2
	hg.Phase = 0
}

func (hg *HyperbolicGrating) Eval(x, y float32) float32 {
	d := math32.Sqrt(math32.Abs(x*x - y*y))
	return 0.5 + 0.5*math32.Cos(2*math32.Pi*hg.Freq*d+hg.Phase)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Polar gratings

// ConcentricRings is a polar grating with luminance varying with
// radial distance from the pattern origin, giving concentric circular
// bands (a bullseye).
type ConcentricRings struct {
	Geom  `view:"inline"`
	Freq  float32 `def:"4" min:"0" desc:"spatial frequency in cycles per unit of radial distance"`
	Phase float32 `desc:"phase at the pattern origin, in radians"`
}

func (cr *ConcentricRings) Defaults() {
	cr.Geom.Defaults()
	cr.Freq = 4
	cr.Phase = 0
}

func (cr *ConcentricRings) Eval(x, y float32) float32 {
	return 0.5 + 0.5*math32.Cos(2*math32.Pi*cr.Freq*math32.Hypot(x, y)+cr.Phase)
}

// RadialGrating is a polar grating with luminance varying with angle
// around the pattern origin, giving a fan of radial spokes.  Spokes
// counts the light (and dark) sectors around the full circle.
type RadialGrating struct {
	Geom   `view:"inline"`
	Spokes float32 `def:"4" min:"0" desc:"number of light sectors around the full circle"`
	Phase  float32 `desc:"angular phase offset in radians"`
}

func (rd *RadialGrating) Defaults() {
	rd.Geom.Defaults()
	rd.Spokes = 4
	rd.Phase = 0
}

func (rd *RadialGrating) Eval(x, y float32) float32 {
	ang := math32.Atan2(y, x)
	return 0.5 + 0.5*math32.Cos(rd.Spokes*ang+rd.Phase)
}

// Spiral is a polar grating whose bands wind around the pattern
// origin, combining radial and angular frequency.  Dir = 1 winds
// counterclockwise outward, -1 clockwise.
type Spiral struct {
	Geom  `view:"inline"`
	Freq  float32 `def:"4" min:"0" desc:"spatial frequency in cycles per unit of radial distance"`
	Dir   float32 `def:"1" desc:"winding direction: 1 = counterclockwise, -1 = clockwise"`
	Phase float32 `desc:"phase at the pattern origin, in radians"`
}

func (sp *Spiral) Defaults() {
	sp.Geom.Defaults()
	sp.Freq = 4
	sp.Dir = 1
	sp.Phase = 0
}

func (sp *Spiral) Eval(x, y float32) float32 {
	r := math32.Hypot(x, y)
	ang := math32.Atan2(y, x)
	return 0.5 + 0.5*math32.Cos(2*math32.Pi*sp.Freq*r-sp.Dir*ang+sp.Phase)
}
