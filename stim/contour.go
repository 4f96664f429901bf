// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/chewxy/math32"
)

// Angle is two line segments of equal length joined at a vertex at
// the pattern origin, separated by Sep radians and symmetric about
// the pattern +x axis.  Sep of pi/4, pi/2, 3 pi/4 give the classic
// acute, right and obtuse angle stimuli.
type Angle struct {
	Geom   `view:"inline"`
	Sep    float32 `def:"1.5708" min:"0" max:"6.2832" desc:"angle between the two arms in radians"`
	Len    float32 `def:"0.3" min:"0" desc:"length of each arm in sheet coordinates"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the arms in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (an *Angle) Defaults() {
	an.Geom.Defaults()
	an.Sep = 0.5 * math32.Pi
	an.Len = 0.3
	an.Thick = 0.02
	an.Smooth = 0.01
}

func (an *Angle) Eval(x, y float32) float32 {
	half := 0.5 * an.Sep
	sin, cos := math32.Sincos(half)
	// rotate into each arm's frame: arms at +half and -half
	du := SegDist(x*cos+y*sin, y*cos-x*sin, an.Len)
	dl := SegDist(x*cos-y*sin, y*cos+x*sin, an.Len)
	d := du
	if dl < d {
		d = dl
	}
	return Falloff(d-0.5*an.Thick, an.Smooth)
}

// Star is N equal line segments (rays) radiating from the pattern
// origin at equal angular spacing, i.e. an asterisk.  N = 3 gives the
// tri-star stimulus; N = 4 with Phase = 0 is an upright cross of rays.
// Phase rotates the first ray away from the pattern +x axis.
type Star struct {
	Geom   `view:"inline"`
	N      int     `def:"6" min:"1" desc:"number of rays"`
	Len    float32 `def:"0.3" min:"0" desc:"length of each ray in sheet coordinates"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the rays in sheet coordinates"`
	Phase  float32 `desc:"angle of the first ray relative to the pattern +x axis, in radians"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (st *Star) Defaults() {
	st.Geom.Defaults()
	st.N = 6
	st.Len = 0.3
	st.Thick = 0.02
	st.Phase = 0
	st.Smooth = 0.01
}

func (st *Star) Eval(x, y float32) float32 {
	if st.N <= 0 {
		return 0
	}
	sep := 2 * math32.Pi / float32(st.N)
	d := float32(math32.MaxFloat32)
	for i := 0; i < st.N; i++ {
		ang := st.Phase + float32(i)*sep
		sin, cos := math32.Sincos(ang)
		di := SegDist(x*cos+y*sin, y*cos-x*sin, st.Len)
		if di < d {
			d = di
		}
	}
	return Falloff(d-0.5*st.Thick, st.Smooth)
}

// Cross is two full line segments of given width crossing at right
// angles at the pattern origin (a plus sign at Orient = 0).
type Cross struct {
	Geom   `view:"inline"`
	Width  float32 `def:"0.5" min:"0" desc:"full extent of each bar in sheet coordinates"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the bars in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (cr *Cross) Defaults() {
	cr.Geom.Defaults()
	cr.Width = 0.5
	cr.Thick = 0.02
	cr.Smooth = 0.01
}

func (cr *Cross) Eval(x, y float32) float32 {
	half := 0.5 * cr.Width
	dh := SegDist(x+half, y, cr.Width)
	dv := SegDist(y+half, x, cr.Width)
	d := dh
	if dv < d {
		d = dv
	}
	return Falloff(d-0.5*cr.Thick, cr.Smooth)
}
