// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/chewxy/math32"
)

//////////////////////////////////////////////////////////////////////////////////////
//  Constant, Gaussian

// Constant fills the entire sheet with a uniform value of 1
// (times Scale, plus Offset).
type Constant struct {
	Geom `view:"inline"`
}

func (cn *Constant) Defaults() {
	cn.Geom.Defaults()
}

func (cn *Constant) Eval(x, y float32) float32 { return 1 }

// Gaussian is a 2D gaussian blob with separate sigmas along the
// pattern x and y axes -- elongation along one axis with a smaller
// sigma on the other gives an oriented gaussian.
type Gaussian struct {
	Geom   `view:"inline"`
	XSigma float32 `def:"0.15" min:"0" desc:"gaussian width along the pattern x axis, in sheet coordinates"`
	YSigma float32 `def:"0.15" min:"0" desc:"gaussian width along the pattern y axis, in sheet coordinates"`
}

func (ga *Gaussian) Defaults() {
	ga.Geom.Defaults()
	ga.XSigma = 0.15
	ga.YSigma = 0.15
}

func (ga *Gaussian) Eval(x, y float32) float32 {
	if ga.XSigma <= 0 || ga.YSigma <= 0 {
		return 0
	}
	xn := x / ga.XSigma
	yn := y / ga.YSigma
	return math32.Exp(-0.5 * (xn*xn + yn*yn))
}

//////////////////////////////////////////////////////////////////////////////////////
//  Line, Rectangle

// Line is a line segment of given length and thickness, centered at
// the pattern origin along the x axis, with rounded gaussian-smoothed
// end caps.  Len = 0 gives an infinite line.
type Line struct {
	Geom   `view:"inline"`
	Len    float32 `def:"0.5" min:"0" desc:"length of the segment in sheet coordinates -- 0 = infinite line spanning the sheet"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the line in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (ln *Line) Defaults() {
	ln.Geom.Defaults()
	ln.Len = 0.5
	ln.Thick = 0.02
	ln.Smooth = 0.01
}

func (ln *Line) Eval(x, y float32) float32 {
	var d float32
	if ln.Len <= 0 {
		d = math32.Abs(y)
	} else {
		d = SegDist(x+0.5*ln.Len, y, ln.Len)
	}
	return Falloff(d-0.5*ln.Thick, ln.Smooth)
}

// Rectangle is a solid axis-aligned rectangle of given width and
// height, centered at the pattern origin, with square corners.
type Rectangle struct {
	Geom   `view:"inline"`
	Width  float32 `def:"0.5" min:"0" desc:"extent along the pattern x axis, in sheet coordinates"`
	Height float32 `def:"0.5" min:"0" desc:"extent along the pattern y axis, in sheet coordinates"`
	Smooth float32 `def:"0" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (rc *Rectangle) Defaults() {
	rc.Geom.Defaults()
	rc.Width = 0.5
	rc.Height = 0.5
	rc.Smooth = 0
}

func (rc *Rectangle) Eval(x, y float32) float32 {
	ex := math32.Abs(x) - 0.5*rc.Width
	ey := math32.Abs(y) - 0.5*rc.Height
	if ex <= 0 && ey <= 0 {
		return 1
	}
	if ex < 0 {
		ex = 0
	}
	if ey < 0 {
		ey = 0
	}
	return Falloff(math32.Hypot(ex, ey), rc.Smooth)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Disk, Ring, Arc

// Disk is a solid circular disk of given diameter centered at the
// pattern origin.
type Disk struct {
	Geom   `view:"inline"`
	Size   float32 `def:"0.5" min:"0" desc:"diameter of the disk in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (dk *Disk) Defaults() {
	dk.Geom.Defaults()
	dk.Size = 0.5
	dk.Smooth = 0.01
}

func (dk *Disk) Eval(x, y float32) float32 {
	return Falloff(math32.Hypot(x, y)-0.5*dk.Size, dk.Smooth)
}

// Ring is a circular annulus (outline circle) of given diameter and
// stroke thickness, centered at the pattern origin.
type Ring struct {
	Geom   `view:"inline"`
	Size   float32 `def:"0.5" min:"0" desc:"diameter of the ring (center of the stroke) in sheet coordinates"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the ring stroke in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (rg *Ring) Defaults() {
	rg.Geom.Defaults()
	rg.Size = 0.5
	rg.Thick = 0.02
	rg.Smooth = 0.01
}

func (rg *Ring) Eval(x, y float32) float32 {
	d := math32.Abs(math32.Hypot(x, y) - 0.5*rg.Size)
	return Falloff(d-0.5*rg.Thick, rg.Smooth)
}

// Arc is a circular arc: a segment of a Ring spanning Len radians,
// centered symmetrically about the pattern +x axis, with rounded
// end caps.  Len >= 2 pi closes into a full ring.
type Arc struct {
	Geom   `view:"inline"`
	Size   float32 `def:"0.5" min:"0" desc:"diameter of the arc circle (center of the stroke) in sheet coordinates"`
	Len    float32 `def:"1.5708" min:"0" desc:"angular extent of the arc in radians -- pi/2 = quarter circle, pi = semicircle, 2 pi = full circle"`
	Thick  float32 `def:"0.02" min:"0" desc:"thickness of the arc stroke in sheet coordinates"`
	Smooth float32 `def:"0.01" min:"0" desc:"gaussian width of the edge fringe -- 0 = hard edge"`
}

func (ac *Arc) Defaults() {
	ac.Geom.Defaults()
	ac.Size = 0.5
	ac.Len = 0.5 * math32.Pi
	ac.Thick = 0.02
	ac.Smooth = 0.01
}

func (ac *Arc) Eval(x, y float32) float32 {
	rad := 0.5 * ac.Size
	if ac.Len >= 2*math32.Pi {
		d := math32.Abs(math32.Hypot(x, y) - rad)
		return Falloff(d-0.5*ac.Thick, ac.Smooth)
	}
	half := 0.5 * ac.Len
	ang := math32.Atan2(y, x)
	var d float32
	if math32.Abs(ang) <= half {
		d = math32.Abs(math32.Hypot(x, y) - rad)
	} else {
		// distance to nearest end cap
		sin, cos := math32.Sincos(half)
		ex := rad * cos
		ey := rad * sin
		if y < 0 {
			ey = -ey
		}
		d = math32.Hypot(x-ex, y-ey)
	}
	return Falloff(d-0.5*ac.Thick, ac.Smooth)
}
