// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
)

// Geom has the geometry params common to all pattern generators:
// where the pattern is placed on the sheet, how it is rotated, and
// how its output values are scaled.
type Geom struct {
	X      float32 `desc:"X (horizontal) center of the pattern in sheet coordinates"`
	Y      float32 `desc:"Y (vertical) center of the pattern in sheet coordinates"`
	Orient float32 `desc:"orientation of the pattern in radians, counterclockwise from horizontal"`
	Scale  float32 `def:"1" desc:"multiplier on the raw 0..1 pattern value"`
	Offset float32 `def:"0" desc:"additive offset on the scaled pattern value"`
}

func (gm *Geom) Defaults() {
	gm.X = 0
	gm.Y = 0
	gm.Orient = 0
	gm.Scale = 1
	gm.Offset = 0
}

// Geometry satisfies the Pattern interface for any struct embedding Geom.
func (gm *Geom) Geometry() *Geom { return gm }

// Pattern is the interface for all pattern generators.  Eval is called
// with pattern-local coordinates: sheet coordinates translated by the
// geometry center and rotated by -Orient, so generators are always
// written in their canonical (horizontal) frame.
type Pattern interface {
	// Defaults sets default parameter values
	Defaults()

	// Geometry returns the common geometry params
	Geometry() *Geom

	// Eval returns the raw pattern value at given pattern-local coordinates
	Eval(x, y float32) float32
}

// EvalAt evaluates pat at given sheet coordinates, applying its
// geometry transform and output scaling.
func EvalAt(pat Pattern, x, y float32) float32 {
	gm := pat.Geometry()
	dx := x - gm.X
	dy := y - gm.Y
	sin, cos := math32.Sincos(gm.Orient)
	return gm.Scale*pat.Eval(dx*cos+dy*sin, dy*cos-dx*sin) + gm.Offset
}

// Render rasterizes pat over the given sheet into tsr, setting the
// tensor shape to the sheet pixel size.  tsr values are entirely
// overwritten.  Render does not modify pat, so a single pattern can be
// rendered into distinct tensors concurrently.
func Render(pat Pattern, sh *Sheet, tsr *etensor.Float32) error {
	if err := sh.Validate(); err != nil {
		return err
	}
	gm := pat.Geometry()
	sz := sh.PixSize()
	tsr.SetShape([]int{sz.Y, sz.X}, nil, []string{"Y", "X"})
	sin, cos := math32.Sincos(gm.Orient)
	for row := 0; row < sz.Y; row++ {
		for col := 0; col < sz.X; col++ {
			pos := sh.Coord(row, col)
			dx := pos.X - gm.X
			dy := pos.Y - gm.Y
			v := gm.Scale*pat.Eval(dx*cos+dy*sin, dy*cos-dx*sin) + gm.Offset
			tsr.Set([]int{row, col}, v)
		}
	}
	return nil
}

// RenderImage returns a fresh tensor with pat rendered over the sheet.
func RenderImage(pat Pattern, sh *Sheet) (*etensor.Float32, error) {
	tsr := &etensor.Float32{}
	err := Render(pat, sh, tsr)
	return tsr, err
}

// Falloff returns the gaussian fringe value for a point at distance d
// beyond the edge of a shape, with smoothing width sm: 1 at or inside
// the edge (d <= 0), and a gaussian decay outside.  sm = 0 gives a
// hard edge.
func Falloff(d, sm float32) float32 {
	if d <= 0 {
		return 1
	}
	if sm <= 0 {
		return 0
	}
	d /= sm
	return math32.Exp(-0.5 * d * d)
}

// SegDist returns the distance from point x, y to the line segment
// from the origin to (ln, 0) along the x axis.
func SegDist(x, y, ln float32) float32 {
	cx := x
	if cx < 0 {
		cx = 0
	} else if cx > ln {
		cx = ln
	}
	return math32.Hypot(x-cx, y)
}
