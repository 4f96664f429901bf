// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"

	"github.com/emer/emergent/evec"
	"github.com/goki/mat32"
)

// Sheet is a sheet coordinate system: a continuous 2D bounding box
// sampled at a given density of pixels per sheet coordinate unit.
// Pixel (0,0) is the top-left corner of the sheet, so that rendered
// tensors display upright in standard row-major grid views.
type Sheet struct {
	Bounds  mat32.Box2 `desc:"bounding box of the sheet in continuous sheet coordinates -- default is radius 0.5 box around origin"`
	Density float32    `def:"100" min:"1" desc:"number of pixels per unit of sheet coordinates, in each dimension"`
}

func (sh *Sheet) Defaults() {
	sh.Bounds.Min = mat32.Vec2{X: -0.5, Y: -0.5}
	sh.Bounds.Max = mat32.Vec2{X: 0.5, Y: 0.5}
	sh.Density = 100
}

// NewSheet returns a Sheet with a square bounding box of given radius
// around the origin, at given density.
func NewSheet(radius, density float32) *Sheet {
	sh := &Sheet{}
	sh.Defaults()
	sh.Bounds.Min = mat32.Vec2{X: -radius, Y: -radius}
	sh.Bounds.Max = mat32.Vec2{X: radius, Y: radius}
	sh.Density = density
	return sh
}

// PixSize returns the pixel dimensions of the rasterized sheet
// (X = columns, Y = rows).
func (sh *Sheet) PixSize() evec.Vec2i {
	sz := sh.Bounds.Size()
	return evec.Vec2i{X: int(sz.X*sh.Density + 0.5), Y: int(sz.Y*sh.Density + 0.5)}
}

// Coord returns the sheet coordinates of the center of given pixel,
// with row 0 at the top of the sheet (decreasing Y).
func (sh *Sheet) Coord(row, col int) mat32.Vec2 {
	return mat32.Vec2{
		X: sh.Bounds.Min.X + (float32(col)+0.5)/sh.Density,
		Y: sh.Bounds.Max.Y - (float32(row)+0.5)/sh.Density,
	}
}

func (sh *Sheet) Validate() error {
	if sh.Density <= 0 {
		return fmt.Errorf("stim.Sheet: Density must be positive, got %v", sh.Density)
	}
	sz := sh.Bounds.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("stim.Sheet: Bounds are empty or inverted: %v", sh.Bounds)
	}
	return nil
}
