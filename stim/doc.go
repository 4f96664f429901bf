// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides parameterized 2D visual pattern generators that
rasterize onto etensor.Float32 tensors, for constructing test-pattern
stimuli such as gratings, bars, stars, angles and arcs.

Patterns are evaluated over a Sheet coordinate system: a continuous
bounding box in sheet coordinates, sampled at a given density (pixels
per sheet unit), with matrix row 0 at the top of the sheet.  Each
generator is a params struct with a Defaults method, embedding the
common Geom geometry params (center offset, orientation, output
scale and offset).  All hard-edged shapes share a gaussian-fringe
Smooth parameter for anti-aliased edges (0 = hard edge).

With default Scale = 1 and Offset = 0, generators produce values in
the 0..1 range, suitable for direct use as network input activations.
*/
package stim
