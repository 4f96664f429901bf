// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stims generates parameterized visual test-pattern stimuli
(gratings, bars, stars, angles, arcs etc) as etensor.Float32 images,
for use as inputs to neural network simulations and for illustrating
the stimulus classes used in visual neuroscience experiments.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* stim: the core pattern generators, which rasterize parameterized
patterns (sinusoidal, hyperbolic and polar gratings, gaussians, lines,
disks, rings, arcs, angles, stars, crosses, and composites thereof)
onto a sheet coordinate system.

* ngen: number generators that produce values from random
distributions (uniform, normal, von Mises, choice) or as functions of
time (boxcar, square wave, exponential decay), used for randomizing
stimulus parameters across trials.

* stimset: parameter enumeration for the standard stimulus subclasses
from Hegde & Van Essen (2007), collected into etable.Table banks and
composite grid images.

* stimenv: an emergent env.Env that presents stimuli from a bank one
trial at a time, with optional parameter jitter and noise masking.

* examples: these compile into runnable programs -- examples/bank
builds and displays the full standard stimulus catalog and is the
place to start.
*/
package stims
