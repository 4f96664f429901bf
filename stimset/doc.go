// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stimset enumerates parameterized stimulus banks: named
collections of stim patterns generated by looping over parameter
values (orientation, frequency, size, thickness) for each stimulus
subclass.

The standard bank reproduces the grating and contour stimulus
subclasses from Hegde & Van Essen (2007), A comparative study of
shape representation in macaque visual areas V2 and V4: sinusoidal,
hyperbolic, and polar (concentric, radial, spiral) gratings, bars,
tri-stars, stars, crosses, acute / right / obtuse angles, and
quarter / semi / full circle arcs.

Banks render into an etable.Table with one row per stimulus (name,
class, subclass, image), and compose into a single 2D grid tensor or
grayscale image for display and PNG export.
*/
package stimset
