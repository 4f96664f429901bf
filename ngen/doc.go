// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ngen provides number generators: params structs that produce a
number per call, either drawn from a random distribution (uniform,
normal, von Mises, choice) or computed as a function of time (boxcar,
square wave, exponential decay).  These are used to vary stimulus
parameters such as orientation or position across trials.

Random generators implement the Gen interface and draw from the
shared global random source by default, using erand distribution
params where applicable.  Each has an Rnd erand.Rand field for a
local source instead: NewRnd(seed) gives a generator its own seeded
source for a reproducible sequence.  Time-function generators
implement TimeGen, taking the current time as an explicit argument so
that a given time always produces the same value.

Generators compose: Binary and Unary apply arithmetic operators to
other generators (standing in for operator overloading in the
original formulation), Bounded clamps another generator's output, and
Const adapts a plain number to the Gen interface.
*/
package ngen
