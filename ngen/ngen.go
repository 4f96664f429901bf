// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ngen

import (
	"math"

	"github.com/emer/emergent/erand"
)

// Gen is the interface for any object that produces a number per call.
type Gen interface {
	// Gen returns the next number
	Gen() float64
}

// src returns rnd if non-nil, else the shared global random source.
func src(rnd erand.Rand) erand.Rand {
	if rnd != nil {
		return rnd
	}
	return erand.NewGlobalRand()
}

// Const adapts a constant number to the Gen interface, for composing
// with other generators.
type Const float64

func (cn Const) Gen() float64 { return float64(cn) }

//////////////////////////////////////////////////////////////////////////////////////
//  Random distributions

// UniformRandom generates uniform random numbers in the range
// [Lo, Hi).
type UniformRandom struct {
	Lo  float64    `def:"0" desc:"inclusive lower bound"`
	Hi  float64    `def:"1" desc:"exclusive upper bound"`
	Rnd erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (ur *UniformRandom) Defaults() {
	ur.Lo = 0
	ur.Hi = 1
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (ur *UniformRandom) NewRnd(seed int64) {
	ur.Rnd = erand.NewSysRand(seed)
}

func (ur *UniformRandom) Gen() float64 {
	return ur.Lo + src(ur.Rnd).Float64(-1)*(ur.Hi-ur.Lo)
}

// UniformRandomOffset generates uniform random numbers specified by
// mean and total range: [Mean - Range/2, Mean + Range/2).  Maps
// directly onto the erand Uniform distribution params.
type UniformRandomOffset struct {
	erand.RndParams
	Rnd erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (uo *UniformRandomOffset) Defaults() {
	uo.Dist = erand.Uniform
	uo.Mean = 0
	uo.Var = 0.5
}

// SetRange sets the Mean and the erand Var (= half range) from a
// total range.
func (uo *UniformRandomOffset) SetRange(mean, rng float64) {
	uo.Dist = erand.Uniform
	uo.Mean = mean
	uo.Var = 0.5 * rng
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (uo *UniformRandomOffset) NewRnd(seed int64) {
	uo.Rnd = erand.NewSysRand(seed)
}

func (uo *UniformRandomOffset) Gen() float64 {
	return uo.RndParams.Gen(-1, src(uo.Rnd))
}

// UniformRandomInt generates uniform random integers in the inclusive
// range [Lo, Hi].
type UniformRandomInt struct {
	Lo  int        `def:"0" desc:"inclusive lower bound"`
	Hi  int        `def:"1000" desc:"inclusive upper bound"`
	Rnd erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (ui *UniformRandomInt) Defaults() {
	ui.Lo = 0
	ui.Hi = 1000
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (ui *UniformRandomInt) NewRnd(seed int64) {
	ui.Rnd = erand.NewSysRand(seed)
}

func (ui *UniformRandomInt) Gen() float64 {
	return float64(ui.Lo + src(ui.Rnd).Intn(ui.Hi-ui.Lo+1, -1))
}

// Choice returns a random element from the list of choices.
type Choice struct {
	Choices []float64  `desc:"values to select among, with equal probability"`
	Rnd     erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (ch *Choice) Defaults() {
	ch.Choices = []float64{0, 1}
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (ch *Choice) NewRnd(seed int64) {
	ch.Rnd = erand.NewSysRand(seed)
}

func (ch *Choice) Gen() float64 {
	if len(ch.Choices) == 0 {
		return 0
	}
	return ch.Choices[src(ch.Rnd).Intn(len(ch.Choices), -1)]
}

// NormalRandom generates normally distributed (gaussian) random
// numbers with mean Mu and standard deviation Sigma, via the erand
// Gaussian distribution.
type NormalRandom struct {
	erand.RndParams
	Rnd erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (nr *NormalRandom) Defaults() {
	nr.Dist = erand.Gaussian
	nr.Mean = 0
	nr.Var = 1
}

// SetMuSigma sets the gaussian mean and standard deviation.
func (nr *NormalRandom) SetMuSigma(mu, sigma float64) {
	nr.Dist = erand.Gaussian
	nr.Mean = mu
	nr.Var = sigma
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (nr *NormalRandom) NewRnd(seed int64) {
	nr.Rnd = erand.NewSysRand(seed)
}

func (nr *NormalRandom) Gen() float64 {
	return nr.RndParams.Gen(-1, src(nr.Rnd))
}

// VonMisesRandom generates circularly normal random angles in
// [0, 2 pi), concentrated around mean direction Mu with concentration
// Kappa (inverse variance).  Kappa = 0 reduces to a uniform random
// angle; large Kappa approaches a gaussian with variance 1/Kappa.
type VonMisesRandom struct {
	Mu    float64    `def:"0" min:"0" max:"6.2832" desc:"mean direction, in the range 0 to 2 pi"`
	Kappa float64    `def:"1" min:"0" desc:"concentration (inverse variance)"`
	Rnd   erand.Rand `view:"-" desc:"random number source -- nil = shared global source"`
}

func (vm *VonMisesRandom) Defaults() {
	vm.Mu = 0
	vm.Kappa = 1
}

// NewRnd sets a new local random source with given seed,
// for a reproducible sequence independent of the global source.
func (vm *VonMisesRandom) NewRnd(seed int64) {
	vm.Rnd = erand.NewSysRand(seed)
}

// Gen uses the Best & Fisher (1979) rejection algorithm.
func (vm *VonMisesRandom) Gen() float64 {
	rnd := src(vm.Rnd)
	if vm.Kappa <= 1e-6 {
		return 2 * math.Pi * rnd.Float64(-1)
	}
	s := 0.5 / vm.Kappa
	r := s + math.Sqrt(1+s*s)
	var z float64
	for {
		u1 := rnd.Float64(-1)
		z = math.Cos(math.Pi * u1)
		d := z / (r + z)
		u2 := rnd.Float64(-1)
		if u2 < 1-d*d || u2 <= (1-d)*math.Exp(d) {
			break
		}
	}
	q := 1 / r
	f := (q + z) / (1 + q*z)
	u3 := rnd.Float64(-1)
	if u3 > 0.5 {
		return math.Mod(vm.Mu+math.Acos(f), 2*math.Pi)
	}
	return math.Mod(vm.Mu-math.Acos(f)+2*math.Pi, 2*math.Pi)
}
