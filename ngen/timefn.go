// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ngen

import "math"

// TimeGen is the interface for generators that are a pure function of
// time: a given time always produces the same value, so time can be
// stepped forward or jumped arbitrarily.
type TimeGen interface {
	// Eval returns the value at the given time
	Eval(t float64) float64
}

// BoxCar is the boxcar function over a time interval: 1 after Onset
// through Onset + Duration, 0 elsewhere.  The onset bound is
// exclusive: 0 is returned at the onset time itself.
// Duration < 0 gives a step function with no offset.
type BoxCar struct {
	Onset    float64 `def:"0" desc:"time of onset"`
	Duration float64 `def:"1" desc:"duration of the 1 value -- negative = no offset (step function)"`
}

func (bc *BoxCar) Defaults() {
	bc.Onset = 0
	bc.Duration = 1
}

func (bc *BoxCar) Eval(t float64) float64 {
	if t <= bc.Onset {
		return 0
	}
	if bc.Duration >= 0 && t > bc.Onset+bc.Duration {
		return 0
	}
	return 1
}

// SquareWave generates a square wave alternating between 1 for
// Duration and 0 for OffDuration, with the first on-phase starting at
// Onset.  OffDuration <= 0 defaults to Duration (half duty cycle).
type SquareWave struct {
	Onset       float64 `def:"0" desc:"time of onset of the first on state -- must be less than OffDuration"`
	Duration    float64 `def:"1" min:"0" desc:"duration of the on state"`
	OffDuration float64 `def:"0" desc:"duration of the off state -- 0 or negative = same as Duration"`
}

func (sw *SquareWave) Defaults() {
	sw.Onset = 0
	sw.Duration = 1
	sw.OffDuration = 0
}

// Off returns the effective off duration.
func (sw *SquareWave) Off() float64 {
	if sw.OffDuration <= 0 {
		return sw.Duration
	}
	return sw.OffDuration
}

func (sw *SquareWave) Eval(t float64) float64 {
	off := sw.Off()
	ph := math.Mod(t-sw.Onset, sw.Duration+off)
	if ph < 0 {
		ph += sw.Duration + off
	}
	if ph < sw.Duration {
		return 1
	}
	return 0
}

// ExpDecay decays exponentially from Start toward End with the given
// time constant: End + (Start - End) * Base^(-t / TimeConstant).
// The default Base e gives Start * exp(-t / TimeConstant) decay;
// Base 2 lets TimeConstant be read as a half-life.
type ExpDecay struct {
	Start        float64 `def:"1" desc:"value at time zero"`
	End          float64 `def:"0" desc:"value at time infinity"`
	TimeConstant float64 `def:"10000" desc:"time scale of the decay -- larger is slower"`
	Base         float64 `def:"2.7183" desc:"base of the exponent -- default is e"`
}

func (ed *ExpDecay) Defaults() {
	ed.Start = 1
	ed.End = 0
	ed.TimeConstant = 10000
	ed.Base = math.E
}

func (ed *ExpDecay) Eval(t float64) float64 {
	return ed.End + (ed.Start-ed.End)*math.Pow(ed.Base, -t/ed.TimeConstant)
}

// TimeFactor is the current time multiplied by a conversion factor.
type TimeFactor struct {
	Factor float64 `def:"1" desc:"multiplier on the time value"`
}

func (tf *TimeFactor) Defaults() {
	tf.Factor = 1
}

func (tf *TimeFactor) Eval(t float64) float64 { return t * tf.Factor }
