// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stimenv provides an environment that presents visual
// test-pattern stimuli from a stimset.Bank one trial at a time,
// optionally jittering pattern geometry with ngen number generators
// and overlaying random binary pixel noise.
package stimenv

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/emergent/erand"
	"github.com/emer/emergent/patgen"
	"github.com/emer/etable/etensor"
	"github.com/emer/stims/ngen"
	"github.com/emer/stims/stim"
	"github.com/emer/stims/stimset"
)

// StimEnv presents the stimuli of a bank in order (or shuffled),
// rendering the current stimulus into the Image state on each Step.
// One pass through the bank is one Epoch.
type StimEnv struct {
	Nm           string          `desc:"name of this environment"`
	Dsc          string          `desc:"description of this environment"`
	Bank         *stimset.Bank   `desc:"the stimulus bank to present"`
	Shuffle      bool            `desc:"present stimuli in permuted order, reshuffled every epoch"`
	OrientJitter ngen.Gen        `desc:"optional generator for per-trial orientation jitter, in radians added to the stimulus orientation"`
	PosJitter    ngen.Gen        `desc:"optional generator for per-trial X, Y position jitter, in sheet coordinates"`
	NoisePct     float32         `desc:"proportion (0-1) of image pixels set to 1 as random binary noise, after rendering"`
	Image        etensor.Float32 `desc:"rendered image for the current trial"`
	CurStim      string          `inactive:"+" desc:"name of the current stimulus"`
	Order        []int           `desc:"presentation order for the current epoch"`
	Run          env.Ctr         `view:"inline" desc:"current run of model as provided during Init"`
	Epoch        env.Ctr         `view:"inline" desc:"number of passes through the full bank"`
	Trial        env.Ctr         `view:"inline" desc:"trial increments over stimuli in the bank"`
}

func (ev *StimEnv) Name() string { return ev.Nm }
func (ev *StimEnv) Desc() string { return ev.Dsc }

// Config sets the bank to present and configures the image state.
func (ev *StimEnv) Config(bk *stimset.Bank) {
	ev.Bank = bk
	ev.Trial.Max = bk.NStims()
	ev.Order = make([]int, bk.NStims())
	for i := range ev.Order {
		ev.Order[i] = i
	}
	sz := bk.Sheet.PixSize()
	ev.Image.SetShape([]int{sz.Y, sz.X}, nil, []string{"Y", "X"})
}

func (ev *StimEnv) Validate() error {
	if ev.Bank == nil || ev.Bank.NStims() == 0 {
		return fmt.Errorf("StimEnv: %v has no stimulus bank -- need to Config", ev.Nm)
	}
	return ev.Bank.Validate()
}

func (ev *StimEnv) State(element string) etensor.Tensor {
	switch element {
	case "Image":
		return &ev.Image
	}
	return nil
}

// String returns the current stimulus name.
func (ev *StimEnv) String() string { return ev.CurStim }

// Init is called to restart environment
func (ev *StimEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
	if ev.Shuffle {
		erand.PermuteInts(ev.Order)
	}
}

// RenderStim renders the stimulus at the given bank index into Image,
// applying any configured jitter and noise.  Pattern geometry is
// restored after rendering so jitter does not accumulate.
func (ev *StimEnv) RenderStim(idx int) error {
	st := ev.Bank.Stims[idx]
	gm := st.Pat.Geometry()
	sav := *gm
	if ev.OrientJitter != nil {
		gm.Orient += float32(ev.OrientJitter.Gen())
	}
	if ev.PosJitter != nil {
		gm.X += float32(ev.PosJitter.Gen())
		gm.Y += float32(ev.PosJitter.Gen())
	}
	err := stim.Render(st.Pat, ev.Bank.Sheet, &ev.Image)
	*gm = sav
	if err != nil {
		return err
	}
	if ev.NoisePct > 0 {
		ev.ApplyNoise()
	}
	ev.CurStim = st.Nm
	return nil
}

// ApplyNoise sets a random NoisePct proportion of image pixels to 1.
func (ev *StimEnv) ApplyNoise() {
	nOn := patgen.NFmPct(ev.NoisePct, ev.Image.Len())
	mask := etensor.Float32{}
	mask.SetShape(ev.Image.Shape.Shp, nil, nil)
	patgen.PermutedBinary(&mask, nOn, 1, 0)
	for i := 0; i < ev.Image.Len(); i++ {
		if mask.FloatVal1D(i) > 0 {
			ev.Image.SetFloat1D(i, 1)
		}
	}
}

// Step is called to advance the environment state
func (ev *StimEnv) Step() bool {
	ev.Epoch.Same() // good idea to just reset all non-inner-most counters at start
	if ev.Trial.Incr() { // true if wraps around Max back to 0
		ev.Epoch.Incr()
		if ev.Shuffle {
			erand.PermuteInts(ev.Order)
		}
	}
	if err := ev.RenderStim(ev.Order[ev.Trial.Cur]); err != nil {
		return false
	}
	return true
}

func (ev *StimEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *StimEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*StimEnv)(nil)
