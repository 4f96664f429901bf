// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimenv

import (
	"testing"

	"github.com/emer/emergent/env"
	"github.com/emer/stims/ngen"
	"github.com/emer/stims/stim"
	"github.com/emer/stims/stimset"
)

func testEnv() *StimEnv {
	sh := stim.NewSheet(0.5, 10)
	bk := stimset.NewBank("test", sh)
	bk.Add(stimset.Bars()...)
	ev := &StimEnv{Nm: "TestEnv"}
	ev.Config(bk)
	return ev
}

func TestStimEnvStep(t *testing.T) {
	ev := testEnv()
	if err := ev.Validate(); err != nil {
		t.Fatal(err)
	}
	ev.Init(0)
	names := map[string]bool{}
	for i := 0; i < 8; i++ {
		if !ev.Step() {
			t.Fatalf("Step %v failed\n", i)
		}
		names[ev.String()] = true
		cur, _, _ := ev.Counter(env.Trial)
		if cur != i {
			t.Errorf("Trial counter: got %v, cor %v\n", cur, i)
		}
	}
	if len(names) != 8 {
		t.Errorf("Stim names: got %v distinct, cor 8\n", len(names))
	}
	if cur, _, _ := ev.Counter(env.Epoch); cur != 0 {
		t.Errorf("Epoch counter: got %v, cor 0\n", cur)
	}
	ev.Step() // wraps into next epoch
	if cur, _, chg := ev.Counter(env.Epoch); cur != 1 || !chg {
		t.Errorf("Epoch counter after wrap: got %v chg %v, cor 1 true\n", cur, chg)
	}
	if ev.Image.Len() != 100 {
		t.Errorf("Image len: got %v, cor 100\n", ev.Image.Len())
	}
	non := 0
	for i := 0; i < ev.Image.Len(); i++ {
		if ev.Image.FloatVal1D(i) > 0.5 {
			non++
		}
	}
	if non == 0 {
		t.Errorf("Image: no pixels on after Step\n")
	}
}

func TestStimEnvNoise(t *testing.T) {
	ev := testEnv()
	ev.NoisePct = 0.2
	ev.Init(0)
	ev.Step()
	non := 0
	for i := 0; i < ev.Image.Len(); i++ {
		if ev.Image.FloatVal1D(i) == 1 {
			non++
		}
	}
	if non < 20 {
		t.Errorf("Noise: got %v pixels at 1, cor >= 20\n", non)
	}
}

func TestStimEnvJitter(t *testing.T) {
	ev := testEnv()
	ur := &ngen.UniformRandom{}
	ur.Defaults()
	ur.Lo = -0.05
	ur.Hi = 0.05
	ev.PosJitter = ur
	ev.Init(0)
	ev.Step()
	// jitter must not accumulate in the bank patterns
	gm := ev.Bank.Stims[0].Pat.Geometry()
	if gm.X != 0 || gm.Y != 0 {
		t.Errorf("Jitter: pattern geometry modified: X %v Y %v\n", gm.X, gm.Y)
	}
}
