// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ngen

import (
	"math"
	"math/rand"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-8

func cmpVal(t *testing.T, nm string, got, cor float64) {
	t.Helper()
	if math.Abs(got-cor) > difTol {
		t.Errorf("%s: got %v, cor %v\n", nm, got, cor)
	}
}

func TestUniformRandom(t *testing.T) {
	rand.Seed(42)
	ur := &UniformRandom{}
	ur.Defaults()
	ur.Lo = -2
	ur.Hi = 3
	for i := 0; i < 1000; i++ {
		v := ur.Gen()
		if v < ur.Lo || v >= ur.Hi {
			t.Errorf("UniformRandom: %v outside [%v, %v)\n", v, ur.Lo, ur.Hi)
		}
	}
}

func TestUniformRandomOffset(t *testing.T) {
	rand.Seed(42)
	uo := &UniformRandomOffset{}
	uo.Defaults()
	uo.SetRange(10, 2)
	for i := 0; i < 1000; i++ {
		v := uo.Gen()
		if v < 9 || v > 11 {
			t.Errorf("UniformRandomOffset: %v outside [9, 11]\n", v)
		}
	}
}

func TestUniformRandomInt(t *testing.T) {
	rand.Seed(42)
	ui := &UniformRandomInt{}
	ui.Defaults()
	ui.Lo = 3
	ui.Hi = 5
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := int(ui.Gen())
		if v < 3 || v > 5 {
			t.Errorf("UniformRandomInt: %v outside [3, 5]\n", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("UniformRandomInt: saw %v distinct values, cor 3\n", len(seen))
	}
}

func TestChoice(t *testing.T) {
	rand.Seed(42)
	ch := &Choice{}
	ch.Defaults()
	ch.Choices = []float64{0.5, 1.5, 2.5}
	for i := 0; i < 1000; i++ {
		v := ch.Gen()
		if v != 0.5 && v != 1.5 && v != 2.5 {
			t.Errorf("Choice: %v not in choices\n", v)
		}
	}
}

func TestNormalRandom(t *testing.T) {
	rand.Seed(42)
	nr := &NormalRandom{}
	nr.Defaults()
	nr.SetMuSigma(5, 1)
	sum := 0.0
	n := 10000
	for i := 0; i < n; i++ {
		sum += nr.Gen()
	}
	mean := sum / float64(n)
	if math.Abs(mean-5) > 0.05 {
		t.Errorf("NormalRandom: sample mean %v too far from 5\n", mean)
	}
}

func TestVonMisesRandom(t *testing.T) {
	rand.Seed(42)
	vm := &VonMisesRandom{}
	vm.Defaults()
	vm.Kappa = 0
	for i := 0; i < 1000; i++ {
		v := vm.Gen()
		if v < 0 || v >= 2*math.Pi {
			t.Errorf("VonMisesRandom: %v outside [0, 2 pi)\n", v)
		}
	}
	vm.Mu = math.Pi
	vm.Kappa = 100
	csum := 0.0
	n := 1000
	for i := 0; i < n; i++ {
		v := vm.Gen()
		if v < 0 || v >= 2*math.Pi {
			t.Errorf("VonMisesRandom: %v outside [0, 2 pi)\n", v)
		}
		csum += math.Cos(v - vm.Mu)
	}
	if csum/float64(n) < 0.9 {
		t.Errorf("VonMisesRandom: kappa 100 samples not concentrated at mu: mean cos dev %v\n", csum/float64(n))
	}
}

func TestNewRnd(t *testing.T) {
	ura := &UniformRandom{}
	ura.Defaults()
	ura.NewRnd(17)
	urb := &UniformRandom{}
	urb.Defaults()
	urb.NewRnd(17)
	for i := 0; i < 100; i++ {
		cmpVal(t, "UniformRandom same seed", ura.Gen(), urb.Gen())
	}

	nra := &NormalRandom{}
	nra.Defaults()
	nra.SetMuSigma(5, 1)
	nra.NewRnd(17)
	nrb := &NormalRandom{}
	nrb.Defaults()
	nrb.SetMuSigma(5, 1)
	nrb.NewRnd(17)
	rand.Seed(1) // local sources must be independent of the global one
	va := nra.Gen()
	rand.Seed(2)
	vb := nrb.Gen()
	cmpVal(t, "NormalRandom same seed", va, vb)

	vma := &VonMisesRandom{}
	vma.Defaults()
	vma.NewRnd(17)
	vmb := &VonMisesRandom{}
	vmb.Defaults()
	vmb.NewRnd(99)
	same := true
	for i := 0; i < 10; i++ {
		if vma.Gen() != vmb.Gen() {
			same = false
		}
	}
	if same {
		t.Errorf("VonMisesRandom: different seeds produced identical sequences\n")
	}
}

func TestBoxCar(t *testing.T) {
	bc := &BoxCar{}
	bc.Defaults()
	cmpVal(t, "BoxCar before", bc.Eval(-1), 0)
	cmpVal(t, "BoxCar at onset", bc.Eval(0), 0)
	cmpVal(t, "BoxCar during", bc.Eval(0.5), 1)
	cmpVal(t, "BoxCar at offset", bc.Eval(1), 1)
	cmpVal(t, "BoxCar after", bc.Eval(1.1), 0)

	bc.Duration = -1 // step function
	cmpVal(t, "BoxCar step late", bc.Eval(100), 1)
}

func TestSquareWave(t *testing.T) {
	sw := &SquareWave{}
	sw.Defaults()
	cmpVal(t, "SquareWave on", sw.Eval(0.5), 1)
	cmpVal(t, "SquareWave off", sw.Eval(1.5), 0)
	cmpVal(t, "SquareWave next cycle on", sw.Eval(2.5), 1)

	sw.OffDuration = 3
	cmpVal(t, "SquareWave long off", sw.Eval(2.5), 0)
	cmpVal(t, "SquareWave period 4", sw.Eval(4.5), 1)

	sw.OffDuration = 0
	sw.Onset = 0.25
	cmpVal(t, "SquareWave onset shift off", sw.Eval(0.1), 0)
	cmpVal(t, "SquareWave onset shift on", sw.Eval(0.5), 1)
}

func TestExpDecay(t *testing.T) {
	ed := &ExpDecay{}
	ed.Defaults()
	ed.TimeConstant = 1
	cmpVal(t, "ExpDecay zero", ed.Eval(0), 1)
	cmpVal(t, "ExpDecay one tau", ed.Eval(1), math.Exp(-1))

	ed.Base = 2
	cmpVal(t, "ExpDecay half life", ed.Eval(1), 0.5)
	cmpVal(t, "ExpDecay two half lives", ed.Eval(2), 0.25)

	ed.End = 0.5
	ed.Start = 1.5
	cmpVal(t, "ExpDecay end value", ed.Eval(1), 1)
}

func TestTimeFactor(t *testing.T) {
	tf := &TimeFactor{}
	tf.Defaults()
	tf.Factor = 2.5
	cmpVal(t, "TimeFactor", tf.Eval(4), 10)
}

func TestOps(t *testing.T) {
	bn := &Binary{A: Const(3), B: Const(4), Op: OpAdd}
	cmpVal(t, "Binary add", bn.Gen(), 7)
	bn.Op = OpSub
	cmpVal(t, "Binary sub", bn.Gen(), -1)
	bn.Op = OpMul
	cmpVal(t, "Binary mul", bn.Gen(), 12)
	bn.Op = OpDiv
	cmpVal(t, "Binary div", bn.Gen(), 0.75)
	bn.Op = OpPow
	cmpVal(t, "Binary pow", bn.Gen(), 81)
	bn.Op = OpMod
	cmpVal(t, "Binary mod", bn.Gen(), 3)

	un := &Unary{A: Const(-2), Op: OpNeg}
	cmpVal(t, "Unary neg", un.Gen(), 2)
	un.Op = OpAbs
	cmpVal(t, "Unary abs", un.Gen(), 2)

	nested := &Binary{A: &Unary{A: Const(-1), Op: OpAbs}, B: bn, Op: OpAdd}
	bn.Op = OpAdd
	cmpVal(t, "Binary nested", nested.Gen(), 8)
}

func TestBounded(t *testing.T) {
	bd := &Bounded{Source: Const(5)}
	bd.Defaults()
	cmpVal(t, "Bounded open", bd.Gen(), 5)
	bd.Max = 4
	cmpVal(t, "Bounded max", bd.Gen(), 4)
	bd.Source = Const(-10)
	bd.Min = -1
	cmpVal(t, "Bounded min", bd.Gen(), -1)
}
