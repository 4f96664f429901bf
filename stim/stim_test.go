// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func cmpVal(t *testing.T, nm string, got, cor float32) {
	t.Helper()
	if math32.Abs(got-cor) > difTol {
		t.Errorf("%s: got %v, cor %v\n", nm, got, cor)
	}
}

func TestSheet(t *testing.T) {
	sh := NewSheet(0.5, 10)
	sz := sh.PixSize()
	if sz.X != 10 || sz.Y != 10 {
		t.Errorf("PixSize: got %v, cor 10x10\n", sz)
	}
	tl := sh.Coord(0, 0)
	cmpVal(t, "Coord(0,0).X", tl.X, -0.45)
	cmpVal(t, "Coord(0,0).Y", tl.Y, 0.45)
	br := sh.Coord(9, 9)
	cmpVal(t, "Coord(9,9).X", br.X, 0.45)
	cmpVal(t, "Coord(9,9).Y", br.Y, -0.45)

	bad := &Sheet{}
	if err := bad.Validate(); err == nil {
		t.Errorf("Validate: zero density did not error\n")
	}
	empty := NewSheet(0, 10)
	if err := empty.Validate(); err == nil {
		t.Errorf("Validate: empty bounds did not error\n")
	}
	cn := &Constant{}
	cn.Defaults()
	if err := Render(cn, empty, &etensor.Float32{}); err == nil {
		t.Errorf("Render: empty bounds did not error\n")
	}
}

func TestConstant(t *testing.T) {
	cn := &Constant{}
	cn.Defaults()
	cn.Scale = 0.5
	cn.Offset = 0.25
	sh := NewSheet(0.5, 4)
	tsr, err := RenderImage(cn, sh)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < tsr.Len(); i++ {
		cmpVal(t, "Constant", float32(tsr.FloatVal1D(i)), 0.75)
	}
}

func TestDisk(t *testing.T) {
	dk := &Disk{}
	dk.Defaults()
	dk.Smooth = 0
	sh := NewSheet(0.5, 10)
	tsr := &etensor.Float32{}
	if err := Render(dk, sh, tsr); err != nil {
		t.Fatal(err)
	}
	non := 0
	for i := 0; i < tsr.Len(); i++ {
		if tsr.FloatVal1D(i) > 0.5 {
			non++
		}
	}
	if non != 16 {
		t.Errorf("Disk: got %v pixels on, cor 16\n", non)
	}
	cmpVal(t, "Disk center", tsr.Value([]int{5, 5}), 1)
	cmpVal(t, "Disk corner", tsr.Value([]int{0, 0}), 0)
}

func TestGratings(t *testing.T) {
	sg := &SineGrating{}
	sg.Defaults()
	sg.Phase = 0.5 * math32.Pi
	cmpVal(t, "SineGrating origin", sg.Eval(0, 0), 1)
	cmpVal(t, "SineGrating half cycle", sg.Eval(0, 0.25), 0)

	cr := &ConcentricRings{}
	cr.Defaults()
	cmpVal(t, "ConcentricRings origin", cr.Eval(0, 0), 1)
	cmpVal(t, "ConcentricRings half cycle", cr.Eval(0.125, 0), 0)

	rd := &RadialGrating{}
	rd.Defaults()
	cmpVal(t, "RadialGrating axis", rd.Eval(0.2, 0), 1)
	cmpVal(t, "RadialGrating diagonal", rd.Eval(0.2, 0.2), 0)

	hg := &HyperbolicGrating{}
	hg.Defaults()
	cmpVal(t, "HyperbolicGrating origin", hg.Eval(0, 0), 1)
	cmpVal(t, "HyperbolicGrating half cycle", hg.Eval(0.25, 0), 0)
	cmpVal(t, "HyperbolicGrating diagonal", hg.Eval(0.25, 0.25), 1) // x^2 - y^2 = 0 on diagonals
}

func TestLineRotation(t *testing.T) {
	ln := &Line{}
	ln.Defaults()
	ln.Len = 0.44
	ln.Thick = 0.12
	ln.Smooth = 0
	sh := NewSheet(0.5, 10)
	horiz := &etensor.Float32{}
	if err := Render(ln, sh, horiz); err != nil {
		t.Fatal(err)
	}
	ln.Orient = 0.5 * math32.Pi
	vert := &etensor.Float32{}
	if err := Render(ln, sh, vert); err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			dif := math32.Abs(vert.Value([]int{row, col}) - horiz.Value([]int{col, row}))
			if dif > 1.0e-4 {
				t.Errorf("LineRotation: row %v col %v: vert %v != horiz transpose %v\n",
					row, col, vert.Value([]int{row, col}), horiz.Value([]int{col, row}))
			}
		}
	}
}

func TestAngle(t *testing.T) {
	an := &Angle{}
	an.Defaults()
	an.Smooth = 0
	cmpVal(t, "Angle upper arm", an.Eval(0.1, 0.1), 1)
	cmpVal(t, "Angle lower arm", an.Eval(0.1, -0.1), 1)
	cmpVal(t, "Angle behind vertex", an.Eval(-0.1, 0), 0)
	cmpVal(t, "Angle beyond arm end", an.Eval(0.25, 0.25), 0)
}

func TestStar(t *testing.T) {
	st := &Star{}
	st.Defaults()
	st.N = 4
	st.Smooth = 0
	cmpVal(t, "Star +x ray", st.Eval(0.1, 0), 1)
	cmpVal(t, "Star +y ray", st.Eval(0, 0.1), 1)
	cmpVal(t, "Star -x ray", st.Eval(-0.1, 0), 1)
	cmpVal(t, "Star between rays", st.Eval(0.1, 0.1), 0)
}

func TestCross(t *testing.T) {
	cr := &Cross{}
	cr.Defaults()
	cr.Smooth = 0
	cmpVal(t, "Cross center", cr.Eval(0, 0), 1)
	cmpVal(t, "Cross bar end", cr.Eval(0.2, 0), 1)
	cmpVal(t, "Cross off bars", cr.Eval(0.1, 0.1), 0)
	cmpVal(t, "Cross beyond end", cr.Eval(0.3, 0), 0)
}

func TestArc(t *testing.T) {
	ac := &Arc{}
	ac.Defaults()
	ac.Len = math32.Pi
	ac.Thick = 0.04
	ac.Smooth = 0
	cmpVal(t, "Arc mid", ac.Eval(0.25, 0), 1)
	cmpVal(t, "Arc end", ac.Eval(0, 0.25), 1)
	cmpVal(t, "Arc outside range", ac.Eval(-0.25, 0), 0)

	ac.Len = 2 * math32.Pi
	cmpVal(t, "Circle closed", ac.Eval(-0.25, 0), 1)
}

func TestComposite(t *testing.T) {
	d1 := &Disk{}
	d1.Defaults()
	d1.Size = 0.2
	d1.Smooth = 0
	d1.X = -0.2
	d2 := &Disk{}
	d2.Defaults()
	d2.Size = 0.2
	d2.Smooth = 0
	d2.X = 0.2
	cp := &Composite{}
	cp.Defaults()
	cp.Add(d1, d2)
	cmpVal(t, "Composite left disk", cp.Eval(-0.2, 0), 1)
	cmpVal(t, "Composite right disk", cp.Eval(0.2, 0), 1)
	cmpVal(t, "Composite between", cp.Eval(0, 0), 0)

	cp.Op = Add
	cn1 := &Constant{}
	cn1.Defaults()
	cn2 := &Constant{}
	cn2.Defaults()
	cp.Pats = []Pattern{cn1, cn2}
	cmpVal(t, "Composite add", cp.Eval(0, 0), 2)
	cp.Op = Mean
	cmpVal(t, "Composite mean", cp.Eval(0, 0), 1)
}

func TestEvalAtOrient(t *testing.T) {
	ln := &Line{}
	ln.Defaults()
	ln.Len = 0 // infinite
	ln.Thick = 0.2
	ln.Smooth = 0
	ln.Orient = 0.5 * math32.Pi
	cmpVal(t, "EvalAt on line", EvalAt(ln, 0.05, 0), 1)
	cmpVal(t, "EvalAt off line", EvalAt(ln, 0.2, 0), 0)
	cmpVal(t, "EvalAt along line", EvalAt(ln, 0, 0.4), 1)
}
