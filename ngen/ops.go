// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ngen

import (
	"math"

	"github.com/goki/ki/kit"
)

// GenOps are arithmetic operators for composing number generators.
type GenOp int

//go:generate stringer -type=GenOp

var KiT_GenOp = kit.Enums.AddEnum(GenOpN, kit.NotBitFlag, nil)

func (ev GenOp) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *GenOp) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	OpAdd GenOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow

	// OpNeg negates the operand (unary)
	OpNeg

	// OpAbs takes the absolute value of the operand (unary)
	OpAbs

	GenOpN
)

// Binary applies a binary operator to the values of two generators,
// yielding another generator.
type Binary struct {
	A  Gen   `desc:"left-hand operand"`
	B  Gen   `desc:"right-hand operand"`
	Op GenOp `desc:"operator applied as A op B"`
}

func (bn *Binary) Gen() float64 {
	a := bn.A.Gen()
	b := bn.B.Gen()
	switch bn.Op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		return math.Mod(a, b)
	case OpPow:
		return math.Pow(a, b)
	}
	return a
}

// Unary applies a unary operator to the value of a generator,
// yielding another generator.
type Unary struct {
	A  Gen   `desc:"operand"`
	Op GenOp `desc:"operator -- OpNeg or OpAbs"`
}

func (un *Unary) Gen() float64 {
	a := un.A.Gen()
	switch un.Op {
	case OpNeg:
		return -a
	case OpAbs:
		return math.Abs(a)
	}
	return a
}

// Bounded silently clamps the values of another generator to the
// given bounds.  Defaults are -Inf, +Inf = no bounds.
type Bounded struct {
	Source Gen     `desc:"generator producing the values"`
	Min    float64 `desc:"lower bound on returned values"`
	Max    float64 `desc:"upper bound on returned values"`
}

func (bd *Bounded) Defaults() {
	bd.Min = math.Inf(-1)
	bd.Max = math.Inf(1)
}

func (bd *Bounded) Gen() float64 {
	v := bd.Source.Gen()
	if v < bd.Min {
		return bd.Min
	}
	if v > bd.Max {
		return bd.Max
	}
	return v
}
