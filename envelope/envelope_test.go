/*
 * envelope_test.go, part of srreal.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package envelope

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestNeutral(Te *testing.T) {
	for _, tp := range RegisteredTypes() {
		E, err := New(tp)
		if err != nil {
			Te.Fatal(err)
		}
		for _, r := range []float64{0, 0.5, 3, 25, 100} {
			if f := E.Factor(r); f != 1 {
				Te.Errorf("%s with default parameters gave %f at r=%f", tp, f, r)
			}
		}
	}
	if _, err := New("gaussianshape"); !errors.Is(err, ErrUnknownType) {
		Te.Errorf("expected an unknown-type error, got %v", err)
	}
}

func TestSphericalShape(Te *testing.T) {
	E, _ := New(SphericalShape)
	if err := E.Set("spdiameter", 5); err != nil {
		Te.Fatal(err)
	}
	if E.Factor(0) != 1 {
		Te.Errorf("factor at 0 should be 1, got %f", E.Factor(0))
	}
	if E.Factor(5) != 0 || E.Factor(7) != 0 {
		Te.Error("factor should vanish at and beyond the diameter")
	}
	//x=0.5 -> 1 - 0.75 + 0.0625
	if math.Abs(E.Factor(2.5)-0.3125) > 1e-12 {
		Te.Errorf("wrong factor at half the diameter: %f", E.Factor(2.5))
	}
	if err := E.Set("qdamp", 1); !errors.Is(err, ErrUnknownParam) {
		Te.Errorf("expected an unknown-parameter error, got %v", err)
	}
}

func TestChain(Te *testing.T) {
	C, err := NewChain(QResolution)
	if err != nil {
		Te.Fatal(err)
	}
	if err := C.SetParam("qdamp", 0.1); err != nil {
		Te.Fatal(err)
	}
	s := C.Stamp()
	E, _ := C.AddByType(SphericalShape)
	E.Set("spdiameter", 10)
	if C.Stamp() == s {
		Te.Error("stamp didn't change")
	}
	r := 4.0
	exp := math.Exp(-0.08) * (1 - 0.6 + 0.5*0.064)
	if math.Abs(C.Factor(r)-exp) > 1e-12 {
		Te.Errorf("expected %f, got %f", exp, C.Factor(r))
	}
	//replacing keeps a single entry, with default parameters
	C.AddByType(QResolution)
	if C.Len() != 2 {
		Te.Errorf("expected 2 envelopes, got %v", C.UsedTypes())
	}
	if v, _ := C.Param("qdamp"); v != 0 {
		Te.Errorf("replaced envelope kept qdamp=%f", v)
	}
	if !C.PopByType(SphericalShape) || C.PopByType(SphericalShape) {
		Te.Error("PopByType misbehaved")
	}
	if _, err := C.GetByType(SphericalShape); !errors.Is(err, ErrUnknownType) {
		Te.Errorf("expected an error for an envelope not in use, got %v", err)
	}
}

func TestChainApply(Te *testing.T) {
	C, _ := NewChain(QResolution, SphericalShape)
	C.SetParam("qdamp", 0.1)
	C.SetParam("spdiameter", 10)
	r := []float64{0, 2.5, 4, 10, 12}
	y := []float64{1, -2, 3, 4, 5}
	want := make([]float64, len(y))
	for i := range y {
		want[i] = y[i] * C.Factor(r[i])
	}
	C.Apply(r, y)
	for i := range y {
		if y[i] != want[i] {
			Te.Errorf("point %d: expected %f, got %f", i, want[i], y[i])
		}
	}
	if y[3] != 0 || y[4] != 0 {
		Te.Error("values beyond the diameter should vanish")
	}
	defer func() {
		if recover() == nil {
			Te.Error("Apply on slices of different lengths should panic")
		}
	}()
	C.Apply(r, y[:2])
}

func TestChainJSON(Te *testing.T) {
	C, _ := NewChain(QResolution, SphericalShape)
	C.SetParam("spdiameter", 13.3)
	C.SetParam("qbroad", 0.01)
	j, err := json.Marshal(C)
	if err != nil {
		Te.Fatal(err)
	}
	C2 := new(Chain)
	if err := json.Unmarshal(j, C2); err != nil {
		Te.Fatal(err)
	}
	if v, _ := C2.Param("spdiameter"); v != 13.3 {
		Te.Errorf("spdiameter %f after the round trip", v)
	}
	if v, _ := C2.Param("qbroad"); v != 0.01 {
		Te.Errorf("qbroad %f after the round trip", v)
	}
	if len(C2.UsedTypes()) != 2 {
		Te.Errorf("wrong types %v", C2.UsedTypes())
	}
	if err := json.Unmarshal([]byte(`[{"type":"stepcut"},{"type":"stepcut"}]`), C2); err == nil {
		Te.Error("accepted a repeated envelope type")
	}
}
