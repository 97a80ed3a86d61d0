/*
 * v3_test.go, part of srreal.
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

package v3

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	if A.Vec(1) != [3]float64{4, 5, 6} {
		Te.Errorf("wrong vector %v", A.Vec(1))
	}
	var e Error
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); !errors.As(err, &e) {
		Te.Errorf("NewMatrix accepted a slice not divisible by 3, or gave %v", err)
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("NewMatrix accepted an empty slice")
	}
}

func TestVecs(Te *testing.T) {
	A := Zeros(2)
	A.Set(1, 0, 3)
	A.Set(1, 1, 4)
	if A.Norm(1) != 5 || A.Norm(0) != 0 {
		Te.Errorf("wrong norms %f %f", A.Norm(0), A.Norm(1))
	}
	C := A.Copy()
	C.Set(0, 0, -1)
	if A.At(0, 0) == -1 {
		Te.Error("Copy shares memory with the original")
	}
	D := Dense2Matrix(mat.NewDense(1, 3, []float64{1, 2, 3}))
	if D.NVecs() != 1 {
		Te.Errorf("expected 1 vector, got %d", D.NVecs())
	}
	defer func() {
		if r := recover(); r != ErrIndexOutOfRange {
			Te.Errorf("expected an out of range panic, got %v", r)
		}
	}()
	A.Vec(2)
}

func TestMul(Te *testing.T) {
	A, _ := NewMatrix([]float64{0.5, 0, 0, 0, 0.5, 0.5})
	cell := mat.NewDense(3, 3, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	R := Zeros(2)
	R.Mul(A, cell)
	exp := [3]float64{0, 1.5, 2}
	got := R.Vec(1)
	for i := range exp {
		if math.Abs(got[i]-exp[i]) > 1e-12 {
			Te.Errorf("Mul gave %v, expected %v", got, exp)
		}
	}
}
