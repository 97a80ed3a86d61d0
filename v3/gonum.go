/*
 * gonum.go, part of srreal.
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

//gonum.go contains the Matrix type and most of what is needed to handle it on top of
//gonum's mat package.

//Vectors are rows, i.e. the cartesian (or fractional) coordinates of one point in 3D space.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one per row.
//It embeds a gonum Dense, so it can be used wherever gonum expects a matrix.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps a Dense with 3 columns in a Matrix. It panics if A
//doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as the backing slice, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), "NewMatrix"}
	}
	if rows == 0 {
		return nil, Error{"empty input slice", "NewMatrix"}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector of F as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//Copy returns a copy of F that doesn't share memory with it.
func (F *Matrix) Copy() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is a Matrix, so gonum sees the underlying Dense.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if D, ok := B.(*Matrix); ok {
		B = D.Dense
	}
	F.Dense.Mul(A, B)
}

//Norm returns the euclidean norm of the ith vector in F.
func (F *Matrix) Norm(i int) float64 {
	v := F.Vec(i)
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

//Errors

//Error is the error returned by the functions of the package.
type Error struct {
	message string
	caller  string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("srreal/v3: %s: %s", err.caller, err.message)
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("srreal/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("srreal/v3: index out of range")
)
