/*
 * structure.go, part of srreal.
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

//Package structure provides the atomic structures for which PDFs are calculated.
//The calculator only needs the Structure interface; Crystal and Molecule are
//ready-made implementations for periodic and finite systems.
package structure

import (
	"fmt"
	"math"
)

//Atom is one site of a structure.
type Atom struct {
	Symbol    string
	Occupancy float64
	U         [3][3]float64 //Cartesian displacement tensor, in A^2
}

//NewAtom returns a fully-occupied atom with the isotropic displacement uiso.
func NewAtom(symbol string, uiso float64) *Atom {
	A := &Atom{Symbol: symbol, Occupancy: 1}
	A.SetUiso(uiso)
	return A
}

//Uiso returns the isotropic equivalent of the displacement tensor of the atom.
func (A *Atom) Uiso() float64 {
	return (A.U[0][0] + A.U[1][1] + A.U[2][2]) / 3
}

//SetUiso sets an isotropic displacement tensor for the atom.
func (A *Atom) SetUiso(u float64) {
	A.U = [3][3]float64{{u, 0, 0}, {0, u, 0}, {0, 0, u}}
}

//Copy returns a copy of the atom.
func (A *Atom) Copy() *Atom {
	r := *A
	return &r
}

//Check returns an error if the occupancy or the displacements of the atom are not physical.
func (A *Atom) Check() error {
	if A.Occupancy < 0 || A.Occupancy > 1 || math.IsNaN(A.Occupancy) {
		return fmt.Errorf("srreal/structure: occupancy %g of %s out of [0,1]", A.Occupancy, A.Symbol)
	}
	for i := 0; i < 3; i++ {
		if A.U[i][i] < 0 {
			return fmt.Errorf("srreal/structure: negative displacement %g for %s", A.U[i][i], A.Symbol)
		}
		for j := 0; j < i; j++ {
			if A.U[i][j] != A.U[j][i] {
				return fmt.Errorf("srreal/structure: non-symmetric displacement tensor for %s", A.Symbol)
			}
		}
	}
	return nil
}

//Structure is what the PDF calculator needs from a structure.
type Structure interface {
	//Len returns the number of sites.
	Len() int
	//Atom returns the ith site. The calculator doesn't modify it.
	Atom(i int) *Atom
	//Position returns the Cartesian coordinates of the ith site.
	Position(i int) [3]float64
	//NumberDensity returns the number of atoms per A^3, occupancies included.
	NumberDensity() float64
	//ForEachNeighbor calls f for every image of every site j (i included) at a
	//distance 0 < d <= rcut from site i, with the unit vector dir from i to the image.
	//The calls are made in a deterministic order.
	ForEachNeighbor(i int, rcut float64, f func(j int, d float64, dir [3]float64))
}

//ShapeDiameterer is implemented by structures that know the diameter
//of the particle they describe.
type ShapeDiameterer interface {
	//SPDiameter returns the diameter of the particle, and false if it is not set.
	SPDiameter() (float64, bool)
}

func distance(a, b [3]float64) (float64, [3]float64) {
	v := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	d := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if d > 0 {
		v[0] /= d
		v[1] /= d
		v[2] /= d
	}
	return d, v
}
