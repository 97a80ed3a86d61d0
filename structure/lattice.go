/*
 * lattice.go, part of srreal.
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

package structure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/srreal/v3"
)

const deg2rad = math.Pi / 180

//Lattice is a crystal lattice in the standard orientation: a along x, b in the xy plane.
type Lattice struct {
	abc    [3]float64
	angles [3]float64 //alpha, beta, gamma, in degrees
	base   *v3.Matrix //lattice vectors, one per row
	recip  *v3.Matrix //reciprocal vectors (without 2pi), one per row
	volume float64
}

//NewLattice returns the lattice with parameters a, b, c (A) and alpha, beta, gamma (degrees).
func NewLattice(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if !(a > 0 && b > 0 && c > 0) {
		return nil, fmt.Errorf("srreal/structure: lattice lengths must be positive, got %g %g %g", a, b, c)
	}
	ca, cb, cg := math.Cos(alpha*deg2rad), math.Cos(beta*deg2rad), math.Cos(gamma*deg2rad)
	sg := math.Sin(gamma * deg2rad)
	cy := (ca - cb*cg) / sg
	cz2 := 1 - cb*cb - cy*cy
	if !(cz2 > 0) || sg == 0 {
		return nil, fmt.Errorf("srreal/structure: impossible lattice angles %g %g %g", alpha, beta, gamma)
	}
	base, err := v3.NewMatrix([]float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		c * cb, c * cy, c * math.Sqrt(cz2),
	})
	if err != nil {
		return nil, err
	}
	L := &Lattice{abc: [3]float64{a, b, c}, angles: [3]float64{alpha, beta, gamma}, base: base}
	L.volume = math.Abs(mat.Det(base.Dense))
	//the rows of the transposed inverse are the reciprocal vectors
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(base.Dense); err != nil {
		return nil, fmt.Errorf("srreal/structure: singular lattice: %w", err)
	}
	L.recip = v3.Dense2Matrix(mat.DenseCopyOf(inv.T()))
	return L, nil
}

//Parameters returns a, b, c, alpha, beta, gamma.
func (L *Lattice) Parameters() (a, b, c, alpha, beta, gamma float64) {
	return L.abc[0], L.abc[1], L.abc[2], L.angles[0], L.angles[1], L.angles[2]
}

//Volume returns the volume of the unit cell.
func (L *Lattice) Volume() float64 {
	return L.volume
}

//Base returns a copy of the lattice vectors, one per row.
func (L *Lattice) Base() *v3.Matrix {
	return L.base.Copy()
}

//Cartesian returns the Cartesian coordinates of a point with fractional coordinates frac.
func (L *Lattice) Cartesian(frac [3]float64) [3]float64 {
	var r [3]float64
	for k := 0; k < 3; k++ {
		r[k] = frac[0]*L.base.At(0, k) + frac[1]*L.base.At(1, k) + frac[2]*L.base.At(2, k)
	}
	return r
}

//Fractional returns the fractional coordinates of the Cartesian point cart.
func (L *Lattice) Fractional(cart [3]float64) [3]float64 {
	var r [3]float64
	for k := 0; k < 3; k++ {
		r[k] = cart[0]*L.recip.At(k, 0) + cart[1]*L.recip.At(k, 1) + cart[2]*L.recip.At(k, 2)
	}
	return r
}

//translations returns, for each lattice vector, the number of cells needed on
//each side of the origin so that every point within rcut of the unit cell is covered.
func (L *Lattice) translations(rcut float64) [3]int {
	var n [3]int
	for k := 0; k < 3; k++ {
		n[k] = int(math.Ceil(rcut*L.recip.Norm(k))) + 1
	}
	return n
}
