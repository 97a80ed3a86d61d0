/*
 * molecule.go, part of srreal.
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

	v3 "github.com/rmera/srreal/v3"
)

//Molecule is a finite, non-periodic, set of atoms.
type Molecule struct {
	atoms   []*Atom
	coords  *v3.Matrix
	density float64
}

//NewMolecule returns a molecule with the given atoms and Cartesian coordinates,
//one row per atom. Neither is copied.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil || coords.NVecs() != len(atoms) {
		return nil, fmt.Errorf("srreal/structure: %d atoms but a different number of coordinates", len(atoms))
	}
	for _, v := range atoms {
		if err := v.Check(); err != nil {
			return nil, err
		}
	}
	return &Molecule{atoms: atoms, coords: coords}, nil
}

//Len returns the number of atoms.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//Atom returns the ith atom.
func (M *Molecule) Atom(i int) *Atom {
	return M.atoms[i]
}

//Position returns the coordinates of the ith atom.
func (M *Molecule) Position(i int) [3]float64 {
	return M.coords.Vec(i)
}

//NumberDensity returns the number density set for the molecule, zero by default,
//which gives no baseline in the PDF.
func (M *Molecule) NumberDensity() float64 {
	return M.density
}

//SetNumberDensity sets the number density used for the PDF baseline.
func (M *Molecule) SetNumberDensity(rho float64) {
	M.density = rho
}

//ForEachNeighbor calls f for every other atom within rcut of atom i, in index order.
func (M *Molecule) ForEachNeighbor(i int, rcut float64, f func(j int, d float64, dir [3]float64)) {
	pi := M.coords.Vec(i)
	for j := range M.atoms {
		if j == i {
			continue
		}
		d, dir := distance(pi, M.coords.Vec(j))
		if d > 0 && d <= rcut {
			f(j, d, dir)
		}
	}
}
