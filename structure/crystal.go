/*
 * crystal.go, part of srreal.
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
	"sync"

	v3 "github.com/rmera/srreal/v3"
)

//Crystal is a periodic structure: a lattice plus the sites of its unit cell
//in fractional coordinates.
type Crystal struct {
	lat    *Lattice
	atoms  []*Atom
	frac   []float64
	cart   *v3.Matrix //cache, rebuilt when sites are added
	mu     sync.Mutex
	spd    float64
	hasSPD bool
}

//NewCrystal returns an empty crystal with the lattice L.
func NewCrystal(L *Lattice) *Crystal {
	return &Crystal{lat: L}
}

//Lattice returns the lattice of the crystal.
func (C *Crystal) Lattice() *Lattice {
	return C.lat
}

//AddAtom adds the site a at fractional coordinates frac, which are wrapped into
//the unit cell, [0,1). The atom is not copied.
func (C *Crystal) AddAtom(a *Atom, frac [3]float64) error {
	if err := a.Check(); err != nil {
		return err
	}
	for k, v := range frac {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("srreal/structure: non-finite fractional coordinate %g", v)
		}
		frac[k] = v - math.Floor(v)
		if frac[k] >= 1 {
			frac[k] = 0
		}
	}
	C.mu.Lock()
	defer C.mu.Unlock()
	C.atoms = append(C.atoms, a)
	C.frac = append(C.frac, frac[:]...)
	C.cart = nil
	return nil
}

//Len returns the number of sites in the unit cell.
func (C *Crystal) Len() int {
	return len(C.atoms)
}

//Atom returns the ith site.
func (C *Crystal) Atom(i int) *Atom {
	return C.atoms[i]
}

//Fractional returns the fractional coordinates of the ith site, within the unit cell.
func (C *Crystal) Fractional(i int) [3]float64 {
	return [3]float64{C.frac[3*i], C.frac[3*i+1], C.frac[3*i+2]}
}

func (C *Crystal) coords() *v3.Matrix {
	C.mu.Lock()
	defer C.mu.Unlock()
	if C.cart != nil {
		return C.cart
	}
	f, err := v3.NewMatrix(C.frac)
	if err != nil {
		panic(fmt.Sprintf("srreal/structure: crystal with no sites: %v", err))
	}
	C.cart = v3.Zeros(len(C.atoms))
	C.cart.Mul(f, C.lat.base)
	return C.cart
}

//Position returns the Cartesian coordinates of the ith site.
func (C *Crystal) Position(i int) [3]float64 {
	return C.coords().Vec(i)
}

//NumberDensity returns the total occupancy of the unit cell over its volume.
func (C *Crystal) NumberDensity() float64 {
	var occ float64
	for _, v := range C.atoms {
		occ += v.Occupancy
	}
	return occ / C.lat.Volume()
}

//SetSPDiameter sets the diameter of the spherical particle the crystal is cut into.
//Zero means an infinite crystal.
func (C *Crystal) SetSPDiameter(d float64) {
	C.spd = d
	C.hasSPD = true
}

//SPDiameter returns the particle diameter and whether it was set.
func (C *Crystal) SPDiameter() (float64, bool) {
	return C.spd, C.hasSPD
}

//ForEachNeighbor calls f for every periodic image of every site within rcut of site i.
//Images are visited site by site, and for each site in order of the lattice translations.
func (C *Crystal) ForEachNeighbor(i int, rcut float64, f func(j int, d float64, dir [3]float64)) {
	if rcut <= 0 {
		return
	}
	cart := C.coords()
	pi := cart.Vec(i)
	n := C.lat.translations(rcut)
	b := C.lat.base
	for j := range C.atoms {
		pj := cart.Vec(j)
		for x := -n[0]; x <= n[0]; x++ {
			for y := -n[1]; y <= n[1]; y++ {
				for z := -n[2]; z <= n[2]; z++ {
					var img [3]float64
					for k := 0; k < 3; k++ {
						img[k] = pj[k] + float64(x)*b.At(0, k) + float64(y)*b.At(1, k) + float64(z)*b.At(2, k)
					}
					d, dir := distance(pi, img)
					if d > 0 && d <= rcut {
						f(j, d, dir)
					}
				}
			}
		}
	}
}
