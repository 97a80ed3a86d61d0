/*
 * structure_test.go, part of srreal.
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
	"math"
	"testing"

	v3 "github.com/rmera/srreal/v3"
)

func TestLattice(Te *testing.T) {
	L, err := NewLattice(3, 3, 5, 90, 90, 120)
	if err != nil {
		Te.Fatal(err)
	}
	if v := 9 * 5 * math.Sin(120*deg2rad); math.Abs(L.Volume()-v) > 1e-9 {
		Te.Errorf("hexagonal volume %f, expected %f", L.Volume(), v)
	}
	f := [3]float64{0.25, 0.5, 0.75}
	back := L.Fractional(L.Cartesian(f))
	for k := range f {
		if math.Abs(back[k]-f[k]) > 1e-12 {
			Te.Errorf("fractional round trip gave %v", back)
			break
		}
	}
	if _, err := NewLattice(1, 1, 1, 10, 10, 100); err == nil {
		Te.Error("accepted a flat lattice")
	}
}

func countNeighbors(s Structure, i int, rcut float64) map[float64]int {
	ret := make(map[float64]int)
	s.ForEachNeighbor(i, rcut, func(j int, d float64, dir [3]float64) {
		ret[math.Round(d*1e6)/1e6]++
	})
	return ret
}

func TestCubic(Te *testing.T) {
	L, _ := NewLattice(4, 4, 4, 90, 90, 90)
	C := NewCrystal(L)
	C.AddAtom(NewAtom("Ni", 0.005), [3]float64{})
	if math.Abs(C.NumberDensity()-1.0/64) > 1e-15 {
		Te.Errorf("wrong number density %f", C.NumberDensity())
	}
	n := countNeighbors(C, 0, 4.1)
	if len(n) != 1 || n[4] != 6 {
		Te.Errorf("expected 6 neighbors at 4, got %v", n)
	}
	n = countNeighbors(C, 0, 5.7)
	if n[4] != 6 || n[math.Round(4*math.Sqrt2*1e6)/1e6] != 12 {
		Te.Errorf("wrong second shell %v", n)
	}
	if _, ok := C.SPDiameter(); ok {
		Te.Error("diameter should not be set")
	}
	C.SetSPDiameter(20)
	if d, ok := C.SPDiameter(); !ok || d != 20 {
		Te.Error("diameter not set")
	}
}

func TestCsCl(Te *testing.T) {
	L, _ := NewLattice(4, 4, 4, 90, 90, 90)
	C := NewCrystal(L)
	C.AddAtom(NewAtom("Cs", 0.01), [3]float64{0, 0, 0})
	C.AddAtom(NewAtom("Cl", 0.01), [3]float64{0.5, 0.5, 0.5})
	p := C.Position(1)
	if math.Abs(p[0]-2) > 1e-12 || math.Abs(p[1]-2) > 1e-12 || math.Abs(p[2]-2) > 1e-12 {
		Te.Errorf("wrong Cartesian position %v", p)
	}
	var js []int
	C.ForEachNeighbor(0, 3.5, func(j int, d float64, dir [3]float64) {
		js = append(js, j)
		if math.Abs(d-2*math.Sqrt(3)) > 1e-12 {
			Te.Errorf("unexpected distance %f", d)
		}
		if nr := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]); math.Abs(nr-1) > 1e-12 {
			Te.Errorf("direction not unitary %v", dir)
		}
	})
	if len(js) != 8 {
		Te.Errorf("expected 8 Cl neighbors, got %d", len(js))
	}
	for _, j := range js {
		if j != 1 {
			Te.Errorf("neighbor %d is not Cl", j)
		}
	}
	//a site given outside the unit cell keeps its neighbors
	W := NewCrystal(L)
	W.AddAtom(NewAtom("Cs", 0.01), [3]float64{0, 0, 0})
	W.AddAtom(NewAtom("Cl", 0.01), [3]float64{3.5, -0.5, 0.5})
	if f := W.Fractional(1); f != [3]float64{0.5, 0.5, 0.5} {
		Te.Errorf("fractional coordinates not wrapped: %v", f)
	}
	cnt := 0
	W.ForEachNeighbor(0, 3.5, func(j int, d float64, dir [3]float64) { cnt++ })
	if cnt != 8 {
		Te.Errorf("expected 8 neighbors for the wrapped site, got %d", cnt)
	}
	if err := W.AddAtom(NewAtom("Cl", 0.01), [3]float64{math.NaN(), 0, 0}); err == nil {
		Te.Error("accepted a NaN coordinate")
	}
	bad := NewAtom("Cs", 0.01)
	bad.Occupancy = 1.5
	if err := C.AddAtom(bad, [3]float64{}); err == nil {
		Te.Error("accepted an occupancy above 1")
	}
}

func TestMolecule(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 2.5, 0, 3, 0})
	M, err := NewMolecule([]*Atom{NewAtom("C", 0.005), NewAtom("C", 0.005), NewAtom("O", 0.005)}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	var ds []float64
	M.ForEachNeighbor(0, 2.8, func(j int, d float64, dir [3]float64) {
		ds = append(ds, d)
		if j != 1 || dir != [3]float64{0, 0, 1} {
			Te.Errorf("unexpected neighbor %d %v", j, dir)
		}
	})
	if len(ds) != 1 || ds[0] != 2.5 {
		Te.Errorf("expected one neighbor at 2.5, got %v", ds)
	}
	if M.NumberDensity() != 0 {
		Te.Error("molecules have no density by default")
	}
	if _, err := NewMolecule([]*Atom{NewAtom("C", 0)}, coords); err == nil {
		Te.Error("accepted mismatched coordinates")
	}
}
