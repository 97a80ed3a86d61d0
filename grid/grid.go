/*
 * grid.go, part of srreal.
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

//Package grid implements the uniform r-grid on which PDFs and RDFs are calculated,
//and the accumulation of peak profiles on it.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//eps absorbs the floating point error in (rmax-rmin)/rstep so that a grid
//point that is meant to sit right at rmax is excluded consistently.
const eps = 1e-10

//Grid is the set of points rmin + i*rstep, for i = 0, 1, ... with rmin + i*rstep < rmax.
type Grid struct {
	rmin  float64
	rstep float64
	n     int
}

//New returns a grid from rmin to rmax (exclusive) with step rstep.
func New(rmin, rmax, rstep float64) (*Grid, error) {
	if rstep <= 0 || math.IsNaN(rstep) || math.IsInf(rstep, 0) {
		return nil, fmt.Errorf("srreal/grid: rstep must be positive and finite, got %g", rstep)
	}
	if math.IsNaN(rmin) || math.IsNaN(rmax) || math.IsInf(rmin, 0) || math.IsInf(rmax, 0) {
		return nil, fmt.Errorf("srreal/grid: rmin and rmax must be finite, got %g, %g", rmin, rmax)
	}
	if rmin < 0 {
		return nil, fmt.Errorf("srreal/grid: rmin can't be negative, got %g", rmin)
	}
	G := &Grid{rmin: rmin, rstep: rstep}
	if rmax > rmin {
		G.n = int(math.Ceil((rmax-rmin)/rstep - eps))
	}
	return G, nil
}

//Len returns the number of points in the grid.
func (G *Grid) Len() int {
	return G.n
}

//Rmin returns the first point of the grid.
func (G *Grid) Rmin() float64 {
	return G.rmin
}

//Rstep returns the spacing of the grid.
func (G *Grid) Rstep() float64 {
	return G.rstep
}

//R returns the value of the ith point in the grid.
func (G *Grid) R(i int) float64 {
	return G.rmin + float64(i)*G.rstep
}

//Points returns a new slice with all the points of the grid.
func (G *Grid) Points() []float64 {
	r := make([]float64, G.n)
	for i := range r {
		r[i] = G.R(i)
	}
	return r
}

//Span returns the indexes lo, hi of the first and one-past-last grid points within
//[a, b]. lo==hi means that there are no points in the interval.
func (G *Grid) Span(a, b float64) (int, int) {
	if b < a || G.n == 0 {
		return 0, 0
	}
	lo := int(math.Ceil((a - G.rmin) / G.rstep))
	hi := int(math.Floor((b-G.rmin)/G.rstep)) + 1
	if lo < 0 {
		lo = 0
	}
	if lo > G.n {
		lo = G.n
	}
	if hi > G.n {
		hi = G.n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

//Zeros returns a zero-filled slice with one element per grid point.
func (G *Grid) Zeros() []float64 {
	return make([]float64, G.n)
}

//Add adds the values in src to dst, point by point. Both must have the length of the grid.
func (G *Grid) Add(dst, src []float64) {
	if len(dst) != G.n || len(src) != G.n {
		panic("srreal/grid: Add: slices don't match the grid")
	}
	floats.Add(dst, src)
}

//Extend returns a grid with the points of G and as many points with the same spacing
//as fit within ext below and above it, without going below zero. It also returns the
//number of points added below, which is the index of the first point of G in the new grid.
func (G *Grid) Extend(ext float64) (*Grid, int) {
	if G.n == 0 || !(ext > 0) {
		return &Grid{rmin: G.rmin, rstep: G.rstep, n: G.n}, 0
	}
	above := int(math.Ceil(ext/G.rstep - eps))
	below := above
	if m := int(math.Floor(G.rmin/G.rstep + eps)); m < below {
		below = m
	}
	rmin := math.Max(0, G.rmin-float64(below)*G.rstep)
	return &Grid{rmin: rmin, rstep: G.rstep, n: G.n + below + above}, below
}
