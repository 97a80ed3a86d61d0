/*
 * profile.go, part of srreal.
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

package peak

import (
	"fmt"
	"math"

	"github.com/rmera/srreal/grid"
)

//Profile accumulates the peak of each pair on an r-grid. Peaks are normalized
//Gaussians averaged over each grid bin, cut where they fall below the peak precision
//relative to their maximum. The limits of the measured Q-range are applied later, to
//the whole curve, by a BandPass.
type Profile struct {
	sqrtln float64 //sqrt(-2 ln precision)
}

//NewProfile returns a profile for the given peak precision.
func NewProfile(precision float64) (*Profile, error) {
	if !(precision > 0 && precision < 1) {
		return nil, fmt.Errorf("srreal/peak: peakprecision must be in (0,1), got %g", precision)
	}
	return &Profile{sqrtln: math.Sqrt(-2 * math.Log(precision))}, nil
}

//HalfWidth returns the distance from the center of a peak of width sigma beyond which
//it is not accumulated.
func (P *Profile) HalfWidth(sigma float64) float64 {
	return sigma * P.sqrtln
}

//Accumulate adds to dst the peak of width sigma centered at center, multiplied by amp.
//dst has one element per point of g. Each point gets the average of the peak over the
//bin of width rstep centered on it, so the sum of the added values times rstep is amp
//if the peak lies within the grid.
func (P *Profile) Accumulate(dst []float64, g *grid.Grid, center, sigma, amp float64) {
	if len(dst) != g.Len() {
		panic("srreal/peak: Accumulate: slice doesn't match the grid")
	}
	hw := P.HalfWidth(sigma)
	lo, hi := g.Span(center-hw, center+hw)
	bin := g.Rstep()
	f := sigma * math.Sqrt2
	for i := lo; i < hi; i++ {
		x := g.R(i) - center
		dst[i] += amp * (math.Erf((x+bin/2)/f) - math.Erf((x-bin/2)/f)) / (2 * bin)
	}
}
