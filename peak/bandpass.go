/*
 * bandpass.go, part of srreal.
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

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/rmera/srreal/grid"
)

//Ripples is the number of termination ripples, of period 2pi/qmax, by which the
//calculation range is extended on each side before the band pass.
const Ripples = 6

//BandPass limits a curve G(r) to the Q-range [qmin, qmax] of its sine transform
//  F(Q) = Int_0^inf G(r) sin(Q r) dr
//which gives the termination ripples of a measured PDF. It works as a convolution
//with the kernel
//  k(r-r') - k(r+r'),  k(x) = (sin(qmax x) - sin(qmin x)) / (pi x)
//done with FFTs.
type BandPass struct {
	qmin float64
	qmax float64
}

//NewBandPass returns a band pass for the Q-range [qmin, qmax].
func NewBandPass(qmin, qmax float64) (*BandPass, error) {
	if qmin < 0 || !(qmax > qmin) || math.IsInf(qmax, 0) {
		return nil, fmt.Errorf("srreal/peak: invalid Q-range [%g, %g]", qmin, qmax)
	}
	return &BandPass{qmin: qmin, qmax: qmax}, nil
}

//Active returns true if the band pass changes curves sampled every rstep, that is,
//if qmin is not zero or qmax is below the Nyquist frequency of the sampling.
func (B *BandPass) Active(rstep float64) bool {
	return B.qmin > 0 || B.qmax < math.Pi/rstep
}

//Extension returns the distance by which the calculation range is extended on each
//side, so the ripples from the ends of the range don't reach the requested grid.
//It is at most maxext.
func (B *BandPass) Extension(maxext float64) float64 {
	return math.Min(Ripples*2*math.Pi/B.qmax, maxext)
}

func (B *BandPass) kernel(x float64) float64 {
	if x == 0 {
		return (B.qmax - B.qmin) / math.Pi
	}
	return (math.Sin(B.qmax*x) - math.Sin(B.qmin*x)) / (math.Pi * x)
}

//Apply returns a new slice with the values of f, sampled on g, band-passed.
//g can't have negative points.
func (B *BandPass) Apply(g *grid.Grid, f []float64) []float64 {
	n := g.Len()
	if len(f) != n {
		panic("srreal/peak: BandPass.Apply: slice doesn't match the grid")
	}
	ret := make([]float64, n)
	if n == 0 {
		return ret
	}
	d := g.Rstep()
	r0 := g.Rmin()
	//kd[m] = k((m-n+1)d), ks[m] = k(2r0+md)
	kd := make([]float64, 2*n-1)
	ks := make([]float64, 2*n-1)
	for m := range kd {
		kd[m] = B.kernel(float64(m-n+1) * d)
		ks[m] = B.kernel(2*r0 + float64(m)*d)
	}
	rev := make([]float64, n)
	for j, v := range f {
		rev[n-1-j] = v
	}
	cd := convolve(f, kd)
	cs := convolve(rev, ks)
	for i := range ret {
		ret[i] = d * (cd[i+n-1] - cs[i+n-1])
	}
	return ret
}

//convolve returns the linear convolution of x and y.
func convolve(x, y []float64) []float64 {
	n := len(x) + len(y) - 1
	size := 2
	for size < n {
		size <<= 1
	}
	fft := fourier.NewFFT(size)
	px := make([]float64, size)
	py := make([]float64, size)
	copy(px, x)
	copy(py, y)
	cx := fft.Coefficients(nil, px)
	cy := fft.Coefficients(nil, py)
	for i := range cx {
		cx[i] *= cy[i]
	}
	ret := fft.Sequence(nil, cx)
	//gonum doesn't normalize the inverse transform
	for i := range ret {
		ret[i] /= float64(size)
	}
	return ret[:n]
}
