/*
 * eval.go, part of srreal.
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

package srreal

import (
	"log"
	"math"
	"sort"

	"github.com/rmera/srreal/envelope"
	"github.com/rmera/srreal/grid"
	"github.com/rmera/srreal/peak"
	"github.com/rmera/srreal/structure"
)

//check returns an error if the double attributes can't give a PDF.
func (P *PDFCalculator) check() error {
	for _, k := range fixedDoubleAttrNames() {
		v := doubleAttrs[k].get(P)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newError(ErrConfig, nil, "check", "%s is %g", k, v)
		}
	}
	switch {
	case P.rmin < 0:
		return newError(ErrConfig, nil, "check", "rmin can't be negative, got %g", P.rmin)
	case P.rstep <= 0:
		return newError(ErrConfig, nil, "check", "rstep must be positive, got %g", P.rstep)
	case P.rmax < P.rmin:
		return newError(ErrConfig, nil, "check", "rmax %g smaller than rmin %g", P.rmax, P.rmin)
	}
	return nil
}

//site is what the accumulation needs to know about one site of a structure.
type site struct {
	atom *structure.Atom
	sf   float64 //scattering factor
}

//siteResult is the RDF contribution of the pairs of one site.
type siteResult struct {
	rdf     []float64
	clamped int
}

//Eval calculates the PDF and RDF of stru with the current configuration. If the pair
//mask has never been changed pair by pair, it is resized to the number of sites in stru.
//A mask set pair by pair before any structure was known grows to stru. Otherwise, its
//size has to match the structure (see Setup).
func (P *PDFCalculator) Eval(stru structure.Structure) error {
	P.invalidate()
	if err := P.check(); err != nil {
		return errDecorate(err, "Eval")
	}
	g, err := grid.New(P.rmin, P.rmax, P.rstep)
	if err != nil {
		return newError(ErrConfig, err, "Eval", "invalid r-grid")
	}
	prof, err := peak.NewProfile(P.peakprecision)
	if err != nil {
		return newError(ErrConfig, err, "Eval", "invalid peak profile")
	}
	if P.maxextension < 0 {
		return newError(ErrConfig, nil, "Eval", "maxextension can't be negative, got %g", P.maxextension)
	}
	bp, err := peak.NewBandPass(P.qmin, P.qmax)
	if err != nil {
		return newError(ErrConfig, err, "Eval", "invalid Q-range")
	}
	//the calculation grid is extended to keep the ripples from its ends off g
	calc, below := g, 0
	filter := g.Len() > 0 && bp.Active(P.rstep)
	if filter {
		calc, below = g.Extend(bp.Extension(P.maxextension))
	}
	n := stru.Len()
	if P.mask.Len() != n {
		//a mask built pair by pair before any structure was known can grow
		grow := !P.masksized && P.mask.Len() < n
		if !P.mask.Uniform() && !grow {
			return newError(ErrConfig, nil, "Eval", "pair mask for %d sites, but the structure has %d", P.mask.Len(), n)
		}
		if P.mask.Len() != 0 {
			log.Printf("srreal: Pair mask resized from %d to %d sites", P.mask.Len(), n)
		}
		P.mask.Resize(n)
	}
	P.masksized = true
	sites := make([]site, n)
	var occ, occsf float64
	for i := range sites {
		a := stru.Atom(i)
		f, err := P.table.Lookup(a.Symbol)
		if err != nil {
			return newError(ErrLookup, err, "Eval", "site %d", i)
		}
		sites[i] = site{atom: a, sf: f}
		occ += a.Occupancy
		occsf += a.Occupancy * f
	}
	//weights are normalized so that the RDF counts atoms per site, with
	//scattering factors relative to their average.
	var norm float64
	if occsf != 0 {
		norm = occ / (occsf * occsf)
	} else if n > 0 {
		log.Printf("srreal: Average scattering factor is zero, the PDF will be zero")
	}
	beta := P.maskedFraction(sites, occsf)
	rcut := calc.Rmin() + float64(calc.Len())*P.rstep + P.maxextension
	crdf, clamped := P.accumulate(stru, sites, calc, prof, norm, rcut)
	if clamped > 0 {
		log.Printf("srreal: %d peak widths were not positive and were set to %g", clamped, peak.SigmaMin)
	}
	rho := stru.NumberDensity()
	cpdf := calc.Zeros()
	for i, x := range calc.Points() {
		var v float64
		if x > 0 {
			v = crdf[i] / x
		}
		cpdf[i] = v + beta*(P.slope-4*math.Pi*rho)*x
	}
	if filter {
		cpdf = bp.Apply(calc, cpdf)
	}
	r := g.Points()
	rdf := append([]float64(nil), crdf[below:below+g.Len()]...)
	pdf := append([]float64(nil), cpdf[below:below+g.Len()]...)
	for i := range pdf {
		pdf[i] *= P.scale
	}
	P.envs.Apply(r, pdf)
	P.r, P.rdf, P.pdf = r, rdf, pdf
	P.evaluated = true
	P.snapshot = P.currentStamps()
	return nil
}

//maskedFraction returns the weight of the included pairs relative to the weight of all the
//pairs. It scales the baseline of the PDF, so that partial PDFs add up to the full one.
func (P *PDFCalculator) maskedFraction(sites []site, occsf float64) float64 {
	if occsf == 0 {
		return 0
	}
	var b float64
	for i, si := range sites {
		wi := si.atom.Occupancy * si.sf
		for j, sj := range sites {
			if P.mask.At(i, j) {
				b += wi * sj.atom.Occupancy * sj.sf
			}
		}
	}
	return b / (occsf * occsf)
}

//accumulate returns the RDF of stru on g, from the pairs up to rcut apart, and the number
//of clamped peak widths. The sites are
//processed concurrently, in batches of as many goroutines as the Cpus option, but the
//contribution of each site is computed serially, and the contributions are added in order
//of site, so the result doesn't depend on the number of goroutines.
func (P *PDFCalculator) accumulate(stru structure.Structure, sites []site, g *grid.Grid, prof *peak.Profile, norm, rcut float64) ([]float64, int) {
	rdf := g.Zeros()
	clamped := 0
	if norm == 0 || g.Len() == 0 {
		return rdf, clamped
	}
	cpus := P.opts.Cpus()
	if cpus < 1 {
		cpus = 1
	}
	results := make([]chan siteResult, cpus)
	for i := range results {
		results[i] = make(chan siteResult)
	}
	for start := 0; start < len(sites); start += cpus {
		end := start + cpus
		if end > len(sites) {
			end = len(sites)
		}
		for i := start; i < end; i++ {
			go P.siteRDF(results[i-start], stru, i, sites, g, prof, norm, rcut)
		}
		for i := start; i < end; i++ {
			res := <-results[i-start]
			g.Add(rdf, res.rdf)
			clamped += res.clamped
		}
	}
	return rdf, clamped
}

//siteRDF is the worker function for accumulate. It sends the contribution of the
//pairs of the site i through channelout.
func (P *PDFCalculator) siteRDF(channelout chan siteResult, stru structure.Structure, i int, sites []site, g *grid.Grid, prof *peak.Profile, norm, rcut float64) {
	res := siteResult{rdf: g.Zeros()}
	si := sites[i]
	wi := si.atom.Occupancy * si.sf * norm
	corr := peak.Corr{Delta1: P.delta1, Delta2: P.delta2}
	if q, err := P.envs.Param("qbroad"); err == nil {
		corr.Qbroad = q
	}
	if wi != 0 {
		stru.ForEachNeighbor(i, rcut, func(j int, d float64, dir [3]float64) {
			if !P.mask.At(i, j) {
				return
			}
			sj := sites[j]
			w := wi * sj.atom.Occupancy * sj.sf
			if w == 0 {
				return
			}
			sigma, cl := P.width.Sigma(peak.Pair{D: d, Dir: dir, Ui: &si.atom.U, Uj: &sj.atom.U}, corr)
			if cl {
				res.clamped++
			}
			prof.Accumulate(res.rdf, g, d, sigma, w)
		})
	}
	channelout <- res
}

//Calc applies the overrides to the calculator and evaluates the structure stru, returning
//copies of the r-grid and of the PDF. If stru has a particle diameter, it is set in the
//spherical shape envelope, which is added if needed, before applying the overrides.
//Overrides of envelope parameters add the envelope if it is not in use. The overrides
//stay in effect after the call.
func (P *PDFCalculator) Calc(stru structure.Structure, overrides map[string]float64) ([]float64, []float64, error) {
	if sd, ok := stru.(structure.ShapeDiameterer); ok {
		if d, set := sd.SPDiameter(); set {
			if !P.envs.Has(envelope.SphericalShape) {
				if _, err := P.AddEnvelopeByType(envelope.SphericalShape); err != nil {
					return nil, nil, errDecorate(err, "Calc")
				}
			}
			if err := P.SetDoubleAttr("spdiameter", d); err != nil {
				return nil, nil, errDecorate(err, "Calc")
			}
		}
	}
	names := make([]string, 0, len(overrides))
	for k := range overrides {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if !P.HasDoubleAttr(k) {
			if tp, ok := envelope.TypeOfParam(k); ok {
				if _, err := P.AddEnvelopeByType(tp); err != nil {
					return nil, nil, errDecorate(err, "Calc")
				}
			}
		}
		if err := P.SetDoubleAttr(k, overrides[k]); err != nil {
			return nil, nil, errDecorate(err, "Calc")
		}
	}
	if err := P.Eval(stru); err != nil {
		return nil, nil, errDecorate(err, "Calc")
	}
	r, _ := P.Rgrid()
	pdf, _ := P.PDF()
	return r, pdf, nil
}

//results returns a copy of s if the calculator has valid results.
func (P *PDFCalculator) results(s []float64, caller string) ([]float64, error) {
	if !P.Evaluated() {
		return nil, newError(ErrState, nil, caller, "no results for the current configuration, call Eval or Calc")
	}
	return append([]float64(nil), s...), nil
}

//PDF returns a copy of the PDF from the last evaluation.
func (P *PDFCalculator) PDF() ([]float64, error) {
	return P.results(P.pdf, "PDF")
}

//RDF returns a copy of the RDF from the last evaluation.
func (P *PDFCalculator) RDF() ([]float64, error) {
	return P.results(P.rdf, "RDF")
}

//Rgrid returns a copy of the r-grid of the last evaluation.
func (P *PDFCalculator) Rgrid() ([]float64, error) {
	return P.results(P.r, "Rgrid")
}
