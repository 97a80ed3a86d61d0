/*
 * pdfcalculator.go, part of srreal.
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
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/rmera/srreal/envelope"
	"github.com/rmera/srreal/mask"
	"github.com/rmera/srreal/peak"
	"github.com/rmera/srreal/sftable"
	"github.com/rmera/srreal/structure"
)

//Default values of the double attributes.
const (
	DefaultRmin          = 0.0
	DefaultRmax          = 10.0
	DefaultRstep         = 0.01
	DefaultQmin          = 0.0
	DefaultQmax          = 100.0
	DefaultScale         = 1.0
	DefaultSlope         = 0.0
	DefaultDelta1        = 0.0
	DefaultDelta2        = 0.0
	DefaultPeakPrecision = 3.33e-6
	DefaultMaxExtension  = 10.0
)

//stamps records the modification counters of the parts of the calculator
//that can be changed through the handles it returns.
type stamps struct {
	table, envs, width uint64
}

//PDFCalculator calculates the PDF and the RDF of a structure. A calculator owns all
//its parameters: its pair mask, scattering factor table, envelopes and peak width
//model. Any change to them invalidates the results of the last evaluation, which
//then have to be recalculated with Eval or Calc.
//
//A PDFCalculator can't be used from several goroutines at the same time.
type PDFCalculator struct {
	id string

	rmin          float64
	rmax          float64
	rstep         float64
	qmin          float64
	qmax          float64
	scale         float64
	slope         float64
	delta1        float64
	delta2        float64
	peakprecision float64
	maxextension  float64

	mask      *mask.PairMask
	masksized bool //the mask has been sized for a structure
	table     *sftable.Table
	envs      *envelope.Chain
	width     *peak.WidthModel
	extras    map[string]interface{}
	opts      *Options

	//results of the last evaluation
	evaluated bool
	snapshot  stamps
	r         []float64
	rdf       []float64
	pdf       []float64
}

//NewPDFCalculator returns a calculator with the default parameters: x-ray scattering
//factors, a resolution envelope with no damping, the "jeong" peak width model and
//all pairs included. Only the first options given, if any, are used.
func NewPDFCalculator(options ...*Options) *PDFCalculator {
	P := &PDFCalculator{
		id:            uuid.New().String(),
		rmin:          DefaultRmin,
		rmax:          DefaultRmax,
		rstep:         DefaultRstep,
		qmin:          DefaultQmin,
		qmax:          DefaultQmax,
		scale:         DefaultScale,
		slope:         DefaultSlope,
		delta1:        DefaultDelta1,
		delta2:        DefaultDelta2,
		peakprecision: DefaultPeakPrecision,
		maxextension:  DefaultMaxExtension,
		mask:          mask.New(0),
		extras:        make(map[string]interface{}),
	}
	var err error
	P.table, err = sftable.New(sftable.XRay)
	if err != nil {
		panic(err.Error())
	}
	P.envs, err = envelope.NewChain(envelope.QResolution)
	if err != nil {
		panic(err.Error())
	}
	P.width, err = peak.NewWidthModel(peak.Jeong)
	if err != nil {
		panic(err.Error())
	}
	if len(options) > 0 && options[0] != nil {
		P.opts = options[0]
	} else {
		P.opts = DefaultOptions()
	}
	return P
}

//ID returns the identifier of the calculator. It is kept when the calculator is
//saved and restored, and it is different for copies.
func (P *PDFCalculator) ID() string {
	return P.id
}

//Options returns the options of the calculator. They can be changed.
func (P *PDFCalculator) Options() *Options {
	return P.opts
}

func (P *PDFCalculator) currentStamps() stamps {
	return stamps{table: P.table.Stamp(), envs: P.envs.Stamp(), width: P.width.Stamp()}
}

//invalidate discards the results of the last evaluation.
func (P *PDFCalculator) invalidate() {
	P.evaluated = false
	P.r, P.rdf, P.pdf = nil, nil, nil
}

//Evaluated returns true if the calculator has results for its current configuration.
func (P *PDFCalculator) Evaluated() bool {
	return P.evaluated && P.snapshot == P.currentStamps()
}

//Copy returns a deep copy of the calculator, results included, with a new ID.
func (P *PDFCalculator) Copy() *PDFCalculator {
	r := *P
	r.id = uuid.New().String()
	r.mask = P.mask.Copy()
	r.table = P.table.Copy()
	r.envs = P.envs.Copy()
	r.width = P.width.Copy()
	r.opts = P.opts.Copy()
	r.extras = make(map[string]interface{}, len(P.extras))
	for k, v := range P.extras {
		r.extras[k] = v
	}
	r.r = append([]float64(nil), P.r...)
	r.rdf = append([]float64(nil), P.rdf...)
	r.pdf = append([]float64(nil), P.pdf...)
	r.evaluated = P.Evaluated()
	r.snapshot = r.currentStamps()
	return &r
}

//Pair mask

//MaskAllPairs includes (v==true) or excludes all the atom pairs.
func (P *PDFCalculator) MaskAllPairs(v bool) {
	P.mask.SetAll(v)
	P.invalidate()
}

//SetPairMask includes or excludes the pairs between the atoms i and j, in both orders.
//Until the mask is sized for a structure, by Setup or Eval, it grows to include the
//atoms i and j. Afterwards, indexes beyond the number of sites are a range error.
func (P *PDFCalculator) SetPairMask(i, j int, v bool) error {
	if k := max(i, j); !P.masksized && k >= P.mask.Len() && min(i, j) >= 0 {
		P.mask.Resize(k + 1)
	}
	if err := P.mask.Set(i, j, v); err != nil {
		return newError(ErrRange, err, "SetPairMask", "can't set the mask")
	}
	P.invalidate()
	return nil
}

//GetPairMask returns whether the pairs between atoms i and j are included.
func (P *PDFCalculator) GetPairMask(i, j int) (bool, error) {
	v, err := P.mask.Get(i, j)
	if err != nil {
		return false, newError(ErrRange, err, "GetPairMask", "can't read the mask")
	}
	return v, nil
}

//InvertMask includes the excluded pairs and excludes the included ones.
func (P *PDFCalculator) InvertMask() {
	P.mask.Invert()
	P.invalidate()
}

//PairMask returns a copy of the pair mask.
func (P *PDFCalculator) PairMask() *mask.PairMask {
	return P.mask.Copy()
}

//Setup sizes the pair mask for the structure stru, keeping the pairs already set.
//Pairs with new sites are set to the value last given to MaskAllPairs.
func (P *PDFCalculator) Setup(stru structure.Structure) {
	n := stru.Len()
	P.masksized = true
	if n == P.mask.Len() {
		return
	}
	P.mask.Resize(n)
	P.invalidate()
}

//Scattering factors

//SetScatteringFactorTableByType replaces the scattering factor table with a new
//one of type tp, without custom values.
func (P *PDFCalculator) SetScatteringFactorTableByType(tp string) error {
	t, err := sftable.New(tp)
	if err != nil {
		return newError(ErrLookup, err, "SetScatteringFactorTableByType", "can't set the table")
	}
	P.table = t
	P.invalidate()
	return nil
}

//SetScatteringFactorTable sets a copy of t as the scattering factor table.
func (P *PDFCalculator) SetScatteringFactorTable(t *sftable.Table) {
	P.table = t.Copy()
	P.invalidate()
}

//ScatteringFactorTable returns the scattering factor table of the calculator.
//Changes to it affect the calculator.
func (P *PDFCalculator) ScatteringFactorTable() *sftable.Table {
	return P.table
}

//RadiationType returns "X" for x-rays, "N" for neutrons and an empty string
//for custom scattering factor tables.
func (P *PDFCalculator) RadiationType() string {
	return P.table.RadiationType()
}

//Envelopes

//AddEnvelopeByType adds an envelope of type tp with its default parameters, replacing
//any other envelope of the same type, and returns it. Changes to the returned envelope
//affect the calculator.
func (P *PDFCalculator) AddEnvelopeByType(tp string) (*envelope.Envelope, error) {
	e, err := P.envs.AddByType(tp)
	if err != nil {
		return nil, newError(ErrLookup, err, "AddEnvelopeByType", "can't add envelope")
	}
	P.invalidate()
	return e, nil
}

//EnvelopeByType returns the envelope of type tp in use.
//Changes to the returned envelope affect the calculator.
func (P *PDFCalculator) EnvelopeByType(tp string) (*envelope.Envelope, error) {
	e, err := P.envs.GetByType(tp)
	if err != nil {
		return nil, newError(ErrLookup, err, "EnvelopeByType", "can't get envelope")
	}
	return e, nil
}

//PopEnvelopeByType removes the envelope of type tp, returning false if it was not in use.
func (P *PDFCalculator) PopEnvelopeByType(tp string) bool {
	if !P.envs.PopByType(tp) {
		return false
	}
	P.invalidate()
	return true
}

//ClearEnvelopes removes all the envelopes.
func (P *PDFCalculator) ClearEnvelopes() {
	P.envs.Clear()
	P.invalidate()
}

//UsedEnvelopeTypes returns the sorted types of the envelopes in use.
func (P *PDFCalculator) UsedEnvelopeTypes() []string {
	return P.envs.UsedTypes()
}

//Peak width

//SetPeakWidthModelByType replaces the peak width model with a new one of type tp.
func (P *PDFCalculator) SetPeakWidthModelByType(tp string) error {
	w, err := peak.NewWidthModel(tp)
	if err != nil {
		return newError(ErrLookup, err, "SetPeakWidthModelByType", "can't set the peak width model")
	}
	P.width = w
	P.invalidate()
	return nil
}

//PeakWidthModel returns the peak width model. Changes to it affect the calculator.
func (P *PDFCalculator) PeakWidthModel() *peak.WidthModel {
	return P.width
}

//Extras

//extraValue returns v as one of the types extras can hold: string, float64 or bool.
func extraValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string, float64, bool:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	}
	return nil, fmt.Errorf("srreal: unsupported extra value %v of type %T", v, v)
}

//SetExtra attaches the value v to the calculator under the key k. Values can be
//strings, bools or numbers, which are stored as float64. Extras don't take part in
//the calculation, and don't invalidate its results.
func (P *PDFCalculator) SetExtra(k string, v interface{}) error {
	val, err := extraValue(v)
	if err != nil {
		return newError(ErrConfig, err, "SetExtra", "can't set extra %q", k)
	}
	P.extras[k] = val
	return nil
}

//Extra returns the value of the extra k, and false if there is no such extra.
func (P *PDFCalculator) Extra(k string) (interface{}, bool) {
	v, ok := P.extras[k]
	return v, ok
}

//DeleteExtra removes the extra k, if present.
func (P *PDFCalculator) DeleteExtra(k string) {
	delete(P.extras, k)
}

//ExtraKeys returns the sorted keys of the extras.
func (P *PDFCalculator) ExtraKeys() []string {
	ret := make([]string, 0, len(P.extras))
	for k := range P.extras {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
