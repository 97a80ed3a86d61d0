/*
 * width.go, part of srreal.
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

//Package peak implements the broadening of the PDF peaks: the models that give the
//width of the peak of an atom pair, the Gaussian profile that is accumulated on the
//r-grid for each pair, and the band pass that limits the result to the measured Q-range.
package peak

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

//ErrUnknownType is returned (wrapped) for a peak width model type that is not registered.
var ErrUnknownType = errors.New("srreal/peak: unknown peak width model")

//ErrUnknownParam is returned (wrapped) for a parameter a width model doesn't have.
var ErrUnknownParam = errors.New("srreal/peak: unknown peak width parameter")

//SigmaMin is the smallest peak width allowed. Narrower peaks are widened to it.
const SigmaMin = 1e-5

//fwhmToSigma converts the full width at half maximum of a Gaussian to its standard deviation.
var fwhmToSigma = 1 / math.Sqrt(8*math.Ln2)

//Registered peak width models.
const (
	DebyeWaller = "debye-waller"
	Jeong       = "jeong"
	Constant    = "constant"
)

var widthParams = map[string][]string{
	DebyeWaller: {},
	Jeong:       {},
	Constant:    {"width"},
}

//RegisteredTypes returns the names of the registered width models, sorted.
func RegisteredTypes() []string {
	return []string{Constant, DebyeWaller, Jeong}
}

//Pair contains what a width model needs to know about an atom pair.
type Pair struct {
	D      float64        //distance
	Dir    [3]float64     //unit vector from the first to the second atom
	Ui, Uj *[3][3]float64 //Cartesian displacement tensors
}

//Corr holds the correlated-motion and resolution coefficients of the calculation.
type Corr struct {
	Delta1 float64
	Delta2 float64
	Qbroad float64
}

//WidthModel gives the Gaussian width of the peak of each pair.
type WidthModel struct {
	tp    string
	width float64
	stamp uint64
}

//NewWidthModel returns a width model of the type tp.
func NewWidthModel(tp string) (*WidthModel, error) {
	if _, ok := widthParams[tp]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tp)
	}
	return &WidthModel{tp: tp}, nil
}

//Type returns the type tag of the model.
func (W *WidthModel) Type() string {
	return W.tp
}

//Names returns the names of the parameters of the model.
func (W *WidthModel) Names() []string {
	return append([]string{}, widthParams[W.tp]...)
}

//Has returns true if the model has a parameter called name.
func (W *WidthModel) Has(name string) bool {
	for _, v := range widthParams[W.tp] {
		if v == name {
			return true
		}
	}
	return false
}

//Get returns the value of the parameter name.
func (W *WidthModel) Get(name string) (float64, error) {
	if !W.Has(name) {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, W.tp)
	}
	return W.width, nil
}

//Set sets the value of the parameter name.
func (W *WidthModel) Set(name string, v float64) error {
	if !W.Has(name) {
		return fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, W.tp)
	}
	W.width = v
	W.stamp++
	return nil
}

//Stamp returns a counter that changes every time the model is modified.
func (W *WidthModel) Stamp() uint64 {
	return W.stamp
}

//Copy returns a copy of the model.
func (W *WidthModel) Copy() *WidthModel {
	return &WidthModel{tp: W.tp, width: W.width}
}

//msd returns the mean square displacement of an atom with displacement tensor U
//along the unit vector u.
func msd(u [3]float64, U *[3][3]float64) float64 {
	if U == nil {
		return 0
	}
	var r float64
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			r += u[a] * U[a][b] * u[b]
		}
	}
	return r
}

//Sigma returns the width of the peak for the pair p. If the model gives a
//non-positive width, SigmaMin is returned and clamped is true.
func (W *WidthModel) Sigma(p Pair, c Corr) (sigma float64, clamped bool) {
	var s2 float64
	switch W.tp {
	case Constant:
		s := W.width * fwhmToSigma
		s2 = s * s
		if W.width <= 0 {
			s2 = 0
		}
	case DebyeWaller:
		s2 = msd(p.Dir, p.Ui) + msd(p.Dir, p.Uj)
	case Jeong:
		s2 = msd(p.Dir, p.Ui) + msd(p.Dir, p.Uj)
		qd := c.Qbroad * p.D
		s2 *= 1 - c.Delta1/p.D - c.Delta2/(p.D*p.D) + qd*qd
	default:
		panic("srreal/peak: width model with unregistered type " + W.tp)
	}
	if !(s2 > 0) || math.IsInf(s2, 0) {
		return SigmaMin, true
	}
	s := math.Sqrt(s2)
	if s < SigmaMin {
		return SigmaMin, true
	}
	return s, false
}

func (W *WidthModel) MarshalJSON() ([]byte, error) {
	a := struct {
		Type   string             `json:"type"`
		Params map[string]float64 `json:"params,omitempty"`
	}{Type: W.tp}
	if W.Has("width") {
		a.Params = map[string]float64{"width": W.width}
	}
	return json.Marshal(a)
}

func (W *WidthModel) UnmarshalJSON(b []byte) error {
	var a struct {
		Type   string             `json:"type"`
		Params map[string]float64 `json:"params"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	n, err := NewWidthModel(a.Type)
	if err != nil {
		return err
	}
	for k, v := range a.Params {
		if err := n.Set(k, v); err != nil {
			return err
		}
	}
	W.tp, W.width = n.tp, n.width
	W.stamp++
	return nil
}
