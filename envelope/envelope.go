/*
 * envelope.go, part of srreal.
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

//Package envelope implements the r-dependent multiplicative corrections applied to a
//calculated PDF, such as the damping from the instrument Q-resolution or the finite
//size of spherical particles.
//
//Envelopes are tagged variants: an Envelope holds a type tag and the parameters of
//that type, and the type selects the factor function. A Chain holds at most one
//envelope per type and multiplies their factors.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	//ErrUnknownType is returned (wrapped) for an envelope type that is not registered.
	ErrUnknownType = errors.New("srreal/envelope: unknown envelope type")
	//ErrUnknownParam is returned (wrapped) for a parameter an envelope doesn't have.
	ErrUnknownParam = errors.New("srreal/envelope: unknown envelope parameter")
)

//Registered envelope types
const (
	QResolution    = "qresolution"
	SphericalShape = "sphericalshape"
	StepCut        = "stepcut"
)

//kind describes one envelope type. Parameter values equal to the defaults
//must give a factor of exactly 1.
type kind struct {
	params   []string
	defaults []float64
	factor   func(p []float64, r float64) float64
}

var kinds = map[string]kind{
	QResolution: {
		params:   []string{"qdamp", "qbroad"},
		defaults: []float64{0, 0},
		factor: func(p []float64, r float64) float64 {
			qdamp := p[0]
			if qdamp == 0 {
				return 1
			}
			x := r * qdamp
			return math.Exp(-x * x / 2)
		},
	},
	SphericalShape: {
		params:   []string{"spdiameter"},
		defaults: []float64{0},
		factor: func(p []float64, r float64) float64 {
			d := p[0]
			if d == 0 {
				return 1
			}
			x := math.Abs(r / d)
			if x >= 1 {
				return 0
			}
			return 1 - 1.5*x + 0.5*x*x*x
		},
	},
	StepCut: {
		params:   []string{"stepcut"},
		defaults: []float64{0},
		factor: func(p []float64, r float64) float64 {
			if p[0] == 0 || r <= p[0] {
				return 1
			}
			return 0
		},
	},
}

//RegisteredTypes returns the names of the registered envelope types, sorted.
func RegisteredTypes() []string {
	return []string{QResolution, SphericalShape, StepCut}
}

//TypeOfParam returns the envelope type that owns the parameter name, if any.
func TypeOfParam(name string) (string, bool) {
	for _, tp := range RegisteredTypes() {
		for _, p := range kinds[tp].params {
			if p == name {
				return tp, true
			}
		}
	}
	return "", false
}

//Envelope is one correction function with its parameters.
type Envelope struct {
	tp    string
	p     []float64
	chain *Chain //the chain holding the envelope, if any
}

//New returns an envelope of type tp with the default parameters, which don't
//change the PDF.
func New(tp string) (*Envelope, error) {
	k, ok := kinds[tp]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tp)
	}
	E := &Envelope{tp: tp, p: make([]float64, len(k.defaults))}
	copy(E.p, k.defaults)
	return E, nil
}

//Type returns the type tag of the envelope.
func (E *Envelope) Type() string {
	return E.tp
}

//Names returns the parameter names of the envelope.
func (E *Envelope) Names() []string {
	ret := make([]string, len(kinds[E.tp].params))
	copy(ret, kinds[E.tp].params)
	return ret
}

func (E *Envelope) index(name string) int {
	for i, v := range kinds[E.tp].params {
		if v == name {
			return i
		}
	}
	return -1
}

//Has returns true if the envelope has a parameter called name.
func (E *Envelope) Has(name string) bool {
	return E.index(name) >= 0
}

//Get returns the value of the parameter name.
func (E *Envelope) Get(name string) (float64, error) {
	i := E.index(name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, E.tp)
	}
	return E.p[i], nil
}

//Set sets the value of the parameter name.
func (E *Envelope) Set(name string, v float64) error {
	i := E.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, E.tp)
	}
	E.p[i] = v
	if E.chain != nil {
		E.chain.stamp++
	}
	return nil
}

//Factor returns the value of the envelope at r.
func (E *Envelope) Factor(r float64) float64 {
	return kinds[E.tp].factor(E.p, r)
}

//Copy returns a deep copy of the envelope.
func (E *Envelope) Copy() *Envelope {
	r := &Envelope{tp: E.tp, p: make([]float64, len(E.p))}
	copy(r.p, E.p)
	return r
}

type jsonEnvelope struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"params"`
}

func (E *Envelope) MarshalJSON() ([]byte, error) {
	a := jsonEnvelope{Type: E.tp, Params: make(map[string]float64, len(E.p))}
	for i, n := range kinds[E.tp].params {
		a.Params[n] = E.p[i]
	}
	return json.Marshal(a)
}

func (E *Envelope) UnmarshalJSON(b []byte) error {
	var a jsonEnvelope
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	n, err := New(a.Type)
	if err != nil {
		return err
	}
	for k, v := range a.Params {
		if err := n.Set(k, v); err != nil {
			return err
		}
	}
	*E = *n
	return nil
}
