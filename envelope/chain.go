/*
 * chain.go, part of srreal.
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

package envelope

import (
	"encoding/json"
	"fmt"
	"sort"
)

//Chain is an ordered set of envelopes, at most one per type.
type Chain struct {
	e     []*Envelope
	stamp uint64
}

//NewChain returns a chain with envelopes of the given types, in order.
func NewChain(types ...string) (*Chain, error) {
	C := new(Chain)
	for _, tp := range types {
		if _, err := C.AddByType(tp); err != nil {
			return nil, err
		}
	}
	return C, nil
}

func (C *Chain) index(tp string) int {
	for i, v := range C.e {
		if v.tp == tp {
			return i
		}
	}
	return -1
}

//AddByType adds an envelope of type tp with the default parameters and returns it.
//If the chain already has an envelope of that type, it is replaced in the same position.
func (C *Chain) AddByType(tp string) (*Envelope, error) {
	E, err := New(tp)
	if err != nil {
		return nil, err
	}
	E.chain = C
	C.stamp++
	if i := C.index(tp); i >= 0 {
		C.e[i].chain = nil
		C.e[i] = E
		return E, nil
	}
	C.e = append(C.e, E)
	return E, nil
}

//GetByType returns the envelope of type tp in the chain. Changes to the
//returned envelope affect the chain.
func (C *Chain) GetByType(tp string) (*Envelope, error) {
	if i := C.index(tp); i >= 0 {
		return C.e[i], nil
	}
	if _, ok := kinds[tp]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tp)
	}
	return nil, fmt.Errorf("%w: %q is not in use", ErrUnknownType, tp)
}

//Has returns true if the chain has an envelope of type tp.
func (C *Chain) Has(tp string) bool {
	return C.index(tp) >= 0
}

//PopByType removes the envelope of type tp, returning false if it was not there.
func (C *Chain) PopByType(tp string) bool {
	i := C.index(tp)
	if i < 0 {
		return false
	}
	C.e[i].chain = nil
	C.e = append(C.e[:i], C.e[i+1:]...)
	C.stamp++
	return true
}

//Clear removes all the envelopes.
func (C *Chain) Clear() {
	for _, v := range C.e {
		v.chain = nil
	}
	C.e = nil
	C.stamp++
}

//UsedTypes returns the sorted types of the envelopes in the chain.
func (C *Chain) UsedTypes() []string {
	ret := make([]string, 0, len(C.e))
	for _, v := range C.e {
		ret = append(ret, v.tp)
	}
	sort.Strings(ret)
	return ret
}

//Len returns the number of envelopes in the chain.
func (C *Chain) Len() int {
	return len(C.e)
}

//Stamp returns a counter that changes whenever the chain or any of
//its envelopes is modified.
func (C *Chain) Stamp() uint64 {
	return C.stamp
}

//Factor returns the product of the factors of all the envelopes at r.
func (C *Chain) Factor(r float64) float64 {
	f := 1.0
	for _, v := range C.e {
		f *= v.Factor(r)
	}
	return f
}

//Apply multiplies each y[i] by the chain factor at r[i].
func (C *Chain) Apply(r, y []float64) {
	if len(r) != len(y) {
		panic("srreal/envelope: Apply: r and y lengths differ")
	}
	for i := range y {
		y[i] *= C.Factor(r[i])
	}
}

//ParamNames returns the names of the parameters of all envelopes in the chain.
func (C *Chain) ParamNames() []string {
	var ret []string
	for _, v := range C.e {
		ret = append(ret, v.Names()...)
	}
	return ret
}

func (C *Chain) owner(name string) *Envelope {
	for _, v := range C.e {
		if v.Has(name) {
			return v
		}
	}
	return nil
}

//HasParam returns true if an envelope in the chain has the parameter name.
func (C *Chain) HasParam(name string) bool {
	return C.owner(name) != nil
}

//Param returns the value of the parameter name of the envelope in the chain that has it.
func (C *Chain) Param(name string) (float64, error) {
	E := C.owner(name)
	if E == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return E.Get(name)
}

//SetParam sets the parameter name of the envelope in the chain that has it.
func (C *Chain) SetParam(name string, v float64) error {
	E := C.owner(name)
	if E == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return E.Set(name, v)
}

//Copy returns a deep copy of the chain.
func (C *Chain) Copy() *Chain {
	r := new(Chain)
	r.e = make([]*Envelope, len(C.e))
	for i, v := range C.e {
		r.e[i] = v.Copy()
		r.e[i].chain = r
	}
	return r
}

func (C *Chain) MarshalJSON() ([]byte, error) {
	e := C.e
	if e == nil {
		e = []*Envelope{}
	}
	return json.Marshal(e)
}

func (C *Chain) UnmarshalJSON(b []byte) error {
	var e []*Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, v := range e {
		if seen[v.tp] {
			return fmt.Errorf("srreal/envelope: repeated envelope type %q", v.tp)
		}
		seen[v.tp] = true
		v.chain = C
	}
	C.e = e
	C.stamp++
	return nil
}
