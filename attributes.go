/*
 * attributes.go, part of srreal.
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
	"sort"
)

//doubleAttr gives access to one of the fixed double attributes of a PDFCalculator.
type doubleAttr struct {
	get func(*PDFCalculator) float64
	set func(*PDFCalculator, float64)
}

func field(f func(*PDFCalculator) *float64) doubleAttr {
	return doubleAttr{
		get: func(P *PDFCalculator) float64 { return *f(P) },
		set: func(P *PDFCalculator, v float64) { *f(P) = v },
	}
}

//doubleAttrs are the attributes every calculator has. Envelope and peak width model
//parameters are added to them while the envelope or model is in use.
var doubleAttrs = map[string]doubleAttr{
	"rmin":          field(func(P *PDFCalculator) *float64 { return &P.rmin }),
	"rmax":          field(func(P *PDFCalculator) *float64 { return &P.rmax }),
	"rstep":         field(func(P *PDFCalculator) *float64 { return &P.rstep }),
	"qmin":          field(func(P *PDFCalculator) *float64 { return &P.qmin }),
	"qmax":          field(func(P *PDFCalculator) *float64 { return &P.qmax }),
	"scale":         field(func(P *PDFCalculator) *float64 { return &P.scale }),
	"slope":         field(func(P *PDFCalculator) *float64 { return &P.slope }),
	"delta1":        field(func(P *PDFCalculator) *float64 { return &P.delta1 }),
	"delta2":        field(func(P *PDFCalculator) *float64 { return &P.delta2 }),
	"peakprecision": field(func(P *PDFCalculator) *float64 { return &P.peakprecision }),
	"maxextension":  field(func(P *PDFCalculator) *float64 { return &P.maxextension }),
}

//fixedDoubleAttrNames returns the names of the attributes all calculators have, sorted.
func fixedDoubleAttrNames() []string {
	ret := make([]string, 0, len(doubleAttrs))
	for k := range doubleAttrs {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//HasDoubleAttr returns true if name is a double attribute of the calculator
//in its current configuration.
func (P *PDFCalculator) HasDoubleAttr(name string) bool {
	if _, ok := doubleAttrs[name]; ok {
		return true
	}
	return P.envs.HasParam(name) || P.width.Has(name)
}

//GetDoubleAttr returns the value of the double attribute name.
func (P *PDFCalculator) GetDoubleAttr(name string) (float64, error) {
	if a, ok := doubleAttrs[name]; ok {
		return a.get(P), nil
	}
	if P.envs.HasParam(name) {
		return P.envs.Param(name)
	}
	if P.width.Has(name) {
		return P.width.Get(name)
	}
	return 0, newError(ErrLookup, nil, "GetDoubleAttr", "unknown double attribute %q", name)
}

//SetDoubleAttr sets the double attribute name to v. The values are checked when
//the calculator is evaluated.
func (P *PDFCalculator) SetDoubleAttr(name string, v float64) error {
	if a, ok := doubleAttrs[name]; ok {
		a.set(P, v)
		P.invalidate()
		return nil
	}
	var err error
	switch {
	case P.envs.HasParam(name):
		err = P.envs.SetParam(name, v)
	case P.width.Has(name):
		err = P.width.Set(name, v)
	default:
		return newError(ErrLookup, nil, "SetDoubleAttr", "unknown double attribute %q", name)
	}
	if err != nil {
		return newError(ErrLookup, err, "SetDoubleAttr", "can't set %q", name)
	}
	P.invalidate()
	return nil
}

//SetDoubleAttrs sets several double attributes, in the order of their names. It stops
//at the first unknown name, leaving the attributes before it set.
func (P *PDFCalculator) SetDoubleAttrs(attrs map[string]float64) error {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := P.SetDoubleAttr(k, attrs[k]); err != nil {
			return errDecorate(err, "SetDoubleAttrs")
		}
	}
	return nil
}

//DoubleAttrNames returns the sorted names of all the double attributes of the
//calculator in its current configuration.
func (P *PDFCalculator) DoubleAttrNames() []string {
	ret := fixedDoubleAttrNames()
	ret = append(ret, P.envs.ParamNames()...)
	ret = append(ret, P.width.Names()...)
	sort.Strings(ret)
	return ret
}
