/*
 * sftable.go, part of srreal.
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

//Package sftable implements the look up of atomic scattering factors by atom symbol.
//Built-in tables exist for x-rays (forward scattering, i.e. the number of electrons)
//and neutrons (coherent scattering lengths in fm). Custom values can be layered on top
//of the built-in table, and they take precedence on look up.
package sftable

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var (
	//ErrNotFound is returned (wrapped) when a symbol is absent from both
	//the custom values and the built-in table.
	ErrNotFound = errors.New("srreal/sftable: scattering factor not found")
	//ErrUnknownType is returned (wrapped) for an unknown table type.
	ErrUnknownType = errors.New("srreal/sftable: unknown scattering factor table type")
)

//Canonical table types.
const (
	XRay    = "xray"
	Neutron = "neutron"
	Custom  = "custom"
)

//aliases maps every accepted type name to its canonical type.
var aliases = map[string]string{
	"xray":    XRay,
	"x":       XRay,
	"neutron": Neutron,
	"n":       Neutron,
	"custom":  Custom,
}

//RegisteredTypes returns the canonical names of the table types
//accepted by SetRadiationType, sorted.
func RegisteredTypes() []string {
	return []string{Custom, Neutron, XRay}
}

//Table is a scattering factor table. The zero value is not usable, use New.
type Table struct {
	tp     string
	custom map[string]float64
	stamp  uint64
}

//New returns a table of the given type, without custom values.
func New(tp string) (*Table, error) {
	T := &Table{custom: make(map[string]float64)}
	if err := T.SetRadiationType(tp); err != nil {
		return nil, err
	}
	return T, nil
}

//SetRadiationType selects the built-in table. Both the canonical names
//and the short radiation tags ("X", "N") are accepted, case-insensitively.
//Custom values are kept.
func (T *Table) SetRadiationType(tp string) error {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(tp))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, tp)
	}
	T.tp = c
	T.stamp++
	return nil
}

//Type returns the canonical type of the table. It is "custom" only
//for tables without built-in values.
func (T *Table) Type() string {
	return T.tp
}

//RadiationType returns "X" for x-rays, "N" for neutrons and an empty
//string for purely custom tables.
func (T *Table) RadiationType() string {
	switch T.tp {
	case XRay:
		return "X"
	case Neutron:
		return "N"
	}
	return ""
}

//Stamp returns a counter that changes every time the table is modified.
func (T *Table) Stamp() uint64 {
	return T.stamp
}

//Lookup returns the scattering factor for the atom, ion or isotope symbol smbl.
//Custom values are checked first, then the built-in table.
func (T *Table) Lookup(smbl string) (float64, error) {
	if v, ok := T.custom[key(smbl)]; ok {
		return v, nil
	}
	v, err := T.StandardLookup(smbl)
	if err != nil {
		return 0, err
	}
	return v, nil
}

//StandardLookup returns the built-in value for smbl, ignoring custom values.
func (T *Table) StandardLookup(smbl string) (float64, error) {
	el, charge, err := parseSymbol(smbl)
	if err != nil {
		return 0, err
	}
	switch T.tp {
	case XRay:
		z, ok := symbolZ[el]
		if !ok {
			break
		}
		return float64(z - charge), nil
	case Neutron:
		b, ok := symbolNeutronLength[el]
		if !ok {
			break
		}
		return b, nil
	}
	return 0, fmt.Errorf("%w: %q in %s table", ErrNotFound, smbl, T.tp)
}

//SetCustom sets a custom scattering factor for the symbol smbl. Symbols are
//normalized as in Lookup, so "na" and "Na" refer to the same value.
func (T *Table) SetCustom(smbl string, v float64) {
	T.custom[key(smbl)] = v
	T.stamp++
}

//ResetCustom removes the custom value for smbl, if any.
func (T *Table) ResetCustom(smbl string) {
	k := key(smbl)
	if _, ok := T.custom[k]; !ok {
		return
	}
	delete(T.custom, k)
	T.stamp++
}

//ResetAll removes all the custom values.
func (T *Table) ResetAll() {
	T.custom = make(map[string]float64)
	T.stamp++
}

//CustomSymbols returns the sorted, normalized symbols with custom scattering factors.
func (T *Table) CustomSymbols() []string {
	ret := make([]string, 0, len(T.custom))
	for k := range T.custom {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Copy returns a deep copy of the table.
func (T *Table) Copy() *Table {
	r := &Table{tp: T.tp, custom: make(map[string]float64, len(T.custom))}
	for k, v := range T.custom {
		r.custom[k] = v
	}
	return r
}

func (T *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string             `json:"type"`
		Custom map[string]float64 `json:"custom"`
	}{
		Type:   T.tp,
		Custom: T.custom,
	})
}

func (T *Table) UnmarshalJSON(b []byte) error {
	var a struct {
		Type   string             `json:"type"`
		Custom map[string]float64 `json:"custom"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if err := T.SetRadiationType(a.Type); err != nil {
		return err
	}
	T.custom = make(map[string]float64, len(a.Custom))
	for k, v := range a.Custom {
		T.custom[key(k)] = v
	}
	return nil
}

//key returns the normalized form of smbl used for the custom values: the element
//symbol followed by the charge, as in "Na", "Ti4+" or "O2-". Symbols that can't be
//parsed are only trimmed.
func key(smbl string) string {
	el, charge, err := parseSymbol(smbl)
	switch {
	case err != nil:
		return strings.TrimSpace(smbl)
	case charge > 0:
		return fmt.Sprintf("%s%d+", el, charge)
	case charge < 0:
		return fmt.Sprintf("%s%d-", el, -charge)
	}
	return el
}

//parseSymbol splits an atom or ion symbol such as "Ti", "ti", "Ti4+", "O2-",
//"Na+" or "Ti+4" in a normalized element symbol and a charge.
func parseSymbol(smbl string) (string, int, error) {
	s := strings.TrimSpace(smbl)
	i := 0
	for i < len(s) && unicode.IsLetter(rune(s[i])) {
		i++
	}
	if i == 0 || i > 2 {
		return "", 0, fmt.Errorf("%w: malformed symbol %q", ErrNotFound, smbl)
	}
	el := strings.ToUpper(s[:1]) + strings.ToLower(s[1:i])
	rest := s[i:]
	if rest == "" {
		return el, 0, nil
	}
	sign := 0
	digits := ""
	switch {
	case strings.HasSuffix(rest, "+"):
		sign, digits = 1, strings.TrimSuffix(rest, "+")
	case strings.HasSuffix(rest, "-"):
		sign, digits = -1, strings.TrimSuffix(rest, "-")
	case strings.HasPrefix(rest, "+"):
		sign, digits = 1, strings.TrimPrefix(rest, "+")
	case strings.HasPrefix(rest, "-"):
		sign, digits = -1, strings.TrimPrefix(rest, "-")
	default:
		return "", 0, fmt.Errorf("%w: malformed symbol %q", ErrNotFound, smbl)
	}
	if digits == "" {
		return el, sign, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("%w: malformed charge in %q", ErrNotFound, smbl)
	}
	return el, sign * n, nil
}
