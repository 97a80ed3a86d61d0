/*
 * mask_test.go, part of srreal.
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

package mask

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSetGet(Te *testing.T) {
	M := New(3)
	if v, _ := M.Get(0, 2); !v {
		Te.Error("a new mask should include every pair")
	}
	if err := M.Set(0, 2, false); err != nil {
		Te.Fatal(err)
	}
	if v, _ := M.Get(2, 0); v {
		Te.Error("Set should keep the mask symmetric")
	}
	if M.Uniform() {
		Te.Error("mask still uniform after a per-pair edit")
	}
	if _, err := M.Get(3, 0); !errors.Is(err, ErrRange) {
		Te.Errorf("expected a range error, got %v", err)
	}
	if err := M.Set(-1, 0, true); !errors.Is(err, ErrRange) {
		Te.Errorf("expected a range error, got %v", err)
	}
}

func TestInvert(Te *testing.T) {
	M := New(4)
	M.SetAll(false)
	M.Set(0, 1, true)
	M.Set(2, 2, true)
	orig := M.Copy()
	M.Invert()
	if v, _ := M.Get(0, 1); v {
		Te.Error("Invert didn't complement the entry 0,1")
	}
	if M.Count()+orig.Count() != 16 {
		Te.Errorf("a mask and its inverse should cover all pairs: %d+%d", M.Count(), orig.Count())
	}
	M.Invert()
	if !M.Equal(orig) {
		Te.Error("Invert twice is not the identity")
	}
}

func TestResize(Te *testing.T) {
	M := New(2)
	M.SetAll(false)
	M.Set(0, 1, true)
	M.Resize(3)
	if v, _ := M.Get(0, 1); !v {
		Te.Error("Resize lost an existing entry")
	}
	if v, _ := M.Get(2, 0); v {
		Te.Error("new entries should take the fill value (false)")
	}
	M.Invert()
	M.Resize(4)
	if v, _ := M.Get(3, 3); !v {
		Te.Error("the fill value should flip with Invert")
	}
	M.Resize(1)
	if M.Len() != 1 || M.Count() != 1 {
		Te.Errorf("shrinking gave %d atoms and %d included entries", M.Len(), M.Count())
	}
}

func TestJSON(Te *testing.T) {
	M := New(3)
	M.SetAll(false)
	M.Set(0, 1, true)
	j, err := json.Marshal(M)
	if err != nil {
		Te.Fatal(err)
	}
	M2 := new(PairMask)
	if err := json.Unmarshal(j, M2); err != nil {
		Te.Fatal(err)
	}
	if !M.Equal(M2) || M2.Uniform() {
		Te.Errorf("mask changed in the JSON round trip: %s", j)
	}
	if err := json.Unmarshal([]byte(`{"n":2,"mask":[true]}`), M2); err == nil {
		Te.Error("accepted an ill-formed mask")
	}
}
