/*
 * mask.go, part of srreal.
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

//Package mask implements the pair mask used to select which atom pairs contribute
//to a pair distribution function. Partial PDFs are obtained by masking out pairs.
package mask

import (
	"encoding/json"
	"errors"
	"fmt"
)

//ErrRange is returned (wrapped) when a pair index is outside the mask.
var ErrRange = errors.New("srreal/mask: pair index out of range")

//PairMask is a square matrix of booleans indexed by atom (site) indexes.
//An entry i,j set to true means that the pairs between atom i and atom j
//(including the periodic images of j) are included in the calculation.
//New entries created by Resize take the fill value, which is the last value given
//to SetAll (flipped by each Invert).
type PairMask struct {
	n       int
	fill    bool
	uniform bool   //no per-pair edit since the last SetAll
	m       []bool //row-major
}

//New returns a n x n mask with all the pairs included.
func New(n int) *PairMask {
	if n < 0 {
		panic("srreal/mask: negative mask size")
	}
	M := new(PairMask)
	M.n = n
	M.fill = true
	M.uniform = true
	M.m = make([]bool, n*n)
	for i := range M.m {
		M.m[i] = true
	}
	return M
}

//Len returns the number of atoms the mask spans.
func (M *PairMask) Len() int {
	return M.n
}

//Uniform returns true if all the entries of the mask have the same value, because no
//per-pair change has been done since the mask was created or SetAll was called.
func (M *PairMask) Uniform() bool {
	return M.uniform
}

//Fill returns the value given to entries created by Resize.
func (M *PairMask) Fill() bool {
	return M.fill
}

//Check returns an error if i or j are out of range.
func (M *PairMask) Check(i, j int) error {
	if i < 0 || i >= M.n || j < 0 || j >= M.n {
		return fmt.Errorf("%w: (%d, %d) for a mask of %d atoms", ErrRange, i, j, M.n)
	}
	return nil
}

//Get returns whether the pair i,j is included.
func (M *PairMask) Get(i, j int) (bool, error) {
	if err := M.Check(i, j); err != nil {
		return false, err
	}
	return M.m[M.n*i+j], nil
}

//At returns whether the pair i,j is included. It panics if the indexes are out of range.
//It is meant for loops where the indexes have already been checked.
func (M *PairMask) At(i, j int) bool {
	if i >= M.n || j >= M.n {
		panic(fmt.Sprintf("srreal/mask: At(%d, %d) out of range for %d atoms", i, j, M.n))
	}
	return M.m[M.n*i+j]
}

//Set includes (v==true) or excludes the pairs between i and j. Both the i,j and the j,i
//entries are set, so the mask stays symmetric.
func (M *PairMask) Set(i, j int, v bool) error {
	if err := M.Check(i, j); err != nil {
		return err
	}
	M.m[M.n*i+j] = v
	M.m[M.n*j+i] = v
	M.uniform = false
	return nil
}

//SetAll sets every entry of the mask to v.
func (M *PairMask) SetAll(v bool) {
	for i := range M.m {
		M.m[i] = v
	}
	M.fill = v
	M.uniform = true
}

//Invert complements every entry of the mask, and the fill value.
func (M *PairMask) Invert() {
	for i, v := range M.m {
		M.m[i] = !v
	}
	M.fill = !M.fill
}

//Resize changes the size of the mask to n, keeping the entries for the atoms
//present in both sizes. New entries take the fill value.
func (M *PairMask) Resize(n int) {
	if n < 0 {
		panic("srreal/mask: negative mask size")
	}
	if n == M.n {
		return
	}
	m := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i < M.n && j < M.n {
				m[n*i+j] = M.m[M.n*i+j]
				continue
			}
			m[n*i+j] = M.fill
		}
	}
	M.n = n
	M.m = m
}

//Count returns the number of included entries.
func (M *PairMask) Count() int {
	c := 0
	for _, v := range M.m {
		if v {
			c++
		}
	}
	return c
}

//Copy returns a deep copy of the mask.
func (M *PairMask) Copy() *PairMask {
	r := new(PairMask)
	*r = *M
	r.m = make([]bool, len(M.m))
	copy(r.m, M.m)
	return r
}

//Equal returns true if both masks have the same size, fill value and entries.
func (M *PairMask) Equal(B *PairMask) bool {
	if M.n != B.n || M.fill != B.fill {
		return false
	}
	for i, v := range M.m {
		if B.m[i] != v {
			return false
		}
	}
	return true
}

func (M *PairMask) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		N       int    `json:"n"`
		Fill    bool   `json:"fill"`
		Uniform bool   `json:"uniform"`
		M       []bool `json:"mask"`
	}{
		N:       M.n,
		Fill:    M.fill,
		Uniform: M.uniform,
		M:       M.m,
	})
}

func (M *PairMask) UnmarshalJSON(b []byte) error {
	var a struct {
		N       int    `json:"n"`
		Fill    bool   `json:"fill"`
		Uniform bool   `json:"uniform"`
		M       []bool `json:"mask"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if a.N < 0 || len(a.M) != a.N*a.N {
		return fmt.Errorf("srreal/mask: ill-formed mask: %d entries for %d atoms", len(a.M), a.N)
	}
	M.n = a.N
	M.fill = a.Fill
	M.uniform = a.Uniform
	M.m = a.M
	return nil
}
