/*
 * state.go, part of srreal.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rmera/srreal/envelope"
	"github.com/rmera/srreal/mask"
	"github.com/rmera/srreal/peak"
	"github.com/rmera/srreal/sftable"
)

//jsonState is the serialized form of a PDFCalculator. Results are not saved,
//a restored calculator has to be evaluated again.
type jsonState struct {
	ID         string                 `json:"id"`
	Doubles    map[string]float64     `json:"doubles"`
	WidthModel *peak.WidthModel       `json:"peakwidthmodel"`
	Mask       *mask.PairMask         `json:"mask"`
	MaskSized  bool                   `json:"masksized"`
	Table      *sftable.Table         `json:"scatteringfactortable"`
	Envelopes  *envelope.Chain        `json:"envelopes"`
	Extras     map[string]interface{} `json:"extras"`
}

//MarshalJSON serializes the full configuration of the calculator: its double
//attributes, peak width model, pair mask, scattering factor table, envelopes and extras.
func (P *PDFCalculator) MarshalJSON() ([]byte, error) {
	s := jsonState{
		ID:         P.id,
		Doubles:    make(map[string]float64, len(doubleAttrs)),
		WidthModel: P.width,
		Mask:       P.mask,
		MaskSized:  P.masksized,
		Table:      P.table,
		Envelopes:  P.envs,
		Extras:     P.extras,
	}
	for k, v := range doubleAttrs {
		s.Doubles[k] = v.get(P)
	}
	return json.Marshal(s)
}

//UnmarshalJSON restores a configuration produced by MarshalJSON. Attributes absent from
//b take their default values. The calculator is left without results.
func (P *PDFCalculator) UnmarshalJSON(b []byte) error {
	var s jsonState
	if err := json.Unmarshal(b, &s); err != nil {
		return newError(ErrConfig, err, "UnmarshalJSON", "can't read the calculator state")
	}
	N := NewPDFCalculator(P.opts)
	if s.ID != "" {
		N.id = s.ID
	}
	for k, v := range s.Doubles {
		a, ok := doubleAttrs[k]
		if !ok {
			return newError(ErrLookup, nil, "UnmarshalJSON", "unknown double attribute %q", k)
		}
		a.set(N, v)
	}
	if s.WidthModel != nil {
		N.width = s.WidthModel
	}
	if s.Mask != nil {
		N.mask = s.Mask
		N.masksized = s.MaskSized
	}
	if s.Table != nil {
		N.table = s.Table
	}
	if s.Envelopes != nil {
		N.envs = s.Envelopes
	}
	for k, v := range s.Extras {
		if err := N.SetExtra(k, v); err != nil {
			return errDecorate(err, "UnmarshalJSON")
		}
	}
	*P = *N
	return nil
}

//WriteState writes the zstd-compressed JSON state of the calculator to w.
func (P *PDFCalculator) WriteState(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return newError(ErrConfig, err, "WriteState", "can't create the compressor")
	}
	if err := json.NewEncoder(enc).Encode(P); err != nil {
		enc.Close()
		return errDecorate(err, "WriteState")
	}
	return enc.Close()
}

//ReadState returns a calculator with the state read from r, as written by WriteState.
func ReadState(r io.Reader) (*PDFCalculator, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, newError(ErrConfig, err, "ReadState", "can't create the decompressor")
	}
	defer dec.Close()
	P := NewPDFCalculator()
	if err := json.NewDecoder(dec).Decode(P); err != nil {
		return nil, newError(ErrConfig, err, "ReadState", "can't read the calculator state")
	}
	return P, nil
}

//SaveState writes the state of the calculator to the file name. The state is
//compressed if the name ends in ".zst", and plain JSON otherwise.
func (P *PDFCalculator) SaveState(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if strings.HasSuffix(name, ".zst") {
		err = P.WriteState(w)
	} else {
		var b []byte
		b, err = json.MarshalIndent(P, "", "  ")
		if err == nil {
			_, err = w.Write(b)
		}
	}
	if err != nil {
		return errDecorate(err, "SaveState")
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

//LoadState returns a calculator with the state in the file name, as written by SaveState.
func LoadState(name string) (*PDFCalculator, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	if strings.HasSuffix(name, ".zst") {
		P, err := ReadState(r)
		return P, errDecorate(err, "LoadState")
	}
	P := NewPDFCalculator()
	if err := json.NewDecoder(r).Decode(P); err != nil {
		return nil, errDecorate(fmt.Errorf("srreal: reading %s: %w", name, err), "LoadState")
	}
	return P, nil
}
