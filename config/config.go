/*
 * config.go, part of srreal.
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

//Package config reads and writes YAML configuration files for PDF calculators.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rmera/srreal"
	"github.com/rmera/srreal/envelope"
	"github.com/rmera/srreal/peak"
	"github.com/rmera/srreal/sftable"
)

//Config is the content of a configuration file. Fields absent from a file
//keep their default values.
type Config struct {
	//Rmin, Rmax and Rstep define the r-grid. Rmax is excluded.
	Rmin  float64 `yaml:"rmin"`
	Rmax  float64 `yaml:"rmax"`
	Rstep float64 `yaml:"rstep"`

	//Qmin and Qmax limit the Q-range of the peaks
	Qmin float64 `yaml:"qmin"`
	Qmax float64 `yaml:"qmax"`

	Scale  float64 `yaml:"scale"`
	Slope  float64 `yaml:"slope"`
	Delta1 float64 `yaml:"delta1"`
	Delta2 float64 `yaml:"delta2"`

	PeakPrecision float64 `yaml:"peakprecision"`
	MaxExtension  float64 `yaml:"maxextension"`

	//Radiation is the type of scattering factor table: xray, neutron or custom
	Radiation string `yaml:"radiation"`

	//Custom are scattering factors that override the table
	Custom map[string]float64 `yaml:"custom,omitempty"`

	//Envelopes are applied in order
	Envelopes []Envelope `yaml:"envelopes"`

	PeakWidth PeakWidth `yaml:"peakwidth"`

	//Cpus is the number of goroutines used. 0 means one per logical CPU.
	Cpus int `yaml:"cpus"`

	//Extras are stored in the calculator as they are
	Extras map[string]interface{} `yaml:"extras,omitempty"`
}

//Envelope is one envelope and its parameters. Parameters not given take
//their neutral values.
type Envelope struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

//PeakWidth is the peak width model.
type PeakWidth struct {
	Model string `yaml:"model"`
	//Width is the full width at half maximum for the constant model
	Width float64 `yaml:"width,omitempty"`
}

//Default returns the configuration of a new calculator.
func Default() *Config {
	return &Config{
		Rmin:          srreal.DefaultRmin,
		Rmax:          srreal.DefaultRmax,
		Rstep:         srreal.DefaultRstep,
		Qmin:          srreal.DefaultQmin,
		Qmax:          srreal.DefaultQmax,
		Scale:         srreal.DefaultScale,
		Slope:         srreal.DefaultSlope,
		Delta1:        srreal.DefaultDelta1,
		Delta2:        srreal.DefaultDelta2,
		PeakPrecision: srreal.DefaultPeakPrecision,
		MaxExtension:  srreal.DefaultMaxExtension,
		Radiation:     sftable.XRay,
		Envelopes:     []Envelope{{Type: envelope.QResolution}},
		PeakWidth:     PeakWidth{Model: peak.Jeong},
	}
}

//Load reads the configuration file path on top of the defaults, and checks it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

//Save writes the configuration to the file path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

//doubles returns the double attributes in the configuration, by name.
func (c *Config) doubles() map[string]float64 {
	return map[string]float64{
		"rmin":          c.Rmin,
		"rmax":          c.Rmax,
		"rstep":         c.Rstep,
		"qmin":          c.Qmin,
		"qmax":          c.Qmax,
		"scale":         c.Scale,
		"slope":         c.Slope,
		"delta1":        c.Delta1,
		"delta2":        c.Delta2,
		"peakprecision": c.PeakPrecision,
		"maxextension":  c.MaxExtension,
	}
}

//Check returns an error if the configuration can't be applied to a calculator,
//or would not allow an evaluation.
func (c *Config) Check() error {
	switch {
	case c.Rmin < 0:
		return fmt.Errorf("rmin can't be negative, got %g", c.Rmin)
	case c.Rstep <= 0:
		return fmt.Errorf("rstep must be positive, got %g", c.Rstep)
	case c.Rmax < c.Rmin:
		return fmt.Errorf("rmax %g smaller than rmin %g", c.Rmax, c.Rmin)
	case c.Qmin < 0 || c.Qmax <= c.Qmin:
		return fmt.Errorf("invalid Q-range [%g, %g]", c.Qmin, c.Qmax)
	case c.PeakPrecision <= 0 || c.PeakPrecision >= 1:
		return fmt.Errorf("peakprecision must be in (0,1), got %g", c.PeakPrecision)
	case c.MaxExtension < 0:
		return fmt.Errorf("maxextension can't be negative, got %g", c.MaxExtension)
	case c.Cpus < 0:
		return fmt.Errorf("cpus can't be negative, got %d", c.Cpus)
	}
	if _, err := sftable.New(c.Radiation); err != nil {
		return err
	}
	chain := new(envelope.Chain)
	for _, e := range c.Envelopes {
		if chain.Has(e.Type) {
			return fmt.Errorf("envelope %q given twice", e.Type)
		}
		env, err := chain.AddByType(e.Type)
		if err != nil {
			return err
		}
		for k, v := range e.Params {
			if err := env.Set(k, v); err != nil {
				return err
			}
		}
	}
	w, err := peak.NewWidthModel(c.PeakWidth.Model)
	if err != nil {
		return err
	}
	if c.PeakWidth.Width != 0 && !w.Has("width") {
		return fmt.Errorf("peak width model %s has no width", w.Type())
	}
	return nil
}

//Apply sets the configuration in the calculator P, replacing its scattering
//factor table, envelopes and peak width model. The pair mask is not changed.
func (c *Config) Apply(P *srreal.PDFCalculator) error {
	if err := c.Check(); err != nil {
		return err
	}
	if err := P.SetDoubleAttrs(c.doubles()); err != nil {
		return err
	}
	if err := P.SetScatteringFactorTableByType(c.Radiation); err != nil {
		return err
	}
	for k, v := range c.Custom {
		P.ScatteringFactorTable().SetCustom(k, v)
	}
	P.ClearEnvelopes()
	for _, e := range c.Envelopes {
		env, err := P.AddEnvelopeByType(e.Type)
		if err != nil {
			return err
		}
		for k, v := range e.Params {
			if err := env.Set(k, v); err != nil {
				return err
			}
		}
	}
	if err := P.SetPeakWidthModelByType(c.PeakWidth.Model); err != nil {
		return err
	}
	if P.PeakWidthModel().Has("width") {
		if err := P.PeakWidthModel().Set("width", c.PeakWidth.Width); err != nil {
			return err
		}
	}
	if c.Cpus > 0 {
		P.Options().Cpus(c.Cpus)
	}
	keys := make([]string, 0, len(c.Extras))
	for k := range c.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := P.SetExtra(k, c.Extras[k]); err != nil {
			return err
		}
	}
	return nil
}

//FromCalculator returns the configuration of the calculator P.
func FromCalculator(P *srreal.PDFCalculator) *Config {
	c := Default()
	get := func(name string) float64 {
		v, err := P.GetDoubleAttr(name)
		if err != nil {
			panic("srreal/config: calculator without attribute " + name)
		}
		return v
	}
	c.Rmin, c.Rmax, c.Rstep = get("rmin"), get("rmax"), get("rstep")
	c.Qmin, c.Qmax = get("qmin"), get("qmax")
	c.Scale, c.Slope = get("scale"), get("slope")
	c.Delta1, c.Delta2 = get("delta1"), get("delta2")
	c.PeakPrecision, c.MaxExtension = get("peakprecision"), get("maxextension")
	t := P.ScatteringFactorTable()
	c.Radiation = t.Type()
	for _, s := range t.CustomSymbols() {
		if c.Custom == nil {
			c.Custom = make(map[string]float64)
		}
		c.Custom[s], _ = t.Lookup(s)
	}
	c.Envelopes = nil
	for _, tp := range P.UsedEnvelopeTypes() {
		env, err := P.EnvelopeByType(tp)
		if err != nil {
			panic(err.Error())
		}
		e := Envelope{Type: tp, Params: make(map[string]float64)}
		for _, n := range env.Names() {
			e.Params[n], _ = env.Get(n)
		}
		c.Envelopes = append(c.Envelopes, e)
	}
	w := P.PeakWidthModel()
	c.PeakWidth = PeakWidth{Model: w.Type()}
	if w.Has("width") {
		c.PeakWidth.Width, _ = w.Get("width")
	}
	c.Cpus = P.Options().Cpus()
	for _, k := range P.ExtraKeys() {
		if c.Extras == nil {
			c.Extras = make(map[string]interface{})
		}
		c.Extras[k], _ = P.Extra(k)
	}
	return c
}
