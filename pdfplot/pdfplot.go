/*
 * pdfplot.go, part of srreal.
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

//Package pdfplot draws PDF and RDF curves to image files, to have a quick look at
//the results of a calculation.
package pdfplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Curve is one named set of values on an r-grid.
type Curve struct {
	Name string
	Y    []float64
}

//Curves plots the curves against r, with the given title, to filename. The format
//is given by the extension of filename (png, svg, pdf, eps, jpg...).
func Curves(r []float64, curves []Curve, title, filename string) error {
	if len(curves) == 0 {
		return fmt.Errorf("srreal/pdfplot: no curves to plot")
	}
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = "r (A)"
	p.Y.Label.Text = "G(r)"
	p.Add(plotter.NewGrid())
	for i, c := range curves {
		if len(c.Y) != len(r) {
			return fmt.Errorf("srreal/pdfplot: curve %q has %d points, the grid has %d", c.Name, len(c.Y), len(r))
		}
		pts := make(plotter.XYs, len(r))
		for k := range r {
			pts[k].X = r[k]
			pts[k].Y = c.Y[k]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("srreal/pdfplot: curve %q: %w", c.Name, err)
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		if c.Name != "" {
			p.Legend.Add(c.Name, l)
		}
	}
	p.Legend.Top = true
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("srreal/pdfplot: %w", err)
	}
	return nil
}

//PDF plots one G(r) curve to filename.
func PDF(r, g []float64, title, filename string) error {
	return Curves(r, []Curve{{Name: "", Y: g}}, title, filename)
}
