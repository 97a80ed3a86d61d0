/*
 * doc.go, part of srreal.
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

/*Package srreal calculates real-space pair distribution functions (PDFs) and radial
distribution functions (RDFs) of atomic structures, for total scattering analysis.



	**srreal Capabilities**


    Calculates G(r) and R(r) for periodic (crystal) and finite (molecule) structures.
	Any type implementing structure.Structure can be used.

    Broadens each peak with the displacement parameters of the atoms, projected on
	the bond, with optional sharpening from correlated motion (delta1, delta2) and
	resolution broadening (qbroad).

    Limits each peak to the measured Q-range (qmin, qmax), producing the
	termination ripples of experimental PDFs.

    Applies a chain of envelopes to the PDF: Q-resolution damping, spherical
	particle shape, and a sharp cutoff.

    Weights pairs by x-ray or neutron scattering factors, or by custom values.

    Calculates partial PDFs through a pair mask. Partial PDFs over any partition
	of the pairs add up to the full PDF.

    Saves and restores the full state of a calculator as JSON, optionally
	compressed with zstd.


The calculation is concurrent over the sites of the structure, but the results
are exactly the same for any number of goroutines.

Configuration files are handled by the config package, and the results can be
plotted with the pdfplot package.*/
package srreal
