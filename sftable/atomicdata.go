/*
 * atomicdata.go, part of srreal.
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

package sftable

//Element symbols ordered by atomic number, starting at H (Z=1).
var symbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
}

//symbolZ maps element symbols to atomic numbers. Filled from symbols in init.
//D is deuterium.
var symbolZ = map[string]int{"D": 1}

func init() {
	for i, s := range symbols {
		symbolZ[s] = i + 1
	}
}

//A map for assigning bound coherent neutron scattering lengths (fm)
//to elements in their natural isotopic abundance.
//Values from Sears, Neutron News 3, 26 (1992). Imaginary parts are ignored.
var symbolNeutronLength = map[string]float64{
	"H":  -3.7390,
	"D":  6.671,
	"He": 3.26,
	"Li": -1.90,
	"Be": 7.79,
	"B":  5.30,
	"C":  6.6460,
	"N":  9.36,
	"O":  5.803,
	"F":  5.654,
	"Ne": 4.566,
	"Na": 3.63,
	"Mg": 5.375,
	"Al": 3.449,
	"Si": 4.1491,
	"P":  5.13,
	"S":  2.847,
	"Cl": 9.5770,
	"Ar": 1.909,
	"K":  3.67,
	"Ca": 4.70,
	"Sc": 12.29,
	"Ti": -3.438,
	"V":  -0.3824,
	"Cr": 3.635,
	"Mn": -3.73,
	"Fe": 9.45,
	"Co": 2.49,
	"Ni": 10.3,
	"Cu": 7.718,
	"Zn": 5.680,
	"Ga": 7.288,
	"Ge": 8.185,
	"As": 6.58,
	"Se": 7.970,
	"Br": 6.795,
	"Kr": 7.81,
	"Rb": 7.09,
	"Sr": 7.02,
	"Y":  7.75,
	"Zr": 7.16,
	"Nb": 7.054,
	"Mo": 6.715,
	"Tc": 6.8,
	"Ru": 7.03,
	"Rh": 5.88,
	"Pd": 5.91,
	"Ag": 5.922,
	"Cd": 4.87,
	"In": 4.065,
	"Sn": 6.225,
	"Sb": 5.57,
	"Te": 5.80,
	"I":  5.28,
	"Xe": 4.92,
	"Cs": 5.42,
	"Ba": 5.07,
	"La": 8.24,
	"Ce": 4.84,
	"Pr": 4.58,
	"Nd": 7.69,
	"Sm": 0.80,
	"Eu": 7.22,
	"Gd": 6.5,
	"Tb": 7.38,
	"Dy": 16.9,
	"Ho": 8.01,
	"Er": 7.79,
	"Tm": 7.07,
	"Yb": 12.43,
	"Lu": 7.21,
	"Hf": 7.7,
	"Ta": 6.91,
	"W":  4.86,
	"Re": 9.2,
	"Os": 10.7,
	"Ir": 10.6,
	"Pt": 9.60,
	"Au": 7.63,
	"Hg": 12.692,
	"Tl": 8.776,
	"Pb": 9.405,
	"Bi": 8.532,
	"Th": 10.31,
	"Pa": 9.1,
	"U":  8.417,
}
