/*
Copyright © 2018 the SeaChem authors.
This file is part of SeaChem.

SeaChem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SeaChem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SeaChem.  If not, see <http://www.gnu.org/licenses/>.
*/

package unit

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Dimension is one of the base physical dimensions that quantities in
// this package are measured against.
type Dimension int

// The base dimensions. Acidity is not an SI dimension; it tags pH
// values so that they cannot be silently mixed with concentrations or
// other dimensionless numbers.
const (
	Length Dimension = iota + 1
	Mass
	Time
	Amount
	Temperature
	Current
	Acidity
	lastDimension
)

// dimensionSymbols holds the symbols used when printing dimension
// vectors. They are the symbols of the base units each dimension is
// measured in.
var dimensionSymbols = [lastDimension]string{
	Length:      "m",
	Mass:        "kg",
	Time:        "s",
	Amount:      "mol",
	Temperature: "K",
	Current:     "A",
	Acidity:     "pH",
}

func (d Dimension) String() string {
	if d <= 0 || d >= lastDimension {
		return "unknownDimension(" + strconv.Itoa(int(d)) + ")"
	}
	return dimensionSymbols[d]
}

// Dimensions represents a dimension vector: the exponent of each base
// dimension a quantity is composed of. Dimensions with a zero exponent
// are never stored; an empty or nil map is dimensionless.
type Dimensions map[Dimension]int

// Matches reports whether the two dimension vectors are equal.
// A nil map and an empty map match.
func (d Dimensions) Matches(o Dimensions) bool {
	if len(d) != len(o) {
		return false
	}
	for dim, pow := range d {
		if o[dim] != pow {
			return false
		}
	}
	return true
}

// clone returns a copy of d that shares no storage with it.
func (d Dimensions) clone() Dimensions {
	if len(d) == 0 {
		return nil
	}
	o := make(Dimensions, len(d))
	for dim, pow := range d {
		o[dim] = pow
	}
	return o
}

// merge adds n times the exponents of o into d, deleting entries that
// cancel to zero so that equal vectors stay equal as maps.
func (d Dimensions) merge(o Dimensions, n int) {
	for dim, pow := range o {
		if cur := d[dim]; cur == -pow*n {
			delete(d, dim)
		} else {
			d[dim] = cur + pow*n
		}
	}
}

func (d Dimensions) String() string {
	// Map iteration order is unstable, so sort by symbol for printing.
	atoms := make(unitPrinters, 0, len(d))
	for dim, pow := range d {
		if pow != 0 {
			atoms = append(atoms, atom{dim, pow})
		}
	}
	sort.Sort(atoms)
	var b bytes.Buffer
	for i, a := range atoms {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, a.Dimension)
		if a.pow != 1 {
			fmt.Fprintf(&b, "^%d", a.pow)
		}
	}
	return b.String()
}

type atom struct {
	Dimension
	pow int
}

type unitPrinters []atom

func (u unitPrinters) Len() int      { return len(u) }
func (u unitPrinters) Swap(i, j int) { u[i], u[j] = u[j], u[i] }
func (u unitPrinters) Less(i, j int) bool {
	// Positive exponents before negative ones, then by symbol.
	if u[i].pow > 0 && u[j].pow < 0 {
		return true
	}
	if u[i].pow < 0 && u[j].pow > 0 {
		return false
	}
	return u[i].String() < u[j].String()
}
