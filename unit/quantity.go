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

// Package unit provides dimensioned physical quantities for marine
// chemistry calculations.
//
// A Quantity couples a value with a vector of base-dimension
// exponents. Values are stored in coherent SI base units regardless of
// the unit they were constructed from, so quantities can be added,
// multiplied and compared without tracking conversion factors, and
// mixing incompatible dimensions is detected immediately. Attempting
// an operation on incompatible quantities panics: like an array index
// out of range, it reports a bug in the calling code, not a runtime
// condition to be handled.
//
// The available units form a fixed catalog (see Unit) that is resolved
// once when the package is first used. pH is carried as its own
// dimension so that acidities cannot leak into ordinary arithmetic;
// Concentration converts a pH into the hydrogen ion concentration it
// stands for.
package unit

import (
	"fmt"
	"math"
)

// Quantity is a value with physical dimensions. The zero value is a
// dimensionless zero. Quantities are immutable: arithmetic returns new
// values and never modifies the operands.
type Quantity struct {
	value float64
	dims  Dimensions
}

// New creates a Quantity with the given value in unit u. The value is
// converted to SI base units for storage: scales are multiplied in and
// offsets added. It panics with *ValueError if value is NaN or
// infinite.
func New(value float64, u Unit) Quantity {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(&ValueError{Value: value, Unit: u})
	}
	ru := lookup(u)
	v := value * ru.scale
	if ru.hasOffset {
		v = value + ru.offset
	}
	return Quantity{value: v, dims: ru.dims}
}

// Value returns the quantity's value in SI base units.
func (q Quantity) Value() float64 { return q.value }

// Dimensions returns a copy of the quantity's dimension vector.
func (q Quantity) Dimensions() Dimensions { return q.dims.clone() }

// Normalize returns the value the quantity would have if expressed in
// unit u. It panics with *DimensionError if u measures a different
// dimension.
func (q Quantity) Normalize(u Unit) float64 {
	ru := lookup(u)
	if !q.dims.Matches(ru.dims) {
		panic(&DimensionError{Op: "Normalize to " + ru.symbol, A: q.dims.clone(), B: ru.dims.clone()})
	}
	if ru.hasOffset {
		return q.value - ru.offset
	}
	return q.value / ru.scale
}

// Check returns a *DimensionError if the quantity cannot be expressed
// in unit u, and nil otherwise. It is the non-panicking counterpart of
// Normalize for validating input read at runtime.
func (q Quantity) Check(u Unit) error {
	ru := lookup(u)
	if !q.dims.Matches(ru.dims) {
		return &DimensionError{Op: "Check against " + ru.symbol, A: q.dims.clone(), B: ru.dims.clone()}
	}
	return nil
}

// Convert expresses q in unit u, returning an error instead of
// panicking if the dimensions do not match.
func Convert(q Quantity, u Unit) (float64, error) {
	if err := q.Check(u); err != nil {
		return math.NaN(), err
	}
	return q.Normalize(u), nil
}

// DimensionsMatch reports whether the two quantities have the same
// dimension vector.
func DimensionsMatch(a, b Quantity) bool {
	return a.dims.Matches(b.dims)
}

// Add returns q + o. It panics with *DimensionError unless both
// quantities have the same dimensions.
func (q Quantity) Add(o Quantity) Quantity {
	if !q.dims.Matches(o.dims) {
		panic(&DimensionError{Op: "Add", A: q.dims.clone(), B: o.dims.clone()})
	}
	return Quantity{value: q.value + o.value, dims: q.dims}
}

// Sub returns q - o. It panics with *DimensionError unless both
// quantities have the same dimensions.
func (q Quantity) Sub(o Quantity) Quantity {
	if !q.dims.Matches(o.dims) {
		panic(&DimensionError{Op: "Sub", A: q.dims.clone(), B: o.dims.clone()})
	}
	return Quantity{value: q.value - o.value, dims: q.dims}
}

// Neg returns the quantity with its value negated.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, dims: q.dims}
}

// Abs returns the quantity with its value replaced by its absolute
// value.
func (q Quantity) Abs() Quantity {
	return Quantity{value: math.Abs(q.value), dims: q.dims}
}

// Mul returns q × o. The dimension vectors are added; exponents that
// cancel are removed, so for example a concentration divided by itself
// is dimensionless rather than carrying zero exponents.
func (q Quantity) Mul(o Quantity) Quantity {
	dims := q.dims.clone()
	if dims == nil && len(o.dims) > 0 {
		dims = make(Dimensions, len(o.dims))
	}
	dims.merge(o.dims, 1)
	if len(dims) == 0 {
		dims = nil
	}
	return Quantity{value: q.value * o.value, dims: dims}
}

// Div returns q ÷ o.
func (q Quantity) Div(o Quantity) Quantity {
	dims := q.dims.clone()
	if dims == nil && len(o.dims) > 0 {
		dims = make(Dimensions, len(o.dims))
	}
	dims.merge(o.dims, -1)
	if len(dims) == 0 {
		dims = nil
	}
	return Quantity{value: q.value / o.value, dims: dims}
}

// Sqrt returns the square root of the quantity, halving every
// dimension exponent. It panics with *PowerError if any exponent is
// odd, since the result would have no integer dimension vector.
func (q Quantity) Sqrt() Quantity {
	var dims Dimensions
	if len(q.dims) > 0 {
		dims = make(Dimensions, len(q.dims))
		for dim, p := range q.dims {
			if p%2 != 0 {
				panic(&PowerError{Op: "Sqrt", Dims: q.dims.clone()})
			}
			dims[dim] = p / 2
		}
	}
	return Quantity{value: math.Sqrt(q.value), dims: dims}
}

// Log returns the natural logarithm of a dimensionless quantity. It
// panics with *DimensionError if the quantity has dimensions, because
// the logarithm of a dimensioned value is not defined.
func (q Quantity) Log() Quantity {
	if len(q.dims) != 0 {
		panic(&DimensionError{Op: "Log", A: q.dims.clone()})
	}
	return Quantity{value: math.Log(q.value)}
}

// Log10 returns the base-10 logarithm of a dimensionless quantity,
// with the same dimension requirement as Log.
func (q Quantity) Log10() Quantity {
	if len(q.dims) != 0 {
		panic(&DimensionError{Op: "Log10", A: q.dims.clone()})
	}
	return Quantity{value: math.Log10(q.value)}
}

// Less reports whether q is less than o. It panics with
// *DimensionError unless both quantities have the same dimensions.
func (q Quantity) Less(o Quantity) bool {
	if !q.dims.Matches(o.dims) {
		panic(&DimensionError{Op: "Less", A: q.dims.clone(), B: o.dims.clone()})
	}
	return q.value < o.value
}

// Equal reports whether q and o have exactly equal values. It panics
// with *DimensionError unless both quantities have the same
// dimensions.
func (q Quantity) Equal(o Quantity) bool {
	if !q.dims.Matches(o.dims) {
		panic(&DimensionError{Op: "Equal", A: q.dims.clone(), B: o.dims.clone()})
	}
	return q.value == o.value
}

// Concentration converts an acidity into the hydrogen ion
// concentration it represents, 10**(-pH) mol/L. It panics with
// *DimensionError if q is not an acidity. This is the only conversion
// between the acidity dimension and the rest of the system; it is
// deliberately one-way, as building a pH from a concentration is the
// caller's choice of scale.
func (q Quantity) Concentration() Quantity {
	if !q.dims.Matches(Dimensions{Acidity: 1}) {
		panic(&DimensionError{Op: "Concentration", A: q.dims.clone(), B: Dimensions{Acidity: 1}})
	}
	return New(math.Pow(10, -q.value), MolePerLiter)
}

// Format makes Quantity satisfy fmt.Formatter, printing the SI value
// followed by the dimension vector.
func (q Quantity) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T{value: %v, dims: %v}", q, q.value, q.dims)
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		w, wOk := fs.Width()
		switch {
		case pOk && wOk:
			fmt.Fprintf(fs, "%*.*"+string(c), w, p, q.value)
		case pOk:
			fmt.Fprintf(fs, "%.*"+string(c), p, q.value)
		case wOk:
			fmt.Fprintf(fs, "%*"+string(c), w, q.value)
		default:
			fmt.Fprintf(fs, "%"+string(c), q.value)
		}
		if len(q.dims) > 0 {
			fmt.Fprintf(fs, " %v", q.dims)
		}
	default:
		fmt.Fprintf(fs, "%%!%c(unit.Quantity=%g)", c, q.value)
	}
}
