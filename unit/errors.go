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

import "fmt"

// The errors in this file report misuse of the package: mixing
// incompatible dimensions, feeding non-finite numbers to constructors,
// or an invalid unit table. They are programmer errors rather than
// runtime conditions, so the operations that detect them panic with
// one of these types instead of returning it. Code handling untrusted
// input can use Check and Convert, which return errors instead.

// ValueError reports a non-finite value passed to a quantity
// constructor.
type ValueError struct {
	Value float64
	Unit  Unit
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("unit: invalid value %v for unit %v", e.Value, e.Unit)
}

// DimensionError reports an operation applied to quantities whose
// dimension vectors are incompatible with it.
type DimensionError struct {
	Op   string
	A, B Dimensions
}

func (e *DimensionError) Error() string {
	if e.B == nil {
		return fmt.Sprintf("unit: %s: invalid dimensions (%v)", e.Op, e.A)
	}
	return fmt.Sprintf("unit: %s: dimension mismatch (%v) != (%v)", e.Op, e.A, e.B)
}

// PowerError reports a root of a quantity whose dimension exponents
// the root does not evenly divide.
type PowerError struct {
	Op   string
	Dims Dimensions
}

func (e *PowerError) Error() string {
	return fmt.Sprintf("unit: %s: dimension exponents in (%v) are not divisible", e.Op, e.Dims)
}

// ConfigError reports an invalid definition in the unit table. It can
// only occur while the registry is being built, so it is detected the
// first time this package is used.
type ConfigError struct {
	Symbol string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unit: invalid definition for %s: %s", e.Symbol, e.Reason)
}
