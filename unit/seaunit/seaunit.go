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

// Package seaunit provides constructors for the units oceanographic
// data is usually reported in.
package seaunit

import "github.com/oceanmodel/seachem/unit"

// Kelvin returns a thermodynamic temperature.
func Kelvin(v float64) unit.Quantity {
	return unit.New(v, unit.Kelvin)
}

// Celsius returns a temperature given in degrees Celsius.
func Celsius(v float64) unit.Quantity {
	return unit.New(v, unit.Celsius)
}

// Fahrenheit returns a temperature given in degrees Fahrenheit.
func Fahrenheit(v float64) unit.Quantity {
	return unit.New((v+459.67)*5/9, unit.Kelvin)
}

// Salinity returns a practical salinity. Practical salinity is a
// conductivity ratio and therefore dimensionless.
func Salinity(v float64) unit.Quantity {
	return unit.New(v, unit.Dimensionless)
}

// PH returns an acidity on the pH scale.
func PH(v float64) unit.Quantity {
	return unit.New(v, unit.PH)
}

// MolePerKilogram returns a gravimetric concentration, the scale
// carbonate system measurements are made on.
func MolePerKilogram(v float64) unit.Quantity {
	return unit.New(v, unit.MolePerKilogram)
}

// MicromolePerKilogram returns a gravimetric concentration in the
// magnitude dissolved inorganic carbon and alkalinity are reported in.
func MicromolePerKilogram(v float64) unit.Quantity {
	return unit.New(v, unit.MicromolePerKilogram)
}

// MolePerLiter returns a molar concentration.
func MolePerLiter(v float64) unit.Quantity {
	return unit.New(v, unit.MolePerLiter)
}

// MolePerCubicMeter returns a volumetric concentration in SI units.
func MolePerCubicMeter(v float64) unit.Quantity {
	return unit.New(v, unit.MolePerCubicMeter)
}

// Decibar returns a pressure in decibars, the unit of in-situ ocean
// pressure; one decibar corresponds to roughly one meter of depth.
func Decibar(v float64) unit.Quantity {
	return unit.New(v, unit.Decibar)
}

// Microatmosphere returns a gas partial pressure in microatmospheres,
// the unit pCO₂ is reported in.
func Microatmosphere(v float64) unit.Quantity {
	return unit.New(v, unit.Microatmosphere)
}
