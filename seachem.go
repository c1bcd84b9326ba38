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

// Package seachem models the inorganic carbon chemistry of seawater.
//
// Given the two measurable state variables of the marine CO₂ system —
// dissolved inorganic carbon and total alkalinity — together with
// temperature and salinity, it solves for pH, the individual carbonate
// species, the partial pressure of CO₂, and the saturation states of
// the calcium carbonate minerals. All calculations are carried out
// with dimensioned quantities from the unit subpackage, so supplying a
// value in the wrong unit is an error rather than a silently wrong
// answer.
package seachem

import (
	"fmt"

	"github.com/oceanmodel/seachem/unit"
)

// Version gives the version number of this version of SeaChem.
const Version = "0.3.1"

// Seawater describes the state of a parcel of seawater. Temperature
// and salinity determine the equilibrium constants; DIC and Alkalinity
// determine where in the carbonate system the parcel sits.
type Seawater struct {
	// Temperature is the water temperature [K].
	Temperature unit.Quantity

	// Salinity is the practical salinity [dimensionless].
	Salinity unit.Quantity

	// DIC is the dissolved inorganic carbon concentration,
	// CO₂* + HCO₃⁻ + CO₃²⁻ [mol kg⁻¹].
	DIC unit.Quantity

	// Alkalinity is the total alkalinity [mol kg⁻¹].
	Alkalinity unit.Quantity
}

// Temperature and salinity ranges over which the equilibrium constant
// parameterizations used here were fitted.
const (
	minTemperature = 271.15 // [K]
	maxTemperature = 323.15 // [K]
	minSalinity    = 1.
	maxSalinity    = 50.
)

// Check returns an error if any of the seawater properties carries the
// wrong dimensions or lies outside the range the chemistry here is
// valid for.
func (w *Seawater) Check() error {
	if err := w.checkTS(); err != nil {
		return err
	}
	for _, v := range []struct {
		name string
		q    unit.Quantity
	}{
		{"DIC", w.DIC},
		{"Alkalinity", w.Alkalinity},
	} {
		if err := v.q.Check(unit.MolePerKilogram); err != nil {
			return fmt.Errorf("seachem: %s: %v", v.name, err)
		}
	}
	if dic := w.DIC.Normalize(unit.MolePerKilogram); dic <= 0 || dic > 0.1 {
		return fmt.Errorf("seachem: DIC %g mol/kg is outside the valid range (0, 0.1]", dic)
	}
	if ta := w.Alkalinity.Normalize(unit.MolePerKilogram); ta <= 0 || ta > 0.1 {
		return fmt.Errorf("seachem: alkalinity %g mol/kg is outside the valid range (0, 0.1]", ta)
	}
	return nil
}

// checkTS validates the temperature and salinity only, for entry
// points that do not require the full carbonate state.
func (w *Seawater) checkTS() error {
	if err := w.Temperature.Check(unit.Kelvin); err != nil {
		return fmt.Errorf("seachem: temperature: %v", err)
	}
	if err := w.Salinity.Check(unit.Dimensionless); err != nil {
		return fmt.Errorf("seachem: salinity: %v", err)
	}
	if t := w.Temperature.Normalize(unit.Kelvin); t < minTemperature || t > maxTemperature {
		return fmt.Errorf("seachem: temperature %g K is outside the valid range [%g, %g]",
			t, minTemperature, maxTemperature)
	}
	if s := w.Salinity.Value(); s < minSalinity || s > maxSalinity {
		return fmt.Errorf("seachem: salinity %g is outside the valid range [%g, %g]",
			s, minSalinity, maxSalinity)
	}
	return nil
}
