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

// Package electrolysis calculates reversible potentials and energy
// requirements for the electrode reactions of seawater electrolysis.
//
// All potentials are relative to the standard hydrogen electrode and
// assume unit activity for the gases. Overpotentials are kinetic and
// electrode-specific, so they are left to the caller; what this
// package provides are the thermodynamic floors.
package electrolysis

import (
	"math"

	"github.com/oceanmodel/seachem/unit"
)

// Physical constants (CODATA 2014).
var (
	gasConstant = unit.New(8.3144598, unit.JoulePerMoleKelvin)
	faraday     = unit.New(96485.33289, unit.CoulombPerMole)
)

// Standard electrode potentials at 25 °C [V vs SHE].
var (
	// OxygenStandardPotential is for O₂ + 4H⁺ + 4e⁻ → 2H₂O.
	OxygenStandardPotential = unit.New(1.229, unit.Volt)

	// ChlorineStandardPotential is for Cl₂ + 2e⁻ → 2Cl⁻.
	ChlorineStandardPotential = unit.New(1.358, unit.Volt)
)

// NernstSlope returns RT/F, the thermal voltage that scales all
// activity corrections [V].
func NernstSlope(T unit.Quantity) unit.Quantity {
	return gasConstant.Mul(T).Div(faraday)
}

// decade returns RT ln(10)/F, the potential shift per pH unit [V].
func decade(T unit.Quantity) unit.Quantity {
	return NernstSlope(T).Mul(unit.New(math.Ln10, unit.Dimensionless))
}

// HydrogenPotential returns the reversible potential of the hydrogen
// evolution reaction 2H⁺ + 2e⁻ → H₂ at the given temperature and pH
// [V]. It falls by one Nernst decade per pH unit.
func HydrogenPotential(T, pH unit.Quantity) unit.Quantity {
	ph := unit.New(pH.Normalize(unit.PH), unit.Dimensionless)
	return decade(T).Mul(ph).Neg()
}

// OxygenPotential returns the reversible potential of the oxygen
// evolution reaction at the given temperature and pH [V].
func OxygenPotential(T, pH unit.Quantity) unit.Quantity {
	ph := unit.New(pH.Normalize(unit.PH), unit.Dimensionless)
	return OxygenStandardPotential.Sub(decade(T).Mul(ph))
}

// ChlorinePotential returns the reversible potential of chlorine
// evolution from a solution with the given chloride concentration [V].
// The chloride activity coefficient is taken as one.
func ChlorinePotential(T, chloride unit.Quantity) unit.Quantity {
	ratio := chloride.Div(unit.New(1, unit.MolePerLiter))
	return ChlorineStandardPotential.Sub(NernstSlope(T).Mul(ratio.Log()))
}

// ChlorineSelectivityGap returns the difference between the chlorine
// and oxygen reversible potentials at an anode [V]. It is positive in
// seawater: oxygen evolution is thermodynamically preferred, and
// chlorine forms anyway only because its kinetics are faster on most
// anode materials.
func ChlorineSelectivityGap(T, pH, chloride unit.Quantity) unit.Quantity {
	return ChlorinePotential(T, chloride).Sub(OxygenPotential(T, pH))
}

// CellVoltage returns the minimum voltage to drive a cell with the
// given anode and cathode reversible potentials [V].
func CellVoltage(anode, cathode unit.Quantity) unit.Quantity {
	return anode.Sub(cathode)
}

// EnergyPerMole returns the electrical energy per mole of product for
// a reaction transferring n electrons at the given cell voltage
// [J mol⁻¹].
func EnergyPerMole(voltage unit.Quantity, n int) unit.Quantity {
	ne := unit.New(float64(n), unit.Dimensionless)
	return voltage.Mul(faraday).Mul(ne)
}

// Current returns the current needed to sustain the given production
// rate of a species requiring n electrons per molecule [A].
func Current(rate unit.Quantity, n int) unit.Quantity {
	ne := unit.New(float64(n), unit.Dimensionless)
	return faraday.Mul(rate).Mul(ne)
}

// Power returns the electrical power drawn by a cell at the given
// voltage and current [W].
func Power(voltage, current unit.Quantity) unit.Quantity {
	return voltage.Mul(current)
}

// SeparationWork returns the minimum thermodynamic work to move one
// mole of a dissolved species from concentration cFrom up to cTo at
// temperature T [J mol⁻¹]. This bounds the energy cost of
// electrochemical CO₂ removal from seawater.
func SeparationWork(T, cFrom, cTo unit.Quantity) unit.Quantity {
	return gasConstant.Mul(T).Mul(cTo.Div(cFrom).Log())
}

// molarMassCO2 is the molar mass of carbon dioxide [kg mol⁻¹].
var molarMassCO2 = unit.New(0.04401, unit.Kilogram).Div(unit.New(1, unit.Mole))

// BaseProductionRate returns the rate of hydroxide generation at a
// cathode passing the given current [mol s⁻¹]. efficiency is the
// faradaic efficiency, the fraction of the charge that goes into the
// hydrogen evolution reaction rather than side reactions.
func BaseProductionRate(current unit.Quantity, efficiency float64) unit.Quantity {
	eff := unit.New(efficiency, unit.Dimensionless)
	return current.Mul(eff).Div(faraday)
}

// CaptureEnergy returns the electrical energy spent per kilogram of
// CO₂ absorbed when a cell at the given voltage generates base with
// the given faradaic efficiency and each mole of base pulls uptake
// moles of CO₂ into the water [J kg⁻¹].
func CaptureEnergy(voltage unit.Quantity, efficiency, uptake float64) unit.Quantity {
	perMole := EnergyPerMole(voltage, 1).Div(unit.New(efficiency*uptake, unit.Dimensionless))
	return perMole.Div(molarMassCO2)
}
