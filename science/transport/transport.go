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

// Package transport models the movement of dissolved ions in
// seawater: diffusion down concentration gradients, migration in
// electric fields, and the conductivity the two together produce.
//
// Diffusion coefficients are the infinite-dilution tracer values of
// Li and Gregory (1974), so everything here overestimates transport
// in real seawater somewhat; ion pairing at seawater ionic strength
// slows the large divalent ions by tens of percent.
package transport

import (
	"fmt"
	"math"

	"github.com/oceanmodel/seachem/unit"
)

// Physical constants (CODATA 2014).
var (
	gasConstant = unit.New(8.3144598, unit.JoulePerMoleKelvin)
	faraday     = unit.New(96485.33289, unit.CoulombPerMole)
)

// Ion identifies one of the major dissolved ions of seawater.
type Ion int

// The ions this package carries properties for.
const (
	Hydrogen Ion = iota
	Hydroxide
	Sodium
	Potassium
	Magnesium
	Calcium
	Chloride
	Sulfate
	Bicarbonate
	Carbonate
	numIons
)

type ionProperty struct {
	symbol string
	charge int
	d25    float64 // tracer diffusion coefficient at 25 °C [m² s⁻¹]
}

// Diffusion coefficients are from table 4 of Li and Gregory (1974).
var ionProperties = [numIons]ionProperty{
	Hydrogen:    {"H+", 1, 9.31e-9},
	Hydroxide:   {"OH-", -1, 5.27e-9},
	Sodium:      {"Na+", 1, 1.33e-9},
	Potassium:   {"K+", 1, 1.96e-9},
	Magnesium:   {"Mg++", 2, 0.705e-9},
	Calcium:     {"Ca++", 2, 0.793e-9},
	Chloride:    {"Cl-", -1, 2.03e-9},
	Sulfate:     {"SO4--", -2, 1.07e-9},
	Bicarbonate: {"HCO3-", -1, 1.18e-9},
	Carbonate:   {"CO3--", -2, 0.955e-9},
}

func (i Ion) properties() ionProperty {
	if i < 0 || i >= numIons {
		panic(fmt.Errorf("transport: unknown ion %d", int(i)))
	}
	return ionProperties[i]
}

func (i Ion) String() string { return i.properties().symbol }

// Charge returns the signed charge number of the ion.
func (i Ion) Charge() int { return i.properties().charge }

// Viscosity returns the dynamic viscosity of pure water at
// temperature T [Pa s], from the Vogel–Fulcher–Tammann correlation.
// It is within a few percent of measurements between 0 and 100 °C.
func Viscosity(T unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	return unit.New(2.414e-5*math.Pow(10, 247.8/(t-140)), unit.PascalSecond)
}

// Reference conditions for the tabulated diffusion coefficients.
var (
	t25   = unit.New(298.15, unit.Kelvin)
	eta25 = Viscosity(t25)
)

// Diffusivity returns the tracer diffusion coefficient of the ion at
// temperature T [m² s⁻¹]. The tabulated 25 °C value is adjusted with
// the Stokes–Einstein relation, which holds D η / T constant.
func Diffusivity(i Ion, T unit.Quantity) unit.Quantity {
	d25 := unit.New(i.properties().d25, unit.SquareMeterPerSecond)
	return d25.Mul(T).Div(t25).Mul(eta25).Div(Viscosity(T))
}

// Mobility returns the electrical mobility of the ion at temperature
// T [m² V⁻¹ s⁻¹], the drift speed per unit field, from the Einstein
// relation u = |z| D F / (R T).
func Mobility(i Ion, T unit.Quantity) unit.Quantity {
	z := unit.New(math.Abs(float64(i.Charge())), unit.Dimensionless)
	return z.Mul(Diffusivity(i, T)).Mul(faraday).Div(gasConstant.Mul(T))
}

// MigrationVelocity returns the signed drift velocity of the ion in
// electric field E [m s⁻¹]. Anions drift against the field.
func MigrationVelocity(i Ion, T, E unit.Quantity) unit.Quantity {
	v := Mobility(i, T).Mul(E)
	if i.Charge() < 0 {
		return v.Neg()
	}
	return v
}

// FickFlux returns the diffusive flux of the ion down the given
// concentration gradient [mol m⁻² s⁻¹]. The gradient is concentration
// per length; the flux opposes it.
func FickFlux(i Ion, T, gradient unit.Quantity) unit.Quantity {
	return Diffusivity(i, T).Mul(gradient).Neg()
}

// NernstPlanckFlux returns the combined diffusion and migration flux
// of the ion at concentration c in electric field E [mol m⁻² s⁻¹].
func NernstPlanckFlux(i Ion, T, c, gradient, E unit.Quantity) unit.Quantity {
	migration := MigrationVelocity(i, T, E).Mul(c)
	return FickFlux(i, T, gradient).Add(migration)
}

// Conductivity returns the electrical conductivity of a solution with
// the given ionic composition at temperature T [S m⁻¹], from the
// Nernst–Einstein relation κ = F²/(RT) Σ zᵢ² Dᵢ cᵢ. At seawater ionic
// strength the infinite-dilution coefficients make this read high by
// roughly a third.
func Conductivity(composition map[Ion]unit.Quantity, T unit.Quantity) unit.Quantity {
	kappa := unit.New(0, unit.SiemensPerMeter)
	rt := gasConstant.Mul(T)
	for ion, c := range composition {
		z := float64(ion.Charge())
		zz := unit.New(z*z, unit.Dimensionless)
		kappa = kappa.Add(faraday.Mul(faraday).Mul(zz).Mul(Diffusivity(ion, T)).Mul(c).Div(rt))
	}
	return kappa
}

// seawaterReference is the major ion content of standard seawater
// with practical salinity 35 [mol m⁻³], from the composition of
// Millero et al. (2008) at 25 °C.
var seawaterReference = map[Ion]float64{
	Sodium:      479.8,
	Potassium:   10.46,
	Magnesium:   54.09,
	Calcium:     10.53,
	Chloride:    558.98,
	Sulfate:     28.92,
	Bicarbonate: 1.81,
	Carbonate:   0.24,
}

// SeawaterComposition returns the major ion content of seawater with
// the given practical salinity [mol m⁻³], scaling the standard
// composition conservatively.
func SeawaterComposition(salinity unit.Quantity) map[Ion]unit.Quantity {
	s := salinity.Normalize(unit.Dimensionless) / 35
	m := make(map[Ion]unit.Quantity, len(seawaterReference))
	for ion, c := range seawaterReference {
		m[ion] = unit.New(c*s, unit.MolePerCubicMeter)
	}
	return m
}
