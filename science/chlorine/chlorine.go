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

// Package chlorine models the fate of the free chlorine that seawater
// electrolysis produces as a by-product. Free chlorine speciates
// between hypochlorous acid and hypochlorite depending on pH, and
// decays away by first-order reactions with organic matter and
// sunlight.
package chlorine

import (
	"fmt"
	"math"

	"github.com/oceanmodel/seachem/unit"
)

// gasConstant is the molar gas constant (CODATA 2014).
var gasConstant = unit.New(8.3144598, unit.JoulePerMoleKelvin)

// SeawaterDecayRate is a representative first-order dark decay rate
// for free chlorine in natural seawater at 20 °C. Measured rates span
// an order of magnitude either side of it depending on organic load.
var SeawaterDecayRate = unit.New(1.5, unit.PerDay)

var (
	// activationEnergy is a representative Arrhenius activation
	// energy for chlorine decay in natural waters.
	activationEnergy = unit.New(50, unit.KilojoulePerMole)

	// referenceT is the temperature decay rates are quoted at.
	referenceT = unit.New(293.15, unit.Kelvin)

	one = unit.New(1, unit.Dimensionless)
)

// TemperatureAdjustRate scales a first-order decay rate quoted at
// 20 °C to temperature T with an Arrhenius correction, roughly a
// doubling per 10 °C.
func TemperatureAdjustRate(k, T unit.Quantity) unit.Quantity {
	arg := activationEnergy.Div(gasConstant).Mul(one.Div(T).Sub(one.Div(referenceT))).Neg()
	return k.Mul(unit.New(math.Exp(arg.Normalize(unit.Dimensionless)), unit.Dimensionless))
}

// Decay returns the free chlorine concentration remaining after
// first-order decay at rate k for duration t, starting from c0.
func Decay(c0, k, t unit.Quantity) unit.Quantity {
	kt := k.Mul(t).Normalize(unit.Dimensionless)
	return c0.Mul(unit.New(math.Exp(-kt), unit.Dimensionless))
}

// HalfLife returns the time for half of the chlorine to decay at
// rate k.
func HalfLife(k unit.Quantity) unit.Quantity {
	return unit.New(math.Ln2, unit.Dimensionless).Div(k)
}

// TimeToThreshold returns how long first-order decay at rate k takes
// to bring the concentration from c0 down to target. It returns an
// error if the two concentrations are not comparable or if target is
// not between zero and c0.
func TimeToThreshold(c0, target, k unit.Quantity) (unit.Quantity, error) {
	if !unit.DimensionsMatch(c0, target) {
		return unit.Quantity{}, fmt.Errorf("seachem: threshold %v is not comparable to concentration %v", target, c0)
	}
	if target.Value() <= 0 || !target.Less(c0) {
		return unit.Quantity{}, fmt.Errorf("seachem: threshold %v is not between zero and %v", target, c0)
	}
	return c0.Div(target).Log().Div(k), nil
}

// Exposure returns the concentration-time integral ∫c dt accumulated
// over duration t while the chlorine decays at rate k from initial
// concentration c0. Toxicity thresholds for marine organisms are
// usually quoted against this product.
func Exposure(c0, k, t unit.Quantity) unit.Quantity {
	kt := k.Mul(t).Normalize(unit.Dimensionless)
	return c0.Div(k).Mul(unit.New(1-math.Exp(-kt), unit.Dimensionless))
}

// DissociationPK returns the pKa of hypochlorous acid at temperature
// T, from the fit of Morris (1966).
func DissociationPK(T unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	return unit.New(3000.00/t-10.0686+0.0253*t, unit.PH)
}

// HypochlorousFraction returns the fraction of free chlorine present
// as hypochlorous acid, the far more biocidal of the two species, at
// the given temperature and pH.
func HypochlorousFraction(T, pH unit.Quantity) unit.Quantity {
	h := pH.Concentration()
	ka := DissociationPK(T).Concentration()
	return h.Div(h.Add(ka))
}
