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

package seachem

import (
	"fmt"
	"math"

	"github.com/oceanmodel/seachem/unit"
)

// This file implements the seawater carbonate system at surface
// pressure on the total hydrogen ion scale. The alkalinity model
// includes the carbonate, borate and water contributions; phosphate
// and silicate are neglected, which is accurate to a few µmol/kg in
// open ocean water.

// K0 returns the solubility constant of CO₂ in seawater
// [mol kg⁻¹ atm⁻¹] from Weiss (1974).
func K0(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	t100 := t / 100
	lnK := 93.4517/t100 - 60.2409 + 23.3585*math.Log(t100) +
		s*(0.023517-0.023656*t100+0.0047036*t100*t100)
	return unit.New(math.Exp(lnK), unit.MolePerKilogram).
		Div(unit.New(1, unit.Atmosphere))
}

// K1 returns the first dissociation constant of carbonic acid in
// seawater [mol kg⁻¹] on the total pH scale, from the fit of Lueker,
// Dickson and Keeling (2000).
func K1(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	pk := 3633.86/t - 61.2172 + 9.6777*math.Log(t) - 0.011555*s + 0.0001152*s*s
	return unit.New(math.Pow(10, -pk), unit.MolePerKilogram)
}

// K2 returns the second dissociation constant of carbonic acid in
// seawater [mol kg⁻¹] on the total pH scale, from the fit of Lueker,
// Dickson and Keeling (2000).
func K2(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	pk := 471.78/t + 25.929 - 3.16967*math.Log(t) - 0.01781*s + 0.0001122*s*s
	return unit.New(math.Pow(10, -pk), unit.MolePerKilogram)
}

// KB returns the dissociation constant of boric acid in seawater
// [mol kg⁻¹] on the total pH scale, from Dickson (1990).
func KB(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	sr := math.Sqrt(s)
	lnK := (-8966.90-2890.53*sr-77.942*s+1.728*s*sr-0.0996*s*s)/t +
		148.0248 + 137.1942*sr + 1.62142*s +
		(-24.4344-25.085*sr-0.2474*s)*math.Log(t) +
		0.053105*sr*t
	return unit.New(math.Exp(lnK), unit.MolePerKilogram)
}

// KW returns the ion product of water in seawater [mol² kg⁻²] on the
// total pH scale, from Millero (1995).
func KW(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	lnK := 148.9652 - 13847.26/t - 23.6521*math.Log(t) +
		(118.67/t-5.977+1.0495*math.Log(t))*math.Sqrt(s) - 0.01615*s
	return gravimetricSquared(math.Exp(lnK))
}

// KspAragonite returns the stoichiometric solubility product of
// aragonite in seawater [mol² kg⁻²] from Mucci (1983).
func KspAragonite(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	sr := math.Sqrt(s)
	logK := -171.945 - 0.077993*t + 2903.293/t + 71.595*math.Log10(t) +
		(-0.068393+0.0017276*t+88.135/t)*sr - 0.10018*s + 0.0059415*s*sr
	return gravimetricSquared(math.Pow(10, logK))
}

// KspCalcite returns the stoichiometric solubility product of calcite
// in seawater [mol² kg⁻²] from Mucci (1983).
func KspCalcite(T, S unit.Quantity) unit.Quantity {
	t := T.Normalize(unit.Kelvin)
	s := S.Normalize(unit.Dimensionless)
	sr := math.Sqrt(s)
	logK := -171.9065 - 0.077993*t + 2839.319/t + 71.595*math.Log10(t) +
		(-0.77712+0.0028426*t+178.34/t)*sr - 0.07711*s + 0.0041249*s*sr
	return gravimetricSquared(math.Pow(10, logK))
}

// TotalBoron returns the total boron concentration [mol kg⁻¹] for the
// given salinity, using the boron-to-chlorinity ratio of Uppström
// (1974).
func TotalBoron(S unit.Quantity) unit.Quantity {
	s := S.Normalize(unit.Dimensionless)
	return unit.New(4.16e-4*s/35, unit.MolePerKilogram)
}

// TotalCalcium returns the calcium concentration [mol kg⁻¹] for the
// given salinity, from Riley and Tongudai (1967).
func TotalCalcium(S unit.Quantity) unit.Quantity {
	s := S.Normalize(unit.Dimensionless)
	return unit.New(0.01028*s/35, unit.MolePerKilogram)
}

// gravimetricSquared builds a quantity with units of mol² kg⁻², the
// units of the two-ion equilibrium products.
func gravimetricSquared(v float64) unit.Quantity {
	return unit.New(v, unit.MolePerKilogram).Mul(unit.New(1, unit.MolePerKilogram))
}

// consts holds the equilibrium constants for one temperature and
// salinity so the solver does not recompute them at every iteration.
type consts struct {
	k0, k1, k2, kb, kw       unit.Quantity
	kspArag, kspCalc         unit.Quantity
	totalBoron, totalCalcium unit.Quantity
}

func newConsts(T, S unit.Quantity) *consts {
	return &consts{
		k0:           K0(T, S),
		k1:           K1(T, S),
		k2:           K2(T, S),
		kb:           KB(T, S),
		kw:           KW(T, S),
		kspArag:      KspAragonite(T, S),
		kspCalc:      KspCalcite(T, S),
		totalBoron:   TotalBoron(S),
		totalCalcium: TotalCalcium(S),
	}
}

// State is the fully speciated carbonate system for a seawater parcel.
// The Seawater embedded in it holds the conditions the state was
// solved for; Alkalinity is always consistent with the speciation.
type State struct {
	Seawater

	// PH is the acidity on the total hydrogen ion scale.
	PH unit.Quantity

	// Species concentrations [mol kg⁻¹]. CO2 is the sum of aqueous
	// CO₂ and H₂CO₃, conventionally written CO₂*.
	H, OH, CO2, HCO3, CO3, BOH4 unit.Quantity

	// PCO2 is the partial pressure of CO₂ a gas phase would need to
	// be in equilibrium with the water.
	PCO2 unit.Quantity

	// Saturation states of the calcium carbonate minerals
	// [dimensionless]. Values below one favor dissolution.
	OmegaAragonite, OmegaCalcite unit.Quantity

	// RevelleFactor is the relative sensitivity of pCO₂ to a change
	// in DIC at constant alkalinity [dimensionless].
	RevelleFactor unit.Quantity
}

// speciateAt computes the carbonate system state at a prescribed pH.
// It determines every output except the Revelle factor, which needs
// two additional equilibrium solutions.
func speciateAt(w Seawater, kc *consts, ph float64) *State {
	h := unit.New(math.Pow(10, -ph), unit.MolePerKilogram)
	one := unit.New(1, unit.Dimensionless)
	two := unit.New(2, unit.Dimensionless)

	// DIC = CO₂*(1 + K1/h + K1K2/h²) partitions the carbon.
	co2 := w.DIC.Div(one.Add(kc.k1.Div(h)).Add(kc.k1.Mul(kc.k2).Div(h.Mul(h))))
	hco3 := co2.Mul(kc.k1).Div(h)
	co3 := hco3.Mul(kc.k2).Div(h)
	oh := kc.kw.Div(h)
	boh4 := kc.totalBoron.Mul(kc.kb).Div(kc.kb.Add(h))

	st := &State{
		Seawater: w,
		PH:       unit.New(ph, unit.PH),
		H:        h,
		OH:       oh,
		CO2:      co2,
		HCO3:     hco3,
		CO3:      co3,
		BOH4:     boh4,
	}
	st.Alkalinity = hco3.Add(co3.Mul(two)).Add(boh4).Add(oh).Sub(h)
	st.PCO2 = co2.Div(kc.k0)
	st.OmegaAragonite = kc.totalCalcium.Mul(co3).Div(kc.kspArag)
	st.OmegaCalcite = kc.totalCalcium.Mul(co3).Div(kc.kspCalc)
	return st
}

// Bounds of the pH interval the solver searches.
const (
	phMin = 2
	phMax = 12
)

// equilibrate finds the pH at which the alkalinity recomposed from the
// speciation matches the prescribed alkalinity, by bisection. The
// residual is strictly increasing in pH, so the root is unique when it
// is bracketed.
func equilibrate(w Seawater, kc *consts) (*State, error) {
	residual := func(ph float64) float64 {
		st := speciateAt(w, kc, ph)
		return st.Alkalinity.Sub(w.Alkalinity).Normalize(unit.MolePerKilogram)
	}
	lo, hi := float64(phMin), float64(phMax)
	flo, fhi := residual(lo), residual(hi)
	if flo > 0 || fhi < 0 {
		return nil, fmt.Errorf("seachem: cannot bracket the equilibrium pH in [%g, %g] "+
			"for DIC %g and alkalinity %g mol/kg: the inputs are not a possible seawater state",
			lo, hi, w.DIC.Normalize(unit.MolePerKilogram), w.Alkalinity.Normalize(unit.MolePerKilogram))
	}
	for i := 0; i < 200 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		if residual(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	st := speciateAt(w, kc, (lo+hi)/2)
	// Report the alkalinity that was asked for rather than the
	// recomposed one; they agree to solver precision.
	st.Alkalinity = w.Alkalinity
	return st, nil
}

// revelle computes the Revelle factor by centered finite difference:
// the equilibrium is re-solved with DIC perturbed either way at
// constant alkalinity.
func revelle(w Seawater, kc *consts, st *State) (unit.Quantity, error) {
	delta := unit.New(1e-3, unit.Dimensionless)
	wp, wm := w, w
	wp.DIC = w.DIC.Mul(unit.New(1, unit.Dimensionless).Add(delta))
	wm.DIC = w.DIC.Mul(unit.New(1, unit.Dimensionless).Sub(delta))
	stp, err := equilibrate(wp, kc)
	if err != nil {
		return unit.Quantity{}, err
	}
	stm, err := equilibrate(wm, kc)
	if err != nil {
		return unit.Quantity{}, err
	}
	dPCO2 := stp.PCO2.Sub(stm.PCO2)
	dDIC := wp.DIC.Sub(wm.DIC)
	return dPCO2.Div(st.PCO2).Mul(w.DIC).Div(dDIC), nil
}

// Equilibrate solves the carbonate system for the given seawater,
// determining pH, the species concentrations, pCO₂, the mineral
// saturation states and the Revelle factor from temperature, salinity,
// DIC and alkalinity.
func Equilibrate(w Seawater) (*State, error) {
	if err := w.Check(); err != nil {
		return nil, err
	}
	kc := newConsts(w.Temperature, w.Salinity)
	st, err := equilibrate(w, kc)
	if err != nil {
		return nil, err
	}
	st.RevelleFactor, err = revelle(w, kc, st)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Speciate computes the carbonate system directly from a known pH
// instead of solving for it. The alkalinity of the result is the one
// implied by the speciation; any alkalinity already set on w is
// ignored.
func Speciate(w Seawater, pH unit.Quantity) (*State, error) {
	if err := w.checkTS(); err != nil {
		return nil, err
	}
	if err := w.DIC.Check(unit.MolePerKilogram); err != nil {
		return nil, fmt.Errorf("seachem: DIC: %v", err)
	}
	ph, err := unit.Convert(pH, unit.PH)
	if err != nil {
		return nil, fmt.Errorf("seachem: pH: %v", err)
	}
	if ph < phMin || ph > phMax {
		return nil, fmt.Errorf("seachem: pH %g is outside the valid range [%d, %d]", ph, phMin, phMax)
	}
	kc := newConsts(w.Temperature, w.Salinity)
	st := speciateAt(w, kc, ph)
	st.RevelleFactor, err = revelle(st.Seawater, kc, st)
	if err != nil {
		return nil, err
	}
	return st, nil
}
