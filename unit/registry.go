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

import "strconv"

// A Unit names an entry in the unit registry. The catalog of units is
// fixed at compile time; quantities constructed from any of them are
// stored in coherent SI base units so that quantities constructed from
// different units of the same dimension can be mixed freely.
type Unit int

// The registry catalog. Base units come first, derived units after.
const (
	// Dimensionless is the unit of pure numbers.
	Dimensionless Unit = iota

	// Base units.
	Meter
	Kilogram
	Second
	Mole
	Kelvin
	Ampere
	PH

	// Length, area and volume.
	Centimeter
	Kilometer
	SquareMeter
	CubicMeter
	Liter

	// Mass.
	Gram
	Tonne

	// Time.
	Minute
	Hour
	Day
	Year

	// Amount.
	Millimole
	Micromole

	// Temperature. Celsius is the only unit in the registry with an
	// additive offset.
	Celsius

	// Mechanics.
	Newton
	Joule
	Kilojoule
	Watt
	Pascal
	Decibar
	Atmosphere
	Microatmosphere

	// Electricity.
	Coulomb
	Volt
	Siemens

	// Rates.
	PerSecond
	PerDay

	// Composition and flux.
	PartsPerMillion
	MeterPerSecond
	SquareMeterPerSecond
	KilogramPerCubicMeter
	GramPerCubicMeter
	MolePerSecond
	MolePerKilogram
	MicromolePerKilogram
	MolePerCubicMeter
	MolePerLiter
	MolePerSquareMeterSecond
	JoulePerMole
	KilojoulePerMole
	JoulePerMoleKelvin
	CoulombPerMole
	VoltPerMeter
	SquareMeterPerVoltSecond
	SiemensPerMeter
	PascalSecond

	numUnits // sentinel
)

// factor is one (unit, exponent) pair in a derived unit definition.
type factor struct {
	unit Unit
	pow  int
}

// definition describes one registry entry before resolution. Exactly
// one of base and factors is set: base units name the dimension they
// measure, derived units are a product of powers of other units with
// an optional scale. An offset is only allowed on a derived unit with
// a single power-one factor and scale one.
type definition struct {
	symbol    string
	base      Dimension
	factors   []factor
	scale     float64 // 0 means 1
	offset    float64
	hasOffset bool
}

// registryDefinitions is the unit catalog. Derived units may reference
// other derived units; scales compose multiplicatively during
// resolution.
var registryDefinitions = [numUnits]definition{
	Dimensionless: {symbol: "-"},

	Meter:    {symbol: "m", base: Length},
	Kilogram: {symbol: "kg", base: Mass},
	Second:   {symbol: "s", base: Time},
	Mole:     {symbol: "mol", base: Amount},
	Kelvin:   {symbol: "K", base: Temperature},
	Ampere:   {symbol: "A", base: Current},
	PH:       {symbol: "pH", base: Acidity},

	Centimeter:  {symbol: "cm", factors: []factor{{Meter, 1}}, scale: 0.01},
	Kilometer:   {symbol: "km", factors: []factor{{Meter, 1}}, scale: 1000},
	SquareMeter: {symbol: "m²", factors: []factor{{Meter, 2}}},
	CubicMeter:  {symbol: "m³", factors: []factor{{Meter, 3}}},
	Liter:       {symbol: "L", factors: []factor{{Meter, 3}}, scale: 1e-3},

	Gram:  {symbol: "g", factors: []factor{{Kilogram, 1}}, scale: 1e-3},
	Tonne: {symbol: "t", factors: []factor{{Kilogram, 1}}, scale: 1000},

	Minute: {symbol: "min", factors: []factor{{Second, 1}}, scale: 60},
	Hour:   {symbol: "h", factors: []factor{{Second, 1}}, scale: 3600},
	Day:    {symbol: "d", factors: []factor{{Hour, 1}}, scale: 24},
	Year:   {symbol: "yr", factors: []factor{{Day, 1}}, scale: 365.25},

	Millimole: {symbol: "mmol", factors: []factor{{Mole, 1}}, scale: 1e-3},
	Micromole: {symbol: "µmol", factors: []factor{{Mole, 1}}, scale: 1e-6},

	Celsius: {symbol: "°C", factors: []factor{{Kelvin, 1}}, offset: 273.15, hasOffset: true},

	Newton:          {symbol: "N", factors: []factor{{Kilogram, 1}, {Meter, 1}, {Second, -2}}},
	Joule:           {symbol: "J", factors: []factor{{Newton, 1}, {Meter, 1}}},
	Kilojoule:       {symbol: "kJ", factors: []factor{{Joule, 1}}, scale: 1000},
	Watt:            {symbol: "W", factors: []factor{{Joule, 1}, {Second, -1}}},
	Pascal:          {symbol: "Pa", factors: []factor{{Newton, 1}, {Meter, -2}}},
	Decibar:         {symbol: "dbar", factors: []factor{{Pascal, 1}}, scale: 1e4},
	Atmosphere:      {symbol: "atm", factors: []factor{{Pascal, 1}}, scale: 101325},
	Microatmosphere: {symbol: "µatm", factors: []factor{{Atmosphere, 1}}, scale: 1e-6},

	Coulomb: {symbol: "C", factors: []factor{{Ampere, 1}, {Second, 1}}},
	Volt:    {symbol: "V", factors: []factor{{Joule, 1}, {Coulomb, -1}}},
	Siemens: {symbol: "S", factors: []factor{{Ampere, 1}, {Volt, -1}}},

	PerSecond: {symbol: "1/s", factors: []factor{{Second, -1}}},
	PerDay:    {symbol: "1/d", factors: []factor{{Day, -1}}},

	PartsPerMillion:          {symbol: "ppm", scale: 1e-6},
	MeterPerSecond:           {symbol: "m/s", factors: []factor{{Meter, 1}, {Second, -1}}},
	SquareMeterPerSecond:     {symbol: "m²/s", factors: []factor{{Meter, 2}, {Second, -1}}},
	KilogramPerCubicMeter:    {symbol: "kg/m³", factors: []factor{{Kilogram, 1}, {Meter, -3}}},
	GramPerCubicMeter:        {symbol: "g/m³", factors: []factor{{Gram, 1}, {Meter, -3}}},
	MolePerSecond:            {symbol: "mol/s", factors: []factor{{Mole, 1}, {Second, -1}}},
	MolePerKilogram:          {symbol: "mol/kg", factors: []factor{{Mole, 1}, {Kilogram, -1}}},
	MicromolePerKilogram:     {symbol: "µmol/kg", factors: []factor{{Micromole, 1}, {Kilogram, -1}}},
	MolePerCubicMeter:        {symbol: "mol/m³", factors: []factor{{Mole, 1}, {Meter, -3}}},
	MolePerLiter:             {symbol: "mol/L", factors: []factor{{Mole, 1}, {Liter, -1}}},
	MolePerSquareMeterSecond: {symbol: "mol/(m²·s)", factors: []factor{{Mole, 1}, {Meter, -2}, {Second, -1}}},
	JoulePerMole:             {symbol: "J/mol", factors: []factor{{Joule, 1}, {Mole, -1}}},
	KilojoulePerMole:         {symbol: "kJ/mol", factors: []factor{{Kilojoule, 1}, {Mole, -1}}},
	JoulePerMoleKelvin:       {symbol: "J/(mol·K)", factors: []factor{{Joule, 1}, {Mole, -1}, {Kelvin, -1}}},
	CoulombPerMole:           {symbol: "C/mol", factors: []factor{{Coulomb, 1}, {Mole, -1}}},
	VoltPerMeter:             {symbol: "V/m", factors: []factor{{Volt, 1}, {Meter, -1}}},
	SquareMeterPerVoltSecond: {symbol: "m²/(V·s)", factors: []factor{{SquareMeter, 1}, {Volt, -1}, {Second, -1}}},
	SiemensPerMeter:          {symbol: "S/m", factors: []factor{{Siemens, 1}, {Meter, -1}}},
	PascalSecond:             {symbol: "Pa·s", factors: []factor{{Pascal, 1}, {Second, 1}}},
}

// resolvedUnit is a registry entry after resolution: the composed scale
// to SI base units, the additive offset, and the dimension vector.
type resolvedUnit struct {
	symbol    string
	scale     float64
	offset    float64
	hasOffset bool
	dims      Dimensions
}

// registry is the resolved unit catalog. It is built exactly once and
// never modified afterwards.
type registry struct {
	units []resolvedUnit
}

const (
	unresolved = iota
	resolving
	resolved
)

// buildRegistry resolves a definition table into a registry, reducing
// every derived unit to a scale and a base-dimension vector. It
// returns a *ConfigError describing the first invalid definition it
// encounters; a table that builds successfully cannot fail later.
func buildRegistry(defs []definition) (*registry, error) {
	r := &registry{units: make([]resolvedUnit, len(defs))}
	state := make([]int, len(defs))

	var resolve func(u Unit) error
	resolve = func(u Unit) error {
		switch state[u] {
		case resolved:
			return nil
		case resolving:
			return &ConfigError{Symbol: defs[u].symbol, Reason: "definition cycle"}
		}
		state[u] = resolving
		def := defs[u]
		ru := resolvedUnit{symbol: def.symbol, scale: 1}
		if def.symbol == "" {
			return &ConfigError{Symbol: "unit(" + strconv.Itoa(int(u)) + ")", Reason: "missing symbol"}
		}
		switch {
		case def.base != 0:
			if len(def.factors) != 0 || def.scale != 0 || def.hasOffset {
				return &ConfigError{Symbol: def.symbol, Reason: "base unit with derived attributes"}
			}
			if def.base <= 0 || def.base >= lastDimension {
				return &ConfigError{Symbol: def.symbol, Reason: "unknown base dimension"}
			}
			ru.dims = Dimensions{def.base: 1}
		default:
			dims := make(Dimensions)
			for _, f := range def.factors {
				if f.unit < 0 || int(f.unit) >= len(defs) {
					return &ConfigError{Symbol: def.symbol, Reason: "factor references unknown unit"}
				}
				if f.pow == 0 {
					return &ConfigError{Symbol: def.symbol, Reason: "factor with zero exponent"}
				}
				if err := resolve(f.unit); err != nil {
					return err
				}
				fu := r.units[f.unit]
				if fu.hasOffset {
					return &ConfigError{Symbol: def.symbol, Reason: "offset unit " + fu.symbol + " used as a factor"}
				}
				ru.scale *= pow(fu.scale, f.pow)
				dims.merge(fu.dims, f.pow)
			}
			if def.scale != 0 {
				ru.scale *= def.scale
			}
			if len(dims) != 0 {
				ru.dims = dims
			}
			if def.hasOffset {
				if len(ru.dims) != 1 {
					return &ConfigError{Symbol: def.symbol, Reason: "offset on a unit without exactly one dimension"}
				}
				for _, p := range ru.dims {
					if p != 1 {
						return &ConfigError{Symbol: def.symbol, Reason: "offset on a unit with exponent other than one"}
					}
				}
				if ru.scale != 1 {
					return &ConfigError{Symbol: def.symbol, Reason: "offset on a scaled unit"}
				}
				ru.offset = def.offset
				ru.hasOffset = true
			}
		}
		r.units[u] = ru
		state[u] = resolved
		return nil
	}

	symbols := make(map[string]Unit, len(defs))
	for u := range defs {
		if err := resolve(Unit(u)); err != nil {
			return nil, err
		}
		sym := defs[u].symbol
		if _, ok := symbols[sym]; ok {
			return nil, &ConfigError{Symbol: sym, Reason: "symbol already registered"}
		}
		symbols[sym] = Unit(u)
	}
	return r, nil
}

// pow raises a float to an integer power without going through
// math.Pow for the common small exponents used in unit definitions.
func pow(x float64, n int) float64 {
	switch {
	case n == 0:
		return 1
	case n < 0:
		return 1 / pow(x, -n)
	}
	r := 1.0
	for ; n > 0; n-- {
		r *= x
	}
	return r
}

// std is the resolved registry all quantities are built against.
var std = func() *registry {
	r, err := buildRegistry(registryDefinitions[:])
	if err != nil {
		panic(err)
	}
	return r
}()

// String returns the unit's symbol.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(std.units) {
		return "unknownUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return std.units[u].symbol
}

// Dimensions returns a copy of the unit's dimension vector.
func (u Unit) Dimensions() Dimensions {
	return std.units[u].dims.clone()
}

// lookup returns the resolved entry for u, panicking if u is not a
// registry unit.
func lookup(u Unit) resolvedUnit {
	if u < 0 || int(u) >= len(std.units) {
		panic(&ConfigError{Symbol: "unit(" + strconv.Itoa(int(u)) + ")", Reason: "not in the registry"})
	}
	return std.units[u]
}
