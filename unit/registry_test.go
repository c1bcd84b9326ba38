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

import "testing"

func TestBuildRegistry(t *testing.T) {
	r, err := buildRegistry(registryDefinitions[:])
	if err != nil {
		t.Fatalf("building the standard table: %v", err)
	}
	var tests = []struct {
		unit  Unit
		scale float64
		dims  Dimensions
	}{
		{Dimensionless, 1, nil},
		{Meter, 1, Dimensions{Length: 1}},
		{Liter, 1e-3, Dimensions{Length: 3}},
		{MolePerLiter, 1000, Dimensions{Amount: 1, Length: -3}},
		{MicromolePerKilogram, 1e-6, Dimensions{Amount: 1, Mass: -1}},
		{Volt, 1, Dimensions{Mass: 1, Length: 2, Time: -3, Current: -1}},
		{Siemens, 1, Dimensions{Current: 2, Time: 3, Mass: -1, Length: -2}},
		{Decibar, 1e4, Dimensions{Mass: 1, Length: -1, Time: -2}},
		{Year, 365.25 * 86400, Dimensions{Time: 1}},
		{PerDay, 1. / 86400, Dimensions{Time: -1}},
		{GramPerCubicMeter, 1e-3, Dimensions{Mass: 1, Length: -3}},
		{PartsPerMillion, 1e-6, nil},
	}
	for _, test := range tests {
		ru := r.units[test.unit]
		if different(ru.scale, test.scale) {
			t.Errorf("%v: scale: want %g but have %g", test.unit, test.scale, ru.scale)
		}
		if !ru.dims.Matches(test.dims) {
			t.Errorf("%v: dimensions: want %v but have %v", test.unit, test.dims, ru.dims)
		}
	}
	if ru := r.units[Celsius]; !ru.hasOffset || ru.offset != 273.15 || ru.scale != 1 {
		t.Errorf("Celsius: want offset 273.15 on scale 1, have %+v", ru)
	}
}

func TestBuildRegistryErrors(t *testing.T) {
	var tests = []struct {
		name string
		defs []definition
	}{
		{
			"missing symbol",
			[]definition{{symbol: "m", base: Length}, {}},
		},
		{
			"duplicate symbol",
			[]definition{
				{symbol: "m", base: Length},
				{symbol: "m", factors: []factor{{0, 1}}, scale: 1000},
			},
		},
		{
			"base unit with factors",
			[]definition{{symbol: "m", base: Length, factors: []factor{{0, 1}}}},
		},
		{
			"zero exponent",
			[]definition{
				{symbol: "m", base: Length},
				{symbol: "x", factors: []factor{{0, 0}}},
			},
		},
		{
			"unknown factor unit",
			[]definition{{symbol: "x", factors: []factor{{12, 1}}}},
		},
		{
			"definition cycle",
			[]definition{
				{symbol: "a", factors: []factor{{1, 1}}},
				{symbol: "b", factors: []factor{{0, 1}}},
			},
		},
		{
			"offset on scaled unit",
			[]definition{
				{symbol: "K", base: Temperature},
				{symbol: "x", factors: []factor{{0, 1}}, scale: 2, offset: 1, hasOffset: true},
			},
		},
		{
			"offset on squared dimension",
			[]definition{
				{symbol: "K", base: Temperature},
				{symbol: "x", factors: []factor{{0, 2}}, offset: 1, hasOffset: true},
			},
		},
		{
			"offset on dimensionless unit",
			[]definition{
				{symbol: "x", offset: 1, hasOffset: true},
			},
		},
		{
			"offset unit as factor",
			[]definition{
				{symbol: "K", base: Temperature},
				{symbol: "°C", factors: []factor{{0, 1}}, offset: 273.15, hasOffset: true},
				{symbol: "x", factors: []factor{{1, 1}, {0, -1}}},
			},
		},
	}
	for _, test := range tests {
		_, err := buildRegistry(test.defs)
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
			continue
		}
		if _, ok := err.(*ConfigError); !ok {
			t.Errorf("%s: error is %T, not *ConfigError", test.name, err)
		}
	}
}

func TestUnitString(t *testing.T) {
	var tests = []struct {
		unit Unit
		want string
	}{
		{Meter, "m"},
		{Celsius, "°C"},
		{MicromolePerKilogram, "µmol/kg"},
		{Dimensionless, "-"},
		{Unit(-1), "unknownUnit(-1)"},
	}
	for _, test := range tests {
		if got := test.unit.String(); got != test.want {
			t.Errorf("String(%d): want %q but have %q", int(test.unit), test.want, got)
		}
	}
}
