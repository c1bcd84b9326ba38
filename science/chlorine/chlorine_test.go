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

package chlorine

import (
	"math"
	"testing"

	"github.com/oceanmodel/seachem/unit"
	"github.com/oceanmodel/seachem/unit/seaunit"
)

func different(a, b float64) bool {
	if a == b {
		return false
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) > 1.e-4
}

func TestTemperatureAdjustRate(t *testing.T) {
	k := unit.New(1.5, unit.PerDay)
	var tests = []struct {
		celsius float64
		want    float64 // 1/d
	}{
		{20, 1.5},
		{25, 2.1159},
		{10, 0.72687},
	}
	for _, tt := range tests {
		v := TemperatureAdjustRate(k, seaunit.Celsius(tt.celsius)).Normalize(unit.PerDay)
		if different(v, tt.want) {
			t.Errorf("rate at %g °C: want %g but have %g 1/d", tt.celsius, tt.want, v)
		}
	}
}

func TestDecayAndHalfLife(t *testing.T) {
	c0 := unit.New(1, unit.GramPerCubicMeter)
	k := unit.New(1.5, unit.PerDay)

	c := Decay(c0, k, unit.New(1, unit.Day))
	if v := c.Normalize(unit.GramPerCubicMeter); different(v, 0.22313) {
		t.Errorf("after one day: want 0.22313 g/m³ but have %g g/m³", v)
	}

	// Rate and time units cancel however they are expressed.
	c2 := Decay(c0, unit.New(1.5/86400, unit.PerSecond), unit.New(24, unit.Hour))
	if different(c.Normalize(unit.GramPerCubicMeter), c2.Normalize(unit.GramPerCubicMeter)) {
		t.Errorf("decay depends on unit choice: %v != %v", c, c2)
	}

	half := HalfLife(k)
	if v := half.Normalize(unit.Day); different(v, 0.46210) {
		t.Errorf("half-life: want 0.46210 d but have %g d", v)
	}
	atHalf := Decay(c0, k, half)
	if v := atHalf.Normalize(unit.GramPerCubicMeter); different(v, 0.5) {
		t.Errorf("after one half-life: want 0.5 g/m³ but have %g g/m³", v)
	}
}

func TestTimeToThreshold(t *testing.T) {
	c0 := unit.New(0.5, unit.GramPerCubicMeter)
	target := unit.New(0.01, unit.GramPerCubicMeter)
	k := SeawaterDecayRate

	d, err := TimeToThreshold(c0, target, k)
	if err != nil {
		t.Fatal(err)
	}
	if v := d.Normalize(unit.Day); different(v, 2.6080) {
		t.Errorf("time to threshold: want 2.6080 d but have %g d", v)
	}
	// Decaying for exactly that long lands on the threshold.
	c := Decay(c0, k, d)
	if v := c.Normalize(unit.GramPerCubicMeter); different(v, 0.01) {
		t.Errorf("concentration at threshold time: want 0.01 g/m³ but have %g g/m³", v)
	}

	if _, err := TimeToThreshold(c0, seaunit.Celsius(4), k); err == nil {
		t.Error("temperature as threshold should be rejected")
	}
	if _, err := TimeToThreshold(c0, unit.New(1, unit.GramPerCubicMeter), k); err == nil {
		t.Error("threshold above the initial concentration should be rejected")
	}
	if _, err := TimeToThreshold(c0, unit.New(0, unit.GramPerCubicMeter), k); err == nil {
		t.Error("zero threshold should be rejected")
	}
}

func TestExposure(t *testing.T) {
	c0 := unit.New(0.5, unit.GramPerCubicMeter)
	k := unit.New(1.5, unit.PerDay)
	ct := unit.New(1, unit.GramPerCubicMeter).Mul(unit.New(1, unit.Day))

	e := Exposure(c0, k, unit.New(1, unit.Day))
	if v := e.Div(ct).Normalize(unit.Dimensionless); different(v, 0.25896) {
		t.Errorf("one-day exposure: want 0.25896 g d/m³ but have %g g d/m³", v)
	}

	// Long exposures approach c0/k.
	e = Exposure(c0, k, unit.New(1, unit.Year))
	if v := e.Div(ct).Normalize(unit.Dimensionless); different(v, 0.5/1.5) {
		t.Errorf("long exposure: want %g g d/m³ but have %g g d/m³", 0.5/1.5, v)
	}
}

func TestDissociationPK(t *testing.T) {
	var tests = []struct {
		celsius float64
		want    float64
	}{
		{25, 7.5366},
		{5, 7.7542},
	}
	for _, tt := range tests {
		pk := DissociationPK(seaunit.Celsius(tt.celsius))
		if v := pk.Normalize(unit.PH); different(v, tt.want) {
			t.Errorf("pKa at %g °C: want %g but have %g", tt.celsius, tt.want, v)
		}
	}
}

func TestHypochlorousFraction(t *testing.T) {
	T := seaunit.Celsius(25)
	var tests = []struct {
		ph   float64
		want float64
	}{
		{6, 0.97176},
		{7.5366488, 0.5}, // at the pKa the two species are equal
		{8.1, 0.21464},
	}
	for _, tt := range tests {
		f := HypochlorousFraction(T, seaunit.PH(tt.ph))
		if v := f.Normalize(unit.Dimensionless); different(v, tt.want) {
			t.Errorf("HOCl fraction at pH %g: want %g but have %g", tt.ph, tt.want, v)
		}
	}
}
