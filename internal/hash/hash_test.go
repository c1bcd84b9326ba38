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

package hash

import (
	"testing"

	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/unit/seaunit"
)

type named string

func (n named) String() string { return string(n) }

func TestHashStringer(t *testing.T) {
	if k := Hash(named("station 42")); k != "station 42" {
		t.Errorf("want %q but have %q", "station 42", k)
	}
}

func TestHashStruct(t *testing.T) {
	type point struct{ X, Y float64 }
	if Hash(point{1, 2}) != Hash(point{1, 2}) {
		t.Error("equal values should share a key")
	}
	if Hash(point{1, 2}) == Hash(point{2, 1}) {
		t.Error("distinct values should have distinct keys")
	}
}

// Quantities keep their value and dimensions in unexported fields, so
// hashing model input exercises the reflection walk.
func TestHashSeawater(t *testing.T) {
	w := func(dic float64) seachem.Seawater {
		return seachem.Seawater{
			Temperature: seaunit.Celsius(15),
			Salinity:    seaunit.Salinity(35),
			DIC:         seaunit.MicromolePerKilogram(dic),
			Alkalinity:  seaunit.MicromolePerKilogram(2300),
		}
	}
	if Hash(w(2000)) != Hash(w(2000)) {
		t.Error("equal conditions should share a key")
	}
	if Hash(w(2000)) == Hash(w(2100)) {
		t.Error("distinct conditions should have distinct keys")
	}
}
