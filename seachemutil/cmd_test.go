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

package seachemutil

import (
	"bytes"
	"encoding/csv"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/oceanmodel/seachem"
)

func different(a, b float64) bool {
	if a == b {
		return false
	}
	return math.Abs(a-b)/math.Max(math.Abs(a), math.Abs(b)) > 1.e-4
}

// readResults reads back the CSV output table written by a command.
func readResults(t *testing.T, fileName string) (header []string, rows [][]float64) {
	t.Helper()
	f, err := os.Open(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) == 0 {
		t.Fatal("output table is empty")
	}
	header = lines[0]
	for _, line := range lines[1:] {
		row := make([]float64, len(line))
		for i, s := range line {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				t.Fatal(err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return header, rows
}

// column returns the index of the named column in the output table.
func column(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("output table has no column %s", name)
	return -1
}

func TestVersionCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "SeaChem v" + seachem.Version; !strings.Contains(buf.String(), want) {
		t.Errorf("version output %q doesn't contain %q", buf.String(), want)
	}
}

func TestVariablesCmd(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"variables"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"PH", "OmegaAragonite", "RevelleFactor"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("variables output doesn't contain %q", want)
		}
	}
}

func TestRunCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "seachemtest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "run.csv")
	Cfg.Set("OutputFile", out)
	Cfg.Set("ScenarioFiles", []string{"testdata/scenarios.toml"})
	Root.SetArgs([]string{"run"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}

	header, rows := readResults(t, out)
	if want := []string{"omegaAr", "pCO2", "pH", "revelle"}; !reflect.DeepEqual(header, want) {
		t.Errorf("header: want %v but have %v", want, header)
	}
	// One row for the configured scenario plus one per scenario in the file.
	if len(rows) != 3 {
		t.Fatalf("want 3 rows but have %d", len(rows))
	}
	ph := column(t, header, "pH")
	for i, row := range rows {
		if row[ph] < 7 || row[ph] > 9 {
			t.Errorf("row %d: pH %g is outside the range of modern seawater", i, row[ph])
		}
	}
}

func TestSweepCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "seachemtest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "sweep.csv")
	Cfg.Set("OutputFile", out)
	Cfg.Set("Sweep.Steps", 5)
	Root.SetArgs([]string{"sweep"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}

	header, rows := readResults(t, out)
	if len(rows) != 5 {
		t.Fatalf("want 5 rows but have %d", len(rows))
	}
	// At fixed DIC and alkalinity, pH falls as the water warms.
	ph := column(t, header, "pH")
	if first, last := rows[0][ph], rows[len(rows)-1][ph]; first <= last {
		t.Errorf("pH should fall with warming but went from %g to %g", first, last)
	}
}

func TestPlotCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "seachemtest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "bjerrum.png")
	Cfg.Set("Plot.OutputFile", out)
	Root.SetArgs([]string{"plot"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
