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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/unit/seaunit"
	"github.com/spf13/cast"
)

// Scenario specifies one seawater condition to solve the carbonate
// system for. Temperature is in °C, Salinity is practical salinity,
// and DIC and Alkalinity are in µmol/kg.
type Scenario struct {
	Name        string
	Temperature float64
	Salinity    float64
	DIC         float64
	Alkalinity  float64
}

// seawater converts the scenario to model input.
func (s Scenario) seawater() seachem.Seawater {
	return seachem.Seawater{
		Temperature: seaunit.Celsius(s.Temperature),
		Salinity:    seaunit.Salinity(s.Salinity),
		DIC:         seaunit.MicromolePerKilogram(s.DIC),
		Alkalinity:  seaunit.MicromolePerKilogram(s.Alkalinity),
	}
}

// scenarioFromConfig creates model input from the Scenario
// configuration section.
func scenarioFromConfig(cfg *viper.Viper) seachem.Seawater {
	return Scenario{
		Temperature: cfg.GetFloat64("Scenario.Temperature"),
		Salinity:    cfg.GetFloat64("Scenario.Salinity"),
		DIC:         cfg.GetFloat64("Scenario.DIC"),
		Alkalinity:  cfg.GetFloat64("Scenario.Alkalinity"),
	}.seawater()
}

// scenarios returns the scenario from the configuration file followed by
// the scenarios read from the given TOML files. Each file holds one or
// more [[Scenario]] tables.
func scenarios(cfg *viper.Viper, files []string) ([]seachem.Seawater, error) {
	ws := []seachem.Seawater{scenarioFromConfig(cfg)}
	for _, file := range files {
		var sf struct {
			Scenario []Scenario
		}
		if _, err := toml.DecodeFile(file, &sf); err != nil {
			return nil, fmt.Errorf("seachem: reading scenario file %s: %v", file, err)
		}
		if len(sf.Scenario) == 0 {
			return nil, fmt.Errorf("seachem: scenario file %s doesn't contain any [[Scenario]] tables", file)
		}
		for _, s := range sf.Scenario {
			ws = append(ws, s.seawater())
		}
	}
	return ws, nil
}

// checkOutputVars removes end lines and expands environment
// variables in the output variables.
func checkOutputVars(vars map[string]string) (map[string]string, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("there are no variables specified for output. Please fill in " +
			"the OutputVariables configuration and try again.")
	}
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		v = strings.Replace(v, "\n", " ", -1)
		vars[os.ExpandEnv(k)] = os.ExpandEnv(v)
	}
	return vars, nil
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expand any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="seachem_output.csv")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("seachem: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// GetStringMapString returns a map[string]string from the configuration,
// accounting for the fact that it might be a map or a JSON-encoded string.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for getStringMapString variable %s: %#v", varName, i))
	}
}
