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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/oceanmodel/seachem/unit"
)

// stateVariables lists the variables every State makes available for
// output, in the order they are documented.
var stateVariables = []string{
	"Temperature", "Salinity", "DIC", "Alkalinity",
	"PH", "H", "OH", "CO2", "HCO3", "CO3", "BOH4",
	"PCO2", "OmegaAragonite", "OmegaCalcite", "RevelleFactor",
}

// stateVariableUnits gives the unit each output variable is reported
// in.
var stateVariableUnits = map[string]string{
	"Temperature":    "°C",
	"Salinity":       "-",
	"DIC":            "µmol/kg",
	"Alkalinity":     "µmol/kg",
	"PH":             "pH",
	"H":              "µmol/kg",
	"OH":             "µmol/kg",
	"CO2":            "µmol/kg",
	"HCO3":           "µmol/kg",
	"CO3":            "µmol/kg",
	"BOH4":           "µmol/kg",
	"PCO2":           "µatm",
	"OmegaAragonite": "-",
	"OmegaCalcite":   "-",
	"RevelleFactor":  "-",
}

// OutputOptions returns the names of the variables available for
// output expressions along with the units they are reported in.
func OutputOptions() (names []string, units []string) {
	names = make([]string, len(stateVariables))
	units = make([]string, len(stateVariables))
	copy(names, stateVariables)
	for i, n := range names {
		units[i] = stateVariableUnits[n]
	}
	return names, units
}

// Variables returns the state as a map of named values in reporting
// units, for use in output expressions.
func (s *State) Variables() map[string]float64 {
	return map[string]float64{
		"Temperature":    s.Temperature.Normalize(unit.Celsius),
		"Salinity":       s.Salinity.Normalize(unit.Dimensionless),
		"DIC":            s.DIC.Normalize(unit.MicromolePerKilogram),
		"Alkalinity":     s.Alkalinity.Normalize(unit.MicromolePerKilogram),
		"PH":             s.PH.Normalize(unit.PH),
		"H":              s.H.Normalize(unit.MicromolePerKilogram),
		"OH":             s.OH.Normalize(unit.MicromolePerKilogram),
		"CO2":            s.CO2.Normalize(unit.MicromolePerKilogram),
		"HCO3":           s.HCO3.Normalize(unit.MicromolePerKilogram),
		"CO3":            s.CO3.Normalize(unit.MicromolePerKilogram),
		"BOH4":           s.BOH4.Normalize(unit.MicromolePerKilogram),
		"PCO2":           s.PCO2.Normalize(unit.Microatmosphere),
		"OmegaAragonite": s.OmegaAragonite.Normalize(unit.Dimensionless),
		"OmegaCalcite":   s.OmegaCalcite.Normalize(unit.Dimensionless),
		"RevelleFactor":  s.RevelleFactor.Normalize(unit.Dimensionless),
	}
}

// Outputter is a holder for output parameters.
//
// fileName contains the path where the output will be saved.
//
// outputVariables maps the names of the variables for which data
// should be returned to expressions that define how the requested data
// should be calculated. These expressions can utilize variables built
// into the model, user-defined variables, and functions.
//
// modelVariables is automatically generated based on the model
// variables that are required to calculate the requested output
// variables.
//
// Functions are defined in the outputFunctions variable.
type Outputter struct {
	fileName        string
	outputVariables map[string]string
	modelVariables  []string
	outputFunctions map[string]govaluate.ExpressionFunction
}

// NewOutputter initializes a new Outputter holder and adds a set of
// default output functions. Default functions include:
//
// 'exp(x)' which applies the exponential function e^x.
//
// 'log(x)' and 'log10(x)' which apply the natural and base-10
// logarithms.
//
// 'sqrt(x)' and 'abs(x)'.
//
// 'min(x, y, ...)' and 'max(x, y, ...)' which take the extreme of
// their arguments.
func NewOutputter(fileName string, outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	scalar := func(name string, f func(float64) float64) govaluate.ExpressionFunction {
		return func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("seachem: got %d arguments for function '%s', but needs 1", len(arg), name)
			}
			return f(arg[0].(float64)), nil
		}
	}
	extreme := func(name string, better func(a, b float64) bool) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("seachem: function '%s' needs at least 1 argument", name)
			}
			r := args[0].(float64)
			for _, a := range args[1:] {
				if v := a.(float64); better(v, r) {
					r = v
				}
			}
			return r, nil
		}
	}
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp":   scalar("exp", math.Exp),
		"log":   scalar("log", math.Log),
		"log10": scalar("log10", math.Log10),
		"sqrt":  scalar("sqrt", math.Sqrt),
		"abs":   scalar("abs", math.Abs),
		"min":   extreme("min", func(a, b float64) bool { return a < b }),
		"max":   extreme("max", func(a, b float64) bool { return a > b }),
	}

	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}

	o := Outputter{
		fileName:        fileName,
		outputVariables: outputVariables,
		outputFunctions: defaultOutputFuncs,
	}

	for _, val := range o.outputVariables {
		regx, _ := regexp.Compile("\\{(.*?)\\}")
		matches := regx.FindAllString(val, -1)
		if len(matches) > 0 {
			for _, m := range matches {
				if strings.Count(m, "{") > 1 || strings.Count(m, "}") > 1 {
					return nil, fmt.Errorf("seachem: unsupported use of braces {} in output variable expression %q", val)
				}
				o.outputVariables[m] = m[1 : len(m)-1]
			}
		}
	}

	err := o.checkForDerivatives()

	for k1, v1 := range o.outputVariables {
		if strings.Contains(k1, "{") {
			for k2, v2 := range o.outputVariables {
				if k1 != k2 {
					o.outputVariables[k2] = strings.Replace(v2, v1, "{"+v1+"}", -1)
				}
			}
			delete(o.outputVariables, k1)
		}
	}

	return &o, err
}

// removeDuplicates removes all duplicated strings from a slice,
// returning a slice that contains only unique strings.
func removeDuplicates(s []string) []string {
	result := make([]string, 0, len(s))
	seen := make(map[string]string)
	for _, val := range s {
		if _, ok := seen[val]; !ok {
			result = append(result, val)
			seen[val] = val
		}
	}
	return result
}

func checkPrefix(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return regexp.MatchString("[a-zA-Z0-9_]", string(s[0]))
}

func checkSuffix(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return regexp.MatchString("[a-zA-Z0-9_]", string(s[len(s)-1]))
}

// checkForDerivatives identifies the unique input variables that are
// required to calculate the requested output variables. Any
// user-defined output variable showing up in a subsequent expression
// is replaced by its corresponding expression.
func (o *Outputter) checkForDerivatives() error {
	o.modelVariables = make([]string, 0, len(o.outputVariables))
	for key, val := range o.outputVariables {
		o.outputVariables[key] = strings.Replace(val, "{", "", -1)
		o.outputVariables[key] = strings.Replace(o.outputVariables[key], "}", "", -1)
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(o.outputVariables[key], o.outputFunctions)
		if err != nil {
			return fmt.Errorf("seachem: output variable %s: %v", key, err)
		}
		uniqueVars := removeDuplicates(expression.Vars())
		o.modelVariables = append(o.modelVariables, uniqueVars...)
		// For each variable name identified in an output variable
		// expression, check if the variable is defined in terms of
		// other variables within a separate expression. If so, any
		// instance of the variable name in the current expression is
		// replaced by the expression that defines it.
		for _, uniqueVar := range uniqueVars {
			if o.outputVariables[uniqueVar] != "" && o.outputVariables[uniqueVar] != uniqueVar {
				// To verify that an instance of a variable name is not
				// part of a longer variable name, the text preceding
				// and following it is analyzed. For example, 'Omega'
				// is not a standalone variable in an expression if it
				// appears as 'OmegaAragonite'.
				splitVal := strings.Split(val, uniqueVar)
				for i := 0; i < len(splitVal)-1; i++ {
					isSuffix, err := checkSuffix(splitVal[i])
					if err != nil {
						return fmt.Errorf("seachem: output variable %s: %v", key, err)
					}
					isPrefix, err := checkPrefix(splitVal[i+1])
					if err != nil {
						return fmt.Errorf("seachem: output variable %s: %v", key, err)
					}
					splitVal[i] = splitVal[i] + uniqueVar
					if !isSuffix && !isPrefix {
						splitVal[i] = strings.Replace(splitVal[i], uniqueVar, "("+o.outputVariables[uniqueVar]+")", -1)
					}
				}
				o.outputVariables[key] = strings.Join(splitVal, "")
				return o.checkForDerivatives()
			}
		}
	}
	o.modelVariables = removeDuplicates(o.modelVariables)
	return nil
}

// checkModelVars checks whether the unique input variables required to
// calculate the user-requested output variables are available.
func checkModelVars(g ...string) error {
	available := make(map[string]struct{}, len(stateVariables))
	for _, n := range stateVariables {
		available[n] = struct{}{}
	}
	for _, v := range g {
		if _, ok := available[v]; !ok {
			return fmt.Errorf("seachem: undefined variable name '%s'", v)
		}
	}
	return nil
}

// checkOutputNames checks if any output variable names include
// characters that cannot appear in an expression variable.
func checkOutputNames(o map[string]string) error {
	for key := range o {
		ok, err := regexp.MatchString("^[A-Za-z]\\w*$", key)
		if err != nil {
			panic(err)
		}
		if !ok {
			return fmt.Errorf("seachem: output variable name '%s' includes unsupported character(s)", key)
		}
	}
	return nil
}

// CheckOutputVars ensures the requested output variables can be
// calculated from the state variables.
func (o *Outputter) CheckOutputVars() error {
	if err := checkModelVars(o.modelVariables...); err != nil {
		return err
	}
	return checkOutputNames(o.outputVariables)
}

// Results evaluates the output variable expressions for each of the
// given states, returning a column of values per output variable.
func (o *Outputter) Results(states ...*State) (map[string][]float64, error) {
	expressions := make(map[string]*govaluate.EvaluableExpression, len(o.outputVariables))
	for name, expStr := range o.outputVariables {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(expStr, o.outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("seachem: output variable %s: %v", name, err)
		}
		expressions[name] = expression
	}
	results := make(map[string][]float64, len(o.outputVariables))
	for _, st := range states {
		vars := st.Variables()
		params := make(map[string]interface{}, len(vars))
		for name, v := range vars {
			params[name] = v
		}
		for name, expression := range expressions {
			v, err := expression.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("seachem: evaluating output variable %s: %v", name, err)
			}
			f, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("seachem: output variable %s: expression result %v is not a number", name, v)
			}
			results[name] = append(results[name], f)
		}
	}
	return results, nil
}

// Output evaluates the output variables for the given states and
// writes them to the output file as CSV, one row per state with the
// columns in alphabetical order.
func (o *Outputter) Output(states ...*State) error {
	if err := o.CheckOutputVars(); err != nil {
		return err
	}
	results, err := o.Results(states...)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	f, err := os.Create(o.fileName)
	if err != nil {
		return fmt.Errorf("seachem: creating output file: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(names); err != nil {
		f.Close()
		return err
	}
	row := make([]string, len(names))
	for i := range states {
		for j, name := range names {
			row[j] = strconv.FormatFloat(results[name][i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
