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

// Package seachemutil holds the configuration handling and command
// glue for the seachem command-line tool.
package seachemutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/oceanmodel/seachem"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to SeaChem.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path to the CSV file the output
              table will be written to.`,
			shorthand:  "o",
			defaultVal: "seachem_output.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies which variables should be
              output, mapping each output column name to the expression
              that computes it. Expressions can combine the built-in
              variables (run 'seachem variables' to list them) with
              arithmetic and the built-in functions.`,
			defaultVal: map[string]string{
				"pH":      "PH",
				"pCO2":    "PCO2",
				"omegaAr": "OmegaAragonite",
				"revelle": "RevelleFactor",
			},
			flagsets: []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "ScenarioFiles",
			usage: `
              ScenarioFiles is a list of paths to TOML files holding
              seawater scenarios to solve in addition to the one in the
              Scenario configuration section. The paths can be 'http://'
              or 'https://' URLs, in which case the files are downloaded
              before they are read.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Scenario.Temperature",
			usage: `
              Scenario.Temperature is the water temperature [°C].`,
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Scenario.Salinity",
			usage: `
              Scenario.Salinity is the practical salinity.`,
			defaultVal: 35.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Scenario.DIC",
			usage: `
              Scenario.DIC is the dissolved inorganic carbon
              concentration [µmol/kg].`,
			defaultVal: 2000.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Scenario.Alkalinity",
			usage: `
              Scenario.Alkalinity is the total alkalinity [µmol/kg].`,
			defaultVal: 2300.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Sweep.Variable",
			usage: `
              Sweep.Variable names the scenario variable the sweep
              command scans. It must be one of Temperature, Salinity,
              DIC or Alkalinity.`,
			defaultVal: "Temperature",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Start",
			usage: `
              Sweep.Start is the first value of the swept variable.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.End",
			usage: `
              Sweep.End is the last value of the swept variable.`,
			defaultVal: 30.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Steps",
			usage: `
              Sweep.Steps is the number of evenly spaced values,
              including both ends, the swept variable takes.`,
			defaultVal: 16,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Plot.OutputFile",
			usage: `
              Plot.OutputFile specifies the path the speciation diagram
              will be saved to. The extension determines the image
              format.`,
			defaultVal: "bjerrum.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "show",
			usage: `
              show specifies whether to open the speciation diagram
              with the system image viewer after saving it.`,
			shorthand:  "s",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SEACHEM")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(variablesCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(plotCmd)
}

// outChan returns a channel printing to standard output.
func outChan() chan string {
	outChan := make(chan string)
	go func() {
		for {
			msg := <-outChan
			fmt.Printf(msg)
		}
	}()
	return outChan
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("seachem: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "seachem",
	Short: "A seawater carbonate chemistry calculator.",
	Long: `SeaChem solves the carbonate system of seawater: given temperature,
salinity, dissolved inorganic carbon and total alkalinity it computes pH,
the carbon species, pCO2, the calcium carbonate saturation states and the
Revelle factor. Use the subcommands specified below to access the model
functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'SEACHEM_var' where 'var' is the name of the variable to be set. Refer to
https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of SeaChem.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("SeaChem v%s\n", seachem.Version)
	},
	DisableAutoGenTag: true,
}

var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "List the built-in output variables",
	Long: `variables prints the names of the model variables that output
expressions can use, along with the units each one is reported in.`,
	Run: func(cmd *cobra.Command, args []string) {
		names, units := seachem.OutputOptions()
		for i, n := range names {
			cmd.Printf("%-16s[%s]\n", n, units[i])
		}
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that solves the configured scenarios.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve the carbonate system for the configured scenarios.",
	Long: `run solves the carbonate system for the scenario in the
configuration file and for every scenario listed in the ScenarioFiles, and
writes one row of output expressions per scenario to the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outChan := outChan()

		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		outputVars, err := checkOutputVars(GetStringMapString("OutputVariables", Cfg))
		if err != nil {
			return err
		}

		scenarioFiles := expandStringSlice(Cfg.GetStringSlice("ScenarioFiles"))
		// This goes over each scenario file and downloads it.
		for i := range scenarioFiles {
			scenarioFiles[i] = maybeDownload(scenarioFiles[i], outChan)
		}

		scenarios, err := scenarios(Cfg, scenarioFiles)
		if err != nil {
			return err
		}
		return Run(outChan, outputFile, outputVars, scenarios...)
	},
	DisableAutoGenTag: true,
}

// sweepCmd is a command that scans one scenario variable over a range.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve the carbonate system across a range of conditions.",
	Long: `sweep solves the carbonate system once for each of a series of
evenly spaced values of one scenario variable, holding the others at their
configured values, and writes one row of output expressions per step to the
output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outChan := outChan()

		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		outputVars, err := checkOutputVars(GetStringMapString("OutputVariables", Cfg))
		if err != nil {
			return err
		}
		return Sweep(outChan, outputFile, outputVars, scenarioFromConfig(Cfg),
			Cfg.GetString("Sweep.Variable"),
			Cfg.GetFloat64("Sweep.Start"),
			Cfg.GetFloat64("Sweep.End"),
			Cfg.GetInt("Sweep.Steps"))
	},
	DisableAutoGenTag: true,
}

// plotCmd is a command that draws a speciation diagram.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw a carbonate speciation (Bjerrum) diagram.",
	Long: `plot draws the fractions of dissolved inorganic carbon present as
CO2*, bicarbonate and carbonate across the pH range at the configured
temperature and salinity, and saves the figure to Plot.OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Bjerrum(scenarioFromConfig(Cfg),
			os.ExpandEnv(Cfg.GetString("Plot.OutputFile")),
			Cfg.GetBool("show"))
	},
	DisableAutoGenTag: true,
}
