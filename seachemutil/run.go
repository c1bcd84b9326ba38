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
	"fmt"

	"github.com/oceanmodel/seachem"
)

// Run solves the carbonate system for each of the given scenarios and
// writes the output variable expressions to outputFile as CSV, one row
// per scenario.
//
// c is a channel across which progress messages will be sent.
//
// outputVars maps the names of the output columns to the expressions
// that calculate them.
func Run(c chan string, outputFile string, outputVars map[string]string, scenarios ...seachem.Seawater) error {
	o, err := seachem.NewOutputter(outputFile, outputVars, nil)
	if err != nil {
		return err
	}

	states := make([]*seachem.State, len(scenarios))
	for i, w := range scenarios {
		c <- fmt.Sprintf("Solving scenario %d of %d.\n", i+1, len(scenarios))
		s, err := seachem.Equilibrate(w)
		if err != nil {
			return fmt.Errorf("seachem: scenario %d: %v", i+1, err)
		}
		states[i] = s
	}

	c <- fmt.Sprintf("Writing results to %s.\n", outputFile)
	return o.Output(states...)
}
