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
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/internal/hash"
	"github.com/oceanmodel/seachem/unit/seaunit"
	"gonum.org/v1/gonum/floats"
)

// applySweep returns a copy of base with the named scenario variable
// set to v.
func applySweep(base seachem.Seawater, variable string, v float64) (seachem.Seawater, error) {
	switch variable {
	case "Temperature":
		base.Temperature = seaunit.Celsius(v)
	case "Salinity":
		base.Salinity = seaunit.Salinity(v)
	case "DIC":
		base.DIC = seaunit.MicromolePerKilogram(v)
	case "Alkalinity":
		base.Alkalinity = seaunit.MicromolePerKilogram(v)
	default:
		return base, fmt.Errorf("seachem: invalid sweep variable %s; valid choices are "+
			"Temperature, Salinity, DIC and Alkalinity", variable)
	}
	return base, nil
}

// solveRequest is the request processor for sweeps. The request payload
// must be a seachem.Seawater and the result payload is a *seachem.State.
func solveRequest(ctx context.Context, request interface{}) (interface{}, error) {
	return seachem.Equilibrate(request.(seachem.Seawater))
}

// Sweep solves the carbonate system once for each of a series of steps
// evenly spaced values of the named scenario variable between start and
// end, holding the other variables at their values in base, and writes
// the output variable expressions to outputFile as CSV, one row per
// step in sweep order.
//
// The solutions are computed concurrently, and repeated conditions are
// deduplicated and cached.
//
// c is a channel across which progress messages will be sent.
func Sweep(c chan string, outputFile string, outputVars map[string]string, base seachem.Seawater,
	variable string, start, end float64, steps int) error {
	if steps < 2 {
		return fmt.Errorf("seachem: a sweep requires at least 2 steps but Sweep.Steps is %d", steps)
	}
	o, err := seachem.NewOutputter(outputFile, outputVars, nil)
	if err != nil {
		return err
	}

	cache := requestcache.NewCache(solveRequest, runtime.GOMAXPROCS(-1),
		requestcache.Deduplicate(), requestcache.Memory(steps))

	values := floats.Span(make([]float64, steps), start, end)
	reqs := make([]*requestcache.Request, steps)
	ctx := context.TODO()
	for i, v := range values {
		w, err := applySweep(base, variable, v)
		if err != nil {
			return err
		}
		reqs[i] = cache.NewRequest(ctx, w, hash.Hash(w))
	}

	c <- fmt.Sprintf("Sweeping %s across %d steps from %g to %g.\n", variable, steps, start, end)
	states := make([]*seachem.State, steps)
	errs := make([]error, steps)
	var wg sync.WaitGroup
	wg.Add(steps)
	for i := range reqs {
		go func(i int) {
			defer wg.Done()
			result, err := reqs[i].Result()
			if err != nil {
				errs[i] = err
				return
			}
			states[i] = result.(*seachem.State)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("seachem: sweep step %d (%s = %g): %v", i+1, variable, values[i], err)
		}
	}

	c <- fmt.Sprintf("Writing results to %s.\n", outputFile)
	return o.Output(states...)
}
