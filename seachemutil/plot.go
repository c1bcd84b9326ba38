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
	"image/color"

	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/unit"
	"github.com/oceanmodel/seachem/unit/seaunit"
	"github.com/skratchdot/open-golang/open"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bjerrum draws the fractions of dissolved inorganic carbon present as
// CO2*, bicarbonate and carbonate as functions of pH at the temperature
// and salinity in w, and saves the figure to outputFile. The extension
// of outputFile determines the image format. If show is true, the saved
// figure is opened with the system image viewer.
func Bjerrum(w seachem.Seawater, outputFile string, show bool) error {
	const (
		phMin = 4.0
		phMax = 11.0
		n     = 141
	)
	xyCO2 := make(plotter.XYs, n)
	xyHCO3 := make(plotter.XYs, n)
	xyCO3 := make(plotter.XYs, n)
	phs := floats.Span(make([]float64, n), phMin, phMax)
	for i, ph := range phs {
		s, err := seachem.Speciate(w, seaunit.PH(ph))
		if err != nil {
			return fmt.Errorf("seachem: speciating at pH %g: %v", ph, err)
		}
		dic := s.CO2.Add(s.HCO3).Add(s.CO3)
		xyCO2[i].X, xyHCO3[i].X, xyCO3[i].X = ph, ph, ph
		if xyCO2[i].Y, err = unit.Convert(s.CO2.Div(dic), unit.Dimensionless); err != nil {
			return err
		}
		if xyHCO3[i].Y, err = unit.Convert(s.HCO3.Div(dic), unit.Dimensionless); err != nil {
			return err
		}
		if xyCO3[i].Y, err = unit.Convert(s.CO3.Div(dic), unit.Dimensionless); err != nil {
			return err
		}
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.X.Label.Text = "pH"
	p.Y.Label.Text = "Fraction of DIC"
	p.X.Min = phMin
	p.X.Max = phMax
	p.Y.Min = 0
	p.Y.Max = 1
	p.Legend.Top = true

	lCO2, err := plotter.NewLine(xyCO2)
	if err != nil {
		return err
	}
	lCO2.Color = color.NRGBA{27, 158, 119, 255}
	lHCO3, err := plotter.NewLine(xyHCO3)
	if err != nil {
		return err
	}
	lHCO3.Color = color.NRGBA{217, 95, 2, 255}
	lCO3, err := plotter.NewLine(xyCO3)
	if err != nil {
		return err
	}
	lCO3.Color = color.NRGBA{117, 112, 179, 255}
	p.Add(lCO2, lHCO3, lCO3)
	p.Legend.Add("CO2*", lCO2)
	p.Legend.Add("HCO3-", lHCO3)
	p.Legend.Add("CO3--", lCO3)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, outputFile); err != nil {
		return fmt.Errorf("seachem: saving plot: %v", err)
	}
	if show {
		if err := open.Run(outputFile); err != nil {
			return fmt.Errorf("seachem: opening plot: %v", err)
		}
	}
	return nil
}
