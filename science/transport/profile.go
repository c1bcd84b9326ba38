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

package transport

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/oceanmodel/seachem/unit"
)

// Profile is a vertical column of water holding the concentration
// profile of one dissolved species. Concentrations advance in time by
// implicit diffusion steps, so steps much longer than the explicit
// stability limit stay well-behaved.
type Profile struct {
	diff float64       // diffusivity [m² s⁻¹]
	dx   float64       // cell height [m]
	conc *mat.VecDense // concentration in each cell [mol m⁻³]
}

// NewProfile creates a column of the given depth divided into
// equal-height cells, uniformly filled with concentration c0. Cell 0
// is the surface.
func NewProfile(diffusivity, depth unit.Quantity, cells int, c0 unit.Quantity) (*Profile, error) {
	if cells < 2 {
		return nil, fmt.Errorf("seachem: diffusion profile needs at least 2 cells; have %d", cells)
	}
	d, err := unit.Convert(diffusivity, unit.SquareMeterPerSecond)
	if err != nil {
		return nil, err
	}
	h, err := unit.Convert(depth, unit.Meter)
	if err != nil {
		return nil, err
	}
	if d < 0 || h <= 0 {
		return nil, fmt.Errorf("seachem: diffusion profile needs positive depth and diffusivity; have %g m, %g m²/s", h, d)
	}
	c, err := unit.Convert(c0, unit.MolePerCubicMeter)
	if err != nil {
		return nil, err
	}
	data := make([]float64, cells)
	for i := range data {
		data[i] = c
	}
	return &Profile{diff: d, dx: h / float64(cells), conc: mat.NewVecDense(cells, data)}, nil
}

// Cells returns the number of cells in the column.
func (p *Profile) Cells() int { return p.conc.Len() }

// Concentration returns the concentration in cell i.
func (p *Profile) Concentration(i int) unit.Quantity {
	return unit.New(p.conc.AtVec(i), unit.MolePerCubicMeter)
}

// SetConcentration sets the concentration in cell i.
func (p *Profile) SetConcentration(i int, c unit.Quantity) error {
	v, err := unit.Convert(c, unit.MolePerCubicMeter)
	if err != nil {
		return err
	}
	p.conc.SetVec(i, v)
	return nil
}

// Inventory returns the amount of the species in the column per unit
// of horizontal area [mol m⁻²].
func (p *Profile) Inventory() unit.Quantity {
	return unit.New(mat.Sum(p.conc), unit.MolePerCubicMeter).Mul(unit.New(p.dx, unit.Meter))
}

// AddSurfaceFlux applies a flux through the top of the column held
// over the given duration, such as gas exchange or release from an
// electrode. A positive flux adds mass to the surface cell.
func (p *Profile) AddSurfaceFlux(flux, dt unit.Quantity) error {
	j, err := unit.Convert(flux, unit.MolePerSquareMeterSecond)
	if err != nil {
		return err
	}
	t, err := unit.Convert(dt, unit.Second)
	if err != nil {
		return err
	}
	p.conc.SetVec(0, p.conc.AtVec(0)+j*t/p.dx)
	return nil
}

// Step advances the profile by one backward-Euler diffusion step. The
// column boundaries are closed, so stepping conserves the inventory
// exactly; each new concentration is a weighted average of the old
// ones, so stepping can never create values outside the old range.
func (p *Profile) Step(dt unit.Quantity) error {
	t, err := unit.Convert(dt, unit.Second)
	if err != nil {
		return err
	}
	if t <= 0 {
		return fmt.Errorf("seachem: diffusion step must be positive; have %g s", t)
	}
	n := p.conc.Len()
	r := p.diff * t / (p.dx * p.dx)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			a.Set(0, 0, 1+r)
			a.Set(0, 1, -r)
		case n - 1:
			a.Set(n-1, n-2, -r)
			a.Set(n-1, n-1, 1+r)
		default:
			a.Set(i, i-1, -r)
			a.Set(i, i, 1+2*r)
			a.Set(i, i+1, -r)
		}
	}
	var next mat.VecDense
	if err := next.SolveVec(a, p.conc); err != nil {
		return fmt.Errorf("seachem: diffusion solve: %v", err)
	}
	p.conc = &next
	return nil
}
