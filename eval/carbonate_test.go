package eval

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/GaryBoone/GoStats/stats"
	"github.com/oceanmodel/seachem"
	"github.com/oceanmodel/seachem/unit"
	"github.com/oceanmodel/seachem/unit/seaunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A station is one row of testdata/stations.toml: a set of surface
// ocean conditions together with reference carbonate system values
// calculated independently from the same equilibrium constant
// formulations the model uses.
type station struct {
	Name        string
	Temperature float64 // [°C]
	Salinity    float64
	DIC         float64 // [μmol kg⁻¹]
	Alkalinity  float64 // [μmol kg⁻¹]
	PH          float64
	PCO2        float64 // [μatm]
}

func (st station) seawater() seachem.Seawater {
	return seachem.Seawater{
		Temperature: seaunit.Celsius(st.Temperature),
		Salinity:    seaunit.Salinity(st.Salinity),
		DIC:         seaunit.MicromolePerKilogram(st.DIC),
		Alkalinity:  seaunit.MicromolePerKilogram(st.Alkalinity),
	}
}

func readStations(t *testing.T) []station {
	var f struct {
		Station []station
	}
	if _, err := toml.DecodeFile(filepath.Join("testdata", "stations.toml"), &f); err != nil {
		t.Fatal(err)
	}
	if len(f.Station) == 0 {
		t.Fatal("testdata/stations.toml contains no stations")
	}
	return f.Station
}

// solve equilibrates every station and returns the modeled pH and
// pCO₂ [μatm].
func solve(t *testing.T, stations []station) (ph, pco2 []float64) {
	ph = make([]float64, len(stations))
	pco2 = make([]float64, len(stations))
	for i, st := range stations {
		s, err := seachem.Equilibrate(st.seawater())
		if err != nil {
			t.Fatalf("station %s: %v", st.Name, err)
		}
		ph[i] = s.PH.Normalize(unit.PH)
		pco2[i] = s.PCO2.Normalize(unit.Microatmosphere)
	}
	return ph, pco2
}

// TestCheckValues compares the equilibrium solution at every station
// against its reference values.
func TestCheckValues(t *testing.T) {
	stations := readStations(t)
	ph, pco2 := solve(t, stations)

	for i, st := range stations {
		if d := math.Abs(ph[i] - st.PH); d > 0.02 {
			t.Errorf("%s: pH %.4f differs from the check value %.4f by %.4f",
				st.Name, ph[i], st.PH, d)
		}
		if d := math.Abs(pco2[i]-st.PCO2) / st.PCO2; d > 0.05 {
			t.Errorf("%s: pCO2 %.1f μatm differs from the check value %.1f μatm by %.1f%%",
				st.Name, pco2[i], st.PCO2, d*100)
		}
	}
}

// TestStatistics computes the model-to-reference comparison statistics
// across all stations and saves the scatter plots that go in the model
// documentation.
func TestStatistics(t *testing.T) {
	stations := readStations(t)
	ph, pco2 := solve(t, stations)

	refPH := make([]float64, len(stations))
	refPCO2 := make([]float64, len(stations))
	for i, st := range stations {
		refPH[i] = st.PH
		refPCO2[i] = st.PCO2
	}

	os.MkdirAll("figures", os.ModePerm)

	comparisons := []struct {
		name   string
		label  string
		ref    []float64
		model  []float64
		maxMFB float64
	}{
		{"pH", "pH", refPH, ph, 0.01},
		{"pCO2", "pCO₂ (μatm)", refPCO2, pco2, 0.05},
	}
	for _, c := range comparisons {
		s := new(statistics)
		s.slope, s.intercept, s.rsquared, _, _, _ =
			stats.LinearRegression(c.ref, c.model)
		s.mfb = mfb(c.ref, c.model)
		s.mfe = mfe(c.ref, c.model)
		s.mb = mb(c.ref, c.model)
		s.me = me(c.ref, c.model)

		t.Logf("%s: MFB=%.1f%% MFE=%.1f%% MB=%.3g ME=%.3g S=%.2f R²=%.2f",
			c.name, s.mfb*100, s.mfe*100, s.mb, s.me, s.slope, s.rsquared)

		if s.slope < 0.8 || s.slope > 1.2 {
			t.Errorf("%s: regression slope %.3f is outside [0.8, 1.2]", c.name, s.slope)
		}
		if s.rsquared < 0.9 {
			t.Errorf("%s: R² %.3f is below 0.9", c.name, s.rsquared)
		}
		if math.Abs(s.mfb) > c.maxMFB {
			t.Errorf("%s: mean fractional bias %.1f%% exceeds %.0f%%",
				c.name, s.mfb*100, c.maxMFB*100)
		}
		if s.mfe > 2*c.maxMFB {
			t.Errorf("%s: mean fractional error %.1f%% exceeds %.0f%%",
				c.name, s.mfe*100, 2*c.maxMFB*100)
		}

		fname := filepath.Join("figures", "stations_"+c.name+".png")
		if err := makePlot(c.ref, c.model, c.label, s, fname); err != nil {
			t.Errorf("%s: %v", c.name, err)
		}
	}
}

type statistics struct {
	mfb, mfe, mb, me, slope, intercept, rsquared float64
}

func rearrangeData(x, y []float64) plotter.XYs {
	out := make(plotter.XYs, len(x))
	for i, yy := range y {
		out[i].X = x[i]
		out[i].Y = yy
	}
	return out
}

// makePlot draws modeled values against reference values with the 1:1
// and fitted lines and saves the figure to fname.
func makePlot(ref, model []float64, label string, s *statistics, fname string) error {
	max := stats.StatsMax(append(append([]float64{}, ref...), model...))
	min := stats.StatsMin(append(append([]float64{}, ref...), model...))

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.X.Label.Text = "Reference " + label
	p.Y.Label.Text = "Modeled " + label
	p.Legend.Top = true
	p.Legend.Left = true

	pts, err := plotter.NewScatter(rearrangeData(ref, model))
	if err != nil {
		return err
	}
	pts.Color = color.NRGBA{0, 0, 0, 255}
	pts.Radius = vg.Points(2)
	pts.Shape = draw.CircleGlyph{}
	l1, err := plotter.NewLine(plotter.XYs{{min, min}, {max, max}})
	if err != nil {
		return err
	}
	l1.Color = color.NRGBA{255, 0, 0, 255}
	l2, err := plotter.NewLine(plotter.XYs{{min, min*s.slope + s.intercept},
		{max, max*s.slope + s.intercept}})
	if err != nil {
		return err
	}
	l2.Color = color.NRGBA{127, 127, 127, 255}
	p.Add(pts, l1, l2)
	p.Legend.Add("stations", pts)
	p.Legend.Add("fit", l2)
	p.Legend.Add("1:1", l1)
	p.X.Min, p.X.Max = min, max
	p.Y.Min, p.Y.Max = min, max

	return p.Save(4*vg.Inch, 4*vg.Inch, fname)
}

func mfb(a, b []float64) float64 {
	r := 0.
	for i, v1 := range a {
		v2 := b[i]
		r += 2 * (v2 - v1) / (v1 + v2)
	}
	return r / float64(len(a))
}
func mfe(a, b []float64) float64 {
	r := 0.
	for i, v1 := range a {
		v2 := b[i]
		r += 2 * math.Abs(v2-v1) / math.Abs(v1+v2)
	}
	return r / float64(len(a))
}
func mb(a, b []float64) float64 {
	r := 0.
	for i, v1 := range a {
		v2 := b[i]
		r += (v2 - v1)
	}
	return r / float64(len(a))
}
func me(a, b []float64) float64 {
	r := 0.
	for i, v1 := range a {
		v2 := b[i]
		r += math.Abs(v2 - v1)
	}
	return r / float64(len(a))
}
