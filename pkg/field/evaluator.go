// Package field ties pkg/quadrature, pkg/tesseroid, pkg/kernel and
// pkg/grid together into the evaluator contract: given a model, an
// observation grid, a field component and an algorithm variant, produce
// a ResultGrid in the component's output unit.
package field

import (
	"fmt"

	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/quadrature"
	"github.com/bxrne/launchrail/pkg/tesseroid"
	"github.com/bxrne/launchrail/pkg/units"
)

// Orders holds the GLQ order along each quadrature axis. R is ignored in
// TwoD mode, where the radial integral is carried out analytically.
type Orders struct {
	Lon, Lat, R int
}

func (o Orders) validate(alg kernel.Algorithm) error {
	if o.Lon < 2 || o.Lat < 2 {
		return fmt.Errorf("field: lon/lat GLQ orders must be >= 2, got %d/%d", o.Lon, o.Lat)
	}
	if alg == kernel.ThreeD && o.R < 2 {
		return fmt.Errorf("field: radial GLQ order must be >= 2 in 3-D mode, got %d", o.R)
	}
	return nil
}

// tables bundles the precomputed abscissa/weight sets shared by every
// grid node and every tesseroid in one Evaluate call.
type tables struct {
	lonAbs, latAbs, rAbs *quadrature.Abscissas
	lonW, latW, rW       *quadrature.Weights
}

func buildTables(orders Orders, algorithm kernel.Algorithm) (tables, error) {
	var tb tables
	var err error

	tb.lonAbs, err = quadrature.NewAbscissas(orders.Lon)
	if err != nil {
		return tables{}, err
	}
	tb.latAbs, err = quadrature.NewAbscissas(orders.Lat)
	if err != nil {
		return tables{}, err
	}
	tb.lonW = quadrature.NewWeights(tb.lonAbs)
	tb.latW = quadrature.NewWeights(tb.latAbs)

	if algorithm == kernel.ThreeD {
		tb.rAbs, err = quadrature.NewAbscissas(orders.R)
		if err != nil {
			return tables{}, err
		}
		tb.rW = quadrature.NewWeights(tb.rAbs)
	}
	return tb, nil
}

// unitScale returns the U factor from the scale-factor formula: 1e5 for
// gravity-vector components, 1e9 for gradient-tensor components, 1 for
// the potential. For Gz the factor is negated: the gz kernel is the
// derivative along increasing radius, and gz is reported positive
// downward.
func unitScale(c kernel.Component) float64 {
	switch c.Order() {
	case 0:
		return 1
	case 1:
		if c == kernel.Gz {
			return -units.SIToMGal
		}
		return units.SIToMGal
	default:
		return units.SIToEotvos
	}
}

// Evaluate computes component over every node of gridSpec for model,
// using algorithm and the given quadrature orders, and returns the
// result in the component's conventional output unit.
func Evaluate(model *tesseroid.Model, gridSpec grid.Spec, component kernel.Component, algorithm kernel.Algorithm, orders Orders) (*grid.ResultGrid, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if err := gridSpec.Validate(); err != nil {
		return nil, err
	}
	if err := orders.validate(algorithm); err != nil {
		return nil, err
	}

	threeD, twoD, ok := kernel.Lookup(component)
	if !ok {
		return nil, errUnknownComponent(component.String())
	}

	tb, err := buildTables(orders, algorithm)
	if err != nil {
		return nil, err
	}

	result := grid.NewResultGrid(gridSpec)
	u := unitScale(component)
	obsR := units.RadiusFromHeight(gridSpec.Height, units.MeanEarthRadius)
	lats := gridSpec.Lats()
	lons := gridSpec.Lons()

	for row, obsLat := range lats {
		obsLatRad := units.DegToRad(obsLat)
		for col, obsLon := range lons {
			obsLonRad := units.DegToRad(obsLon)

			var total float64
			for _, t := range model.Elements() {
				v, err := evaluateElement(t, obsLatRad, obsLonRad, obsR, threeD, twoD, algorithm, tb, u)
				if err != nil {
					return nil, err
				}
				total += v
			}
			result.Set(row, col, total)
		}
	}
	return result, nil
}

// evaluateElement integrates one tesseroid's contribution to one
// observation point, already scaled into the component's output unit.
func evaluateElement(t tesseroid.Tesseroid, obsLatRad, obsLonRad, obsR float64, threeD kernel.Func3D, twoD kernel.Func2D, algorithm kernel.Algorithm, tb tables, u float64) (float64, error) {
	westRad := units.DegToRad(t.West)
	eastRad := units.DegToRad(t.East)
	southRad := units.DegToRad(t.South)
	northRad := units.DegToRad(t.North)

	lonNodes := tb.lonAbs.Scaled(westRad, eastRad)
	latNodes := tb.latAbs.Scaled(southRad, northRad)
	deltaLon := units.DegToRad(t.DeltaLon())
	deltaLat := units.DegToRad(t.DeltaLat())

	if algorithm == kernel.TwoD {
		scale := u * deltaLat * deltaLon * t.Density * units.G / 4
		var sum float64
		for i, srcLat := range latNodes {
			for j, srcLon := range lonNodes {
				a := kernel.NewAngles(obsLatRad, obsLonRad, srcLat, srcLon)
				v, err := twoD(a, obsR, t.Top, t.Bottom)
				if err != nil {
					return 0, fmt.Errorf("field: %w", err)
				}
				sum += tb.latW.Values()[i] * tb.lonW.Values()[j] * v
			}
		}
		return scale * sum, nil
	}

	rNodes := tb.rAbs.Scaled(t.Bottom, t.Top)
	scale := u * deltaLat * deltaLon * t.DeltaR() * t.Density * units.G / 8
	var sum float64
	for i, srcLat := range latNodes {
		for j, srcLon := range lonNodes {
			a := kernel.NewAngles(obsLatRad, obsLonRad, srcLat, srcLon)
			for k, srcR := range rNodes {
				v := threeD(a, obsR, srcR)
				sum += tb.latW.Values()[i] * tb.lonW.Values()[j] * tb.rW.Values()[k] * v
			}
		}
	}
	return scale * sum, nil
}
