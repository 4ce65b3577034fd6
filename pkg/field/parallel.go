package field

import (
	"runtime"
	"sync"

	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/tesseroid"
	"github.com/bxrne/launchrail/pkg/units"
)

// EvaluateParallel computes the same result as Evaluate but partitions
// the grid's rows across a worker pool, following the chunk-and-reduce
// shape of the teacher's physics-system tick loop: each worker claims
// whole rows so no two workers ever write the same ResultGrid slot, and
// each worker builds its own copy of the scaled quadrature tables so the
// abscissa/weight slices are never shared across goroutines.
func EvaluateParallel(model *tesseroid.Model, gridSpec grid.Spec, component kernel.Component, algorithm kernel.Algorithm, orders Orders, workers int) (*grid.ResultGrid, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

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

	result := grid.NewResultGrid(gridSpec)
	u := unitScale(component)
	obsR := units.RadiusFromHeight(gridSpec.Height, units.MeanEarthRadius)
	lats := gridSpec.Lats()
	lons := gridSpec.Lons()
	elements := model.Elements()

	rows := make(chan int, len(lats))
	for row := range lats {
		rows <- row
	}
	close(rows)

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	if workers > len(lats) {
		workers = len(lats)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker gets its own table set so Scaled's returned
			// slices are never mutated or read across goroutines.
			tb, err := buildTables(orders, algorithm)
			if err != nil {
				errs <- err
				return
			}
			for row := range rows {
				obsLatRad := units.DegToRad(lats[row])
				for col, obsLon := range lons {
					obsLonRad := units.DegToRad(obsLon)
					var total float64
					for _, t := range elements {
						v, err := evaluateElement(t, obsLatRad, obsLonRad, obsR, threeD, twoD, algorithm, tb, u)
						if err != nil {
							errs <- err
							return
						}
						total += v
					}
					result.Set(row, col, total)
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	if err, ok := <-errs; ok {
		return nil, err
	}
	return result, nil
}
