// Package subdivide splits each tesseroid in a model into an equal grid
// of smaller sub-tesseroids sharing its density, to let GLQ orders be
// kept low for each piece. It is a pure data transformation; no
// numerics happen here.
package subdivide

import (
	"fmt"

	"github.com/bxrne/launchrail/pkg/tesseroid"
)

// Counts is the (n_lon, n_lat, n_r) division triple.
type Counts struct {
	Lon, Lat, R int
}

func (c Counts) validate() error {
	if c.Lon < 1 || c.Lat < 1 || c.R < 1 {
		return fmt.Errorf("subdivide: division counts must be positive, got %d/%d/%d", c.Lon, c.Lat, c.R)
	}
	return nil
}

// Model splits every tesseroid in model into counts.Lon*counts.Lat*counts.R
// equal sub-tesseroids of the same density, in a deterministic
// lon-major, then lat, then r order.
func Model(model *tesseroid.Model, counts Counts) (*tesseroid.Model, error) {
	if err := counts.validate(); err != nil {
		return nil, err
	}
	out := tesseroid.NewModel()
	for _, t := range model.Elements() {
		subs, err := one(t, counts)
		if err != nil {
			return nil, err
		}
		for _, s := range subs {
			out.Add(s)
		}
	}
	return out, nil
}

func one(t tesseroid.Tesseroid, counts Counts) ([]tesseroid.Tesseroid, error) {
	lonStep := t.DeltaLon() / float64(counts.Lon)
	latStep := t.DeltaLat() / float64(counts.Lat)
	rStep := t.DeltaR() / float64(counts.R)

	subs := make([]tesseroid.Tesseroid, 0, counts.Lon*counts.Lat*counts.R)
	for i := 0; i < counts.Lon; i++ {
		west := t.West + float64(i)*lonStep
		east := west + lonStep
		for j := 0; j < counts.Lat; j++ {
			south := t.South + float64(j)*latStep
			north := south + latStep
			for k := 0; k < counts.R; k++ {
				bottom := t.Bottom + float64(k)*rStep
				top := bottom + rStep
				sub, err := tesseroid.New(west, east, south, north, top, bottom, t.Density)
				if err != nil {
					return nil, fmt.Errorf("subdivide: sub-tesseroid (%d,%d,%d): %w", i, j, k, err)
				}
				subs = append(subs, sub)
			}
		}
	}
	return subs, nil
}
