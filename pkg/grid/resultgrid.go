package grid

// Point is a single evaluated grid node: its coordinates and the
// computed field value at that point, in the component's output unit
// (SI units for the potential, mGal for first derivatives, Eotvos for
// second derivatives).
type Point struct {
	Lon, Lat float64
	Value    float64
}

// ResultGrid holds the field evaluated over every node of a Spec, in
// row-major order (latitude outer, longitude inner) to match the
// command-line output contract.
type ResultGrid struct {
	Spec   Spec
	Points []Point
}

// NewResultGrid allocates a ResultGrid with its Points slice pre-sized
// for spec's dimensions, in row-major (lat outer, lon inner) order.
func NewResultGrid(spec Spec) *ResultGrid {
	lons := spec.Lons()
	lats := spec.Lats()
	points := make([]Point, 0, len(lons)*len(lats))
	for _, lat := range lats {
		for _, lon := range lons {
			points = append(points, Point{Lon: lon, Lat: lat})
		}
	}
	return &ResultGrid{Spec: spec, Points: points}
}

// Set stores the value for the point at row (latitude index) and col
// (longitude index).
func (g *ResultGrid) Set(row, col int, value float64) {
	g.Points[row*g.Spec.NLon+col].Value = value
}

// Rows splits Points back into per-latitude-row slices, in the shape the
// CLI and plotting code consume.
func (g *ResultGrid) Rows() [][]Point {
	rows := make([][]Point, g.Spec.NLat)
	for r := range rows {
		rows[r] = g.Points[r*g.Spec.NLon : (r+1)*g.Spec.NLon]
	}
	return rows
}

// Stats summarizes the min, max and mean of the grid's values.
type Stats struct {
	Min, Max, Mean float64
}

// Summarize computes min/max/mean over every point in the grid.
func (g *ResultGrid) Summarize() Stats {
	if len(g.Points) == 0 {
		return Stats{}
	}
	s := Stats{Min: g.Points[0].Value, Max: g.Points[0].Value}
	var total float64
	for _, p := range g.Points {
		if p.Value < s.Min {
			s.Min = p.Value
		}
		if p.Value > s.Max {
			s.Max = p.Value
		}
		total += p.Value
	}
	s.Mean = total / float64(len(g.Points))
	return s
}
