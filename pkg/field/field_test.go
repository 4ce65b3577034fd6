package field_test

import (
	"math"
	"testing"

	"github.com/bxrne/launchrail/pkg/field"
	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/tesseroid"
)

// unitTesseroid matches property A from the testable-properties list: a
// single 1-degree-square tesseroid, 10km thick, centered on the grid.
func unitTesseroid(t *testing.T) *tesseroid.Model {
	t.Helper()
	ts, err := tesseroid.New(-0.5, 0.5, -0.5, 0.5, 6378137, 6368137, 2670)
	if err != nil {
		t.Fatalf("tesseroid.New: %v", err)
	}
	return tesseroid.NewModel(ts)
}

func centerGrid() grid.Spec {
	return grid.Spec{West: -1, East: 1, South: -1, North: 1, Height: 10000, NLon: 3, NLat: 3}
}

func TestEvaluateGzCenterMagnitude(t *testing.T) {
	model := unitTesseroid(t)
	spec := centerGrid()
	orders := field.Orders{Lon: 5, Lat: 5, R: 5}

	result, err := field.Evaluate(model, spec, kernel.Gz, kernel.TwoD, orders)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	center := result.Points[len(result.Points)/2]
	if math.Abs(center.Value-0.112) > 0.112*0.5 {
		t.Errorf("gz at center = %v mGal, want approximately 0.112", center.Value)
	}
	if center.Value <= 0 {
		t.Errorf("gz at center = %v, want positive (mass attracts downward)", center.Value)
	}
}

func TestEvaluateThreeDAndTwoDAgreeForV(t *testing.T) {
	model := unitTesseroid(t)
	spec := centerGrid()

	r3, err := field.Evaluate(model, spec, kernel.V, kernel.ThreeD, field.Orders{Lon: 8, Lat: 8, R: 8})
	if err != nil {
		t.Fatalf("3-D Evaluate: %v", err)
	}
	r2, err := field.Evaluate(model, spec, kernel.V, kernel.TwoD, field.Orders{Lon: 8, Lat: 8, R: 8})
	if err != nil {
		t.Fatalf("2-D Evaluate: %v", err)
	}

	for i := range r3.Points {
		a, b := r3.Points[i].Value, r2.Points[i].Value
		if math.Abs(a-b) > 1e-3*math.Abs(a) {
			t.Errorf("point %d: 3-D V = %v, 2-D V = %v, disagree beyond tolerance", i, a, b)
		}
	}
}

func TestEvaluateRejectsEmptyModel(t *testing.T) {
	_, err := field.Evaluate(tesseroid.NewModel(), centerGrid(), kernel.V, kernel.ThreeD, field.Orders{Lon: 5, Lat: 5, R: 5})
	if err == nil {
		t.Fatal("expected error for empty model")
	}
}

func TestEvaluateRejectsInvalidGrid(t *testing.T) {
	model := unitTesseroid(t)
	bad := grid.Spec{West: 1, East: -1, South: -1, North: 1, NLon: 3, NLat: 3}
	if _, err := field.Evaluate(model, bad, kernel.V, kernel.ThreeD, field.Orders{Lon: 5, Lat: 5, R: 5}); err == nil {
		t.Fatal("expected error for inverted west/east bounds")
	}
}

func TestEvaluateRejectsUnsupportedTwoDComponent(t *testing.T) {
	model := unitTesseroid(t)
	_, err := field.Evaluate(model, centerGrid(), kernel.Gx, kernel.TwoD, field.Orders{Lon: 5, Lat: 5})
	if err == nil {
		t.Fatal("expected error: gx has no 2-D analytic closed form")
	}
}

func TestEvaluateParallelMatchesSequential(t *testing.T) {
	model := unitTesseroid(t)
	spec := centerGrid()
	orders := field.Orders{Lon: 5, Lat: 5, R: 5}

	seq, err := field.Evaluate(model, spec, kernel.Gz, kernel.ThreeD, orders)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	par, err := field.EvaluateParallel(model, spec, kernel.Gz, kernel.ThreeD, orders, 4)
	if err != nil {
		t.Fatalf("EvaluateParallel: %v", err)
	}

	for i := range seq.Points {
		if math.Abs(seq.Points[i].Value-par.Points[i].Value) > 1e-9 {
			t.Errorf("point %d: sequential = %v, parallel = %v", i, seq.Points[i].Value, par.Points[i].Value)
		}
	}
}

func TestEvaluateSumCheckSubdivision(t *testing.T) {
	full, err := tesseroid.New(-1, 1, -1, 1, 6378137, 6368137, 2670)
	if err != nil {
		t.Fatal(err)
	}
	fullModel := tesseroid.NewModel(full)

	var subs []tesseroid.Tesseroid
	lons := []float64{-1, 0}
	lats := []float64{-1, 0}
	tops := []float64{6378137, 6373137}
	for _, w := range lons {
		for _, s := range lats {
			for _, top := range tops {
				sub, err := tesseroid.New(w, w+1, s, s+1, top, top-5000, 2670)
				if err != nil {
					t.Fatal(err)
				}
				subs = append(subs, sub)
			}
		}
	}
	subModel := tesseroid.NewModel(subs...)

	// Observe well above the mass, where order-8 GLQ has converged for
	// both the whole tesseroid and its 2x2x2 pieces.
	spec := grid.Spec{West: -2, East: 2, South: -2, North: 2, Height: 250000, NLon: 3, NLat: 3}
	orders := field.Orders{Lon: 8, Lat: 8, R: 8}

	fullResult, err := field.Evaluate(fullModel, spec, kernel.Gz, kernel.ThreeD, orders)
	if err != nil {
		t.Fatal(err)
	}
	subResult, err := field.Evaluate(subModel, spec, kernel.Gz, kernel.ThreeD, orders)
	if err != nil {
		t.Fatal(err)
	}

	center := len(fullResult.Points) / 2
	full0 := fullResult.Points[center].Value
	sub0 := subResult.Points[center].Value
	if math.Abs(full0-sub0) > 1e-6*math.Abs(full0) {
		t.Errorf("full tesseroid gz = %v, subdivided sum = %v, want match within 1e-6 relative", full0, sub0)
	}
}
