package kernel

import (
	"math"
	"testing"
)

func TestLookupAllComponents(t *testing.T) {
	components := []Component{V, Gx, Gy, Gz, Gxx, Gxy, Gxz, Gyy, Gyz, Gzz}
	for _, c := range components {
		threeD, twoD, ok := Lookup(c)
		if !ok {
			t.Fatalf("%v: expected registry entry", c)
		}
		if threeD == nil || twoD == nil {
			t.Fatalf("%v: nil evaluator in registry", c)
		}
	}
}

func TestLookupUnknownComponent(t *testing.T) {
	if _, _, ok := Lookup(Component(99)); ok {
		t.Fatalf("expected Lookup to reject an unregistered component")
	}
}

func TestComponentOrder(t *testing.T) {
	cases := map[Component]int{
		V: 0, Gx: 1, Gy: 1, Gz: 1,
		Gxx: 2, Gxy: 2, Gxz: 2, Gyy: 2, Gyz: 2, Gzz: 2,
	}
	for c, want := range cases {
		if got := c.Order(); got != want {
			t.Errorf("%v.Order() = %d, want %d", c, got, want)
		}
	}
}

func TestUnsupportedTwoDComponents(t *testing.T) {
	for _, c := range []Component{Gx, Gy, Gxx, Gxz} {
		_, twoD, _ := Lookup(c)
		angles := NewAngles(0, 0, 0.01, 0.01)
		if _, err := twoD(angles, 6378137, 6378137, 6370000); err == nil {
			t.Errorf("%v: expected unsupportedTwoD error, got nil", c)
		}
	}
}

func TestSupportedTwoDComponents(t *testing.T) {
	for _, c := range []Component{V, Gz, Gxy, Gyy, Gyz, Gzz} {
		_, twoD, _ := Lookup(c)
		angles := NewAngles(0, 0, 0.01, 0.01)
		if _, err := twoD(angles, 6378137, 6378137, 6370000); err != nil {
			t.Errorf("%v: unexpected error from implemented 2-D kernel: %v", c, err)
		}
	}
}

// gxxThreeD and gyzThreeD must reduce to their flat second-derivative
// terms plus the expected connection-term contribution built from gz and
// gy respectively, confirming the metric correction is wired in.
func TestTensorConnectionTerms(t *testing.T) {
	angles := NewAngles(0.3, 0.1, 0.31, 0.12)
	obsR, srcR := 6378137.0, 6370000.0

	wantGxx := angles.CosPhiPrime*(3*srcR*srcR*srcR*srcR*angles.CosPsiPhi*angles.CosPsiPhi/math.Pow(Distance(obsR, srcR, angles.CosPsi), 5)-
		srcR*srcR*srcR*angles.CosPsi/(obsR*math.Pow(Distance(obsR, srcR, angles.CosPsi), 3))) +
		gzThreeD(angles, obsR, srcR)/obsR
	if got := gxxThreeD(angles, obsR, srcR); math.Abs(got-wantGxx) > 1e-9 {
		t.Errorf("gxxThreeD = %v, want %v", got, wantGxx)
	}

	wantGyz := gyzThreeD(angles, obsR, srcR)
	l := Distance(obsR, srcR, angles.CosPsi)
	flatGyz := (srcR * srcR * srcR * angles.CosPhiPrime * angles.CosPsiLambda / (obsR * angles.CosPhi)) *
		(1/(l*l*l) + 3*obsR*(srcR*angles.CosPsi-obsR)/math.Pow(l, 5))
	if math.Abs(wantGyz-(flatGyz-gyThreeD(angles, obsR, srcR)/obsR)) > 1e-9 {
		t.Errorf("gyzThreeD missing its connection term")
	}
}

// A directly overhead source tesseroid (obsLat==srcLat, obsLon==srcLon)
// has cosPsi == 1, and gzThreeD should report the attraction pulling the
// observation point down toward a source shell below it.
func TestGzThreeDSignForSourceBelow(t *testing.T) {
	angles := NewAngles(0, 0, 0, 0)
	if angles.CosPsi != 1 {
		t.Fatalf("expected CosPsi == 1 directly overhead, got %v", angles.CosPsi)
	}
	obsR := 6378137.0
	srcR := obsR - 10000
	g := gzThreeD(angles, obsR, srcR)
	if g >= 0 {
		t.Errorf("gzThreeD = %v, want negative (mass below pulls down)", g)
	}
}

// vThreeD must reduce to r'^2*cosPhi'/l exactly when cosPsi == 1.
func TestVThreeDDirectlyOverhead(t *testing.T) {
	angles := NewAngles(0.2, 1.0, 0.2, 1.0)
	obsR, srcR := 6378137.0, 6370000.0
	got := vThreeD(angles, obsR, srcR)
	want := srcR * srcR * angles.CosPhiPrime / math.Abs(obsR-srcR)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("vThreeD = %v, want %v", got, want)
	}
}

func TestDistanceDeterministicAndPositive(t *testing.T) {
	a := Distance(6378137, 6370000, 0.5)
	b := Distance(6378137, 6370000, 0.5)
	if a != b {
		t.Errorf("Distance not deterministic: %v vs %v", a, b)
	}
	if a <= 0 {
		t.Errorf("Distance = %v, want positive", a)
	}
}

func TestAlgorithmString(t *testing.T) {
	if ThreeD.String() != "3D" {
		t.Errorf("ThreeD.String() = %q", ThreeD.String())
	}
	if TwoD.String() != "2D" {
		t.Errorf("TwoD.String() = %q", TwoD.String())
	}
}
