package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/pkg/kernel"
)

func TestParseNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	params, ok, err := cli.Parse("tessgz", nil, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for no args")
	}
	if params != (cli.Params{}) {
		t.Fatalf("expected zero Params, got %+v", params)
	}
	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("expected usage message, got %q", out.String())
	}
}

func TestParseValidFlags(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-R", "-1/1/-1/1", "-B", "3/3", "-Z", "10000", "-O", "6/6/6", "-A", "3D", "model.txt"}
	params, ok, err := cli.Parse("tessgz", args, &out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if params.ModelPath != "model.txt" {
		t.Errorf("ModelPath = %q, want model.txt", params.ModelPath)
	}
	if params.Grid.West != -1 || params.Grid.East != 1 {
		t.Errorf("Grid bounds = %+v", params.Grid)
	}
	if params.Grid.NLon != 3 || params.Grid.NLat != 3 {
		t.Errorf("Grid dims = %+v", params.Grid)
	}
	if params.Grid.Height != 10000 {
		t.Errorf("Height = %v, want 10000", params.Grid.Height)
	}
	if params.Orders.Lon != 6 || params.Orders.Lat != 6 || params.Orders.R != 6 {
		t.Errorf("Orders = %+v", params.Orders)
	}
	if params.Algorithm != kernel.ThreeD {
		t.Errorf("Algorithm = %v, want ThreeD", params.Algorithm)
	}
}

func TestParseDefaultsOrdersAndAlgorithm(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-R", "-1/1/-1/1", "-B", "3/3", "-Z", "10000", "model.txt"}
	params, ok, err := cli.Parse("tessgz", args, &out)
	if err != nil || !ok {
		t.Fatalf("Parse: ok=%v err=%v", ok, err)
	}
	if params.Orders.Lon != 5 || params.Orders.Lat != 5 || params.Orders.R != 5 {
		t.Errorf("default Orders = %+v, want 5/5/5", params.Orders)
	}
	if params.Algorithm != kernel.TwoD {
		t.Errorf("default Algorithm = %v, want TwoD", params.Algorithm)
	}
}

func TestParseMissingRequiredFlag(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-B", "3/3", "-Z", "10000", "model.txt"}
	_, _, err := cli.Parse("tessgz", args, &out)
	if err == nil {
		t.Fatal("expected error for missing -R")
	}
}

func TestParseRejectsMissingModelFile(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-R", "-1/1/-1/1", "-B", "3/3", "-Z", "10000"}
	_, _, err := cli.Parse("tessgz", args, &out)
	if err == nil {
		t.Fatal("expected error for missing positional model file")
	}
}

func TestBoundsSetRejectsMalformed(t *testing.T) {
	var b cli.Bounds
	if err := b.Set("1/2/3"); err == nil {
		t.Error("expected error for too few fields")
	}
	if err := b.Set("a/b/c/d"); err == nil {
		t.Error("expected error for non-numeric fields")
	}
	if err := b.Set("-1/1/-1/1"); err != nil {
		t.Errorf("unexpected error for valid bounds: %v", err)
	}
}

func TestDimsSetRejectsNonPositive(t *testing.T) {
	var d cli.Dims
	if err := d.Set("0/3"); err == nil {
		t.Error("expected error for zero nlon")
	}
	if err := d.Set("3/3"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
