package config_test

import (
	"testing"

	"github.com/bxrne/launchrail/internal/config"
)

// TEST: GIVEN an empty config WHEN Validate is called THEN returns an error
func TestConfig_Validate_Empty(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error for empty config")
	}
}

// TEST: GIVEN a config with missing app name WHEN Validate is called THEN returns an error
func TestConfig_Validate_MissingAppName(t *testing.T) {
	cfg := &config.Config{
		App:     config.App{Version: "1.0.0"},
		Logging: config.Logging{Level: "debug"},
	}

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error when app name is missing")
	}
}

// TEST: GIVEN a config with missing logging level WHEN Validate is called THEN returns an error
func TestConfig_Validate_MissingLoggingLevel(t *testing.T) {
	cfg := &config.Config{
		App: config.App{Name: "tesseroid", Version: "1.0.0"},
	}

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error when logging.level is missing")
	}
}

// TEST: GIVEN a config with only required fields WHEN Validate is called THEN defaults fill in the rest
func TestConfig_Validate_AppliesDefaults(t *testing.T) {
	cfg := &config.Config{
		App:     config.App{Name: "tesseroid", Version: "1.0.0"},
		Logging: config.Logging{Level: "debug"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() should not return an error for a minimally valid config: %v", err)
	}

	if cfg.Quadrature.DefaultOrderLon != 5 || cfg.Quadrature.DefaultOrderLat != 5 || cfg.Quadrature.DefaultOrderR != 5 {
		t.Errorf("expected default GLQ orders of 5/5/5, got %+v", cfg.Quadrature)
	}
	if cfg.Quadrature.DefaultAlgorithm != "2D" {
		t.Errorf("expected default algorithm 2D, got %q", cfg.Quadrature.DefaultAlgorithm)
	}
	if cfg.Server.BindAddress != ":8080" {
		t.Errorf("expected default bind address :8080, got %q", cfg.Server.BindAddress)
	}
	if cfg.Server.ReportsDir != "./reports" || cfg.Server.TemplatesDir != "./templates" {
		t.Errorf("expected default reports/templates dirs, got %+v", cfg.Server)
	}
}

// TEST: GIVEN a fully populated config WHEN Validate is called THEN the explicit values are preserved
func TestConfig_Validate_PreservesExplicitValues(t *testing.T) {
	cfg := &config.Config{
		App:     config.App{Name: "tesseroid", Version: "1.0.0"},
		Logging: config.Logging{Level: "debug"},
		Quadrature: config.Quadrature{
			DefaultOrderLon:  10,
			DefaultOrderLat:  12,
			DefaultOrderR:    8,
			DefaultAlgorithm: "3D",
		},
		Server: config.Server{BindAddress: "0.0.0.0:9090"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() should not return an error for a valid config: %v", err)
	}
	if cfg.Quadrature.DefaultOrderLon != 10 || cfg.Quadrature.DefaultAlgorithm != "3D" {
		t.Errorf("Validate() overwrote explicit quadrature settings: %+v", cfg.Quadrature)
	}
	if cfg.Server.BindAddress != "0.0.0.0:9090" {
		t.Errorf("Validate() overwrote explicit bind address: %q", cfg.Server.BindAddress)
	}
}
