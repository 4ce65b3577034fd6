// Package config loads the process-wide configuration with a
// spf13/viper-backed reader, following the singleton-with-Validate
// pattern the rest of this repository's ambient stack uses.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
	err      error
)

// LoadConfig reads, unmarshals and validates the YAML config file at
// path, exactly once per process; subsequent calls return the cached
// instance (or the cached error).
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if readErr := v.ReadInConfig(); readErr != nil {
			err = fmt.Errorf("config: read %s: %w", path, readErr)
			return
		}

		var c Config
		if unmarshalErr := v.Unmarshal(&c); unmarshalErr != nil {
			err = fmt.Errorf("config: unmarshal %s: %w", path, unmarshalErr)
			return
		}

		if validateErr := c.Validate(); validateErr != nil {
			err = fmt.Errorf("config: validate %s: %w", path, validateErr)
			return
		}

		instance = &c
	})
	return instance, err
}

// Validate checks the fields the HTTP service cannot run without, and
// fills in defaults for everything else.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("config: app.name is required")
	}
	if c.App.Version == "" {
		return fmt.Errorf("config: app.version is required")
	}
	if c.Logging.Level == "" {
		return fmt.Errorf("config: logging.level is required")
	}

	if c.Quadrature.DefaultOrderLon == 0 {
		c.Quadrature.DefaultOrderLon = 5
	}
	if c.Quadrature.DefaultOrderLat == 0 {
		c.Quadrature.DefaultOrderLat = 5
	}
	if c.Quadrature.DefaultOrderR == 0 {
		c.Quadrature.DefaultOrderR = 5
	}
	if c.Quadrature.DefaultAlgorithm == "" {
		c.Quadrature.DefaultAlgorithm = "2D"
	}
	if c.Server.BindAddress == "" {
		c.Server.BindAddress = ":8080"
	}
	if c.Server.ReportsDir == "" {
		c.Server.ReportsDir = "./reports"
	}
	if c.Server.TemplatesDir == "" {
		c.Server.TemplatesDir = "./templates"
	}
	return nil
}
