// Package cli implements the shared flag parsing and run loop every
// tessXX binary wires up to its own component and a thin main.go,
// following the standard library flag.Value pattern the original
// program's hand-rolled cmd.h parsers did by hand.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds is the -R W/E/S/N grid-bounds flag value.
type Bounds struct {
	West, East, South, North float64
	set                      bool
}

func (b *Bounds) String() string {
	if !b.set {
		return ""
	}
	return fmt.Sprintf("%g/%g/%g/%g", b.West, b.East, b.South, b.North)
}

// Set parses "W/E/S/N".
func (b *Bounds) Set(s string) error {
	parts := strings.Split(s, "/")
	if len(parts) != 4 {
		return fmt.Errorf("-R: expected W/E/S/N, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fmt.Errorf("-R: field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	b.West, b.East, b.South, b.North = vals[0], vals[1], vals[2], vals[3]
	b.set = true
	return nil
}

// IsSet reports whether Set has been called.
func (b *Bounds) IsSet() bool { return b.set }

// Dims is the -B nlon/nlat grid-dimensions flag value.
type Dims struct {
	NLon, NLat int
	set        bool
}

func (d *Dims) String() string {
	if !d.set {
		return ""
	}
	return fmt.Sprintf("%d/%d", d.NLon, d.NLat)
}

// Set parses "nlon/nlat".
func (d *Dims) Set(s string) error {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return fmt.Errorf("-B: expected nlon/nlat, got %q", s)
	}
	nlon, err := strconv.Atoi(parts[0])
	if err != nil || nlon < 1 {
		return fmt.Errorf("-B: nlon must be a positive integer, got %q", parts[0])
	}
	nlat, err := strconv.Atoi(parts[1])
	if err != nil || nlat < 1 {
		return fmt.Errorf("-B: nlat must be a positive integer, got %q", parts[1])
	}
	d.NLon, d.NLat = nlon, nlat
	d.set = true
	return nil
}

// IsSet reports whether Set has been called.
func (d *Dims) IsSet() bool { return d.set }

// Orders is the -O lon/lat/r GLQ-orders flag value.
type Orders struct {
	Lon, Lat, R int
	set         bool
}

func (o *Orders) String() string {
	if !o.set {
		return "5/5/5"
	}
	return fmt.Sprintf("%d/%d/%d", o.Lon, o.Lat, o.R)
}

// Set parses "lon/lat/r".
func (o *Orders) Set(s string) error {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return fmt.Errorf("-O: expected lon/lat/r, got %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			return fmt.Errorf("-O: field %d must be a positive integer, got %q", i+1, p)
		}
		vals[i] = v
	}
	o.Lon, o.Lat, o.R = vals[0], vals[1], vals[2]
	o.set = true
	return nil
}
