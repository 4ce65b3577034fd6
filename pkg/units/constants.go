// Package units holds the physical constants and unit conversions shared by
// the quadrature, kernel and field packages.
package units

// Gravitational constant in SI units (m^3 kg^-1 s^-2).
const G = 0.00000000006673

// MeanEarthRadius is the reference sphere radius in meters, used when a
// tesseroid's geometry is specified relative to sea level.
const MeanEarthRadius = 6378137.0

// SIToMGal converts an SI acceleration (m/s^2) to milligal.
const SIToMGal = 100000.0

// SIToEotvos converts an SI second-derivative-of-potential (1/s^2) to
// Eotvos.
const SIToEotvos = 1000000000.0
