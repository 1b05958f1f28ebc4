// Package temperature converts between the Celsius and Fahrenheit scales.
//
// A selector names the unit to convert to: "F" takes a Celsius reading and
// returns Fahrenheit, "C" takes a Fahrenheit reading and returns Celsius.
// No range validation is performed; any float64, including NaN and the
// infinities, is converted.
package temperature

import (
	"errors"
	"math"
	"strings"
)

// Unit identifies a temperature scale by its one-letter selector.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// ErrInvalidSelector is returned for any selector other than "C" or "F".
// It is not fatal: the program reports it and exits normally.
var ErrInvalidSelector = errors.New("invalid unit selector")

// Conversion is the outcome of converting one reading.
type Conversion struct {
	Input  float64
	Result float64
	// From is the scale of Input; To is the selected output scale.
	From Unit
	To   Unit
}

// ToFahrenheit converts a Celsius reading. The product is formed first so
// ordinary readings keep their exact digits; near the float64 limit the
// division runs first instead of overflowing to infinity.
func ToFahrenheit(c float64) float64 {
	scaled := c * 9.0
	if math.IsInf(scaled, 0) && !math.IsInf(c, 0) {
		return c/5.0*9.0 + 32.0
	}
	return scaled/5.0 + 32.0
}

// ToCelsius converts a Fahrenheit reading, with the same overflow fallback
// as ToFahrenheit.
func ToCelsius(f float64) float64 {
	offset := f - 32.0
	scaled := offset * 5.0
	if math.IsInf(scaled, 0) && !math.IsInf(offset, 0) {
		return offset / 9.0 * 5.0
	}
	return scaled / 9.0
}

// ParseSelector matches s, after trimming surrounding whitespace, against
// the two selectors. Matching is case-sensitive.
func ParseSelector(s string) (Unit, error) {
	switch u := Unit(strings.TrimSpace(s)); u {
	case Celsius, Fahrenheit:
		return u, nil
	}
	return "", ErrInvalidSelector
}

// Convert converts value to the target scale.
func Convert(target Unit, value float64) (Conversion, error) {
	switch target {
	case Fahrenheit:
		return Conversion{Input: value, Result: ToFahrenheit(value), From: Celsius, To: Fahrenheit}, nil
	case Celsius:
		return Conversion{Input: value, Result: ToCelsius(value), From: Fahrenheit, To: Celsius}, nil
	}
	return Conversion{}, ErrInvalidSelector
}
