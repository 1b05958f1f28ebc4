// Package format holds the pure string formatting helpers shared by the
// console programs. Nothing here performs I/O.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// FormatFloat renders f in its shortest round-trip decimal form, never in
// exponent notation: 32 prints as "32", 100/3 as "33.333333333333336".
// Infinities print as "inf" and "-inf", NaN as "NaN".
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent renders a progress fraction in [0, 1] as a whole percentage.
func FormatPercent(progress float64) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return fmt.Sprintf("%3.0f%%", progress*100)
}
