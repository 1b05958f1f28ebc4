package sequence

import (
	"strings"

	apperrors "github.com/agbru/chapter3/internal/errors"
)

// Convention selects how a requested position maps onto the loop.
type Convention int

const (
	// ConventionLegacy runs max(0, n-2) steps from (two-back=0, one-back=1,
	// current=0) and reports current. For n >= 3 that is F(n-1). Positions 1
	// and 2 report 0, and position 0 is reported as "position 1 is 0". These
	// are known defects of the reference loop, kept on purpose so the
	// output stays byte-compatible.
	ConventionLegacy Convention = iota
	// ConventionStandard reports the mathematical F(n) at position n.
	ConventionStandard
)

var conventionNames = map[Convention]string{
	ConventionLegacy:   "legacy",
	ConventionStandard: "standard",
}

// String returns the flag spelling of the convention.
func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return "unknown"
}

// ConventionNames lists the accepted spellings, in flag help order.
func ConventionNames() []string {
	return []string{ConventionLegacy.String(), ConventionStandard.String()}
}

// ParseConvention resolves a flag or environment value.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return ConventionLegacy, nil
	case "standard":
		return ConventionStandard, nil
	}
	return ConventionLegacy, apperrors.NewConfigError("unknown convention %q (valid: %s)",
		s, strings.Join(ConventionNames(), ", "))
}

// Iterations returns the number of window advances needed for position n.
// The subtraction is clamped explicitly instead of relying on unsigned
// wraparound.
func Iterations(n uint64, c Convention) uint64 {
	var offset uint64 = 2
	if c == ConventionStandard {
		offset = 1
	}
	if n <= offset {
		return 0
	}
	return n - offset
}

// ReportedPosition returns the position printed for a request of n.
func ReportedPosition(n uint64, c Convention) uint64 {
	if n == 0 && c == ConventionLegacy {
		return 1
	}
	return n
}
