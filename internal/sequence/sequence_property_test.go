package sequence

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestWindowInvariant_PropertyBased checks that every step of the window
// stores the sum of the two previous slots and shifts by exactly one.
func TestWindowInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("each Advance sets Current = OneBack + TwoBack and shifts", prop.ForAll(
		func(steps int, standard bool) bool {
			c := ConventionLegacy
			if standard {
				c = ConventionStandard
			}
			w := NewWindow(c)
			for i := 0; i < steps; i++ {
				prev := w
				if err := w.Advance(); err != nil {
					t.Logf("unexpected overflow after %d steps", i)
					return false
				}
				if w.Current != prev.OneBack+prev.TwoBack || w.TwoBack != prev.OneBack || w.OneBack != w.Current {
					t.Logf("invariant broken at step %d: %s -> %s", i, prev, w)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 91),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestLegacyIsShiftedStandard_PropertyBased verifies that from position 3
// onwards the legacy convention reports the standard value one position
// earlier.
func TestLegacyIsShiftedStandard_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("legacy(n) = standard(n-1) for n >= 3", prop.ForAll(
		func(n uint64) bool {
			legacy, err := Evaluate(n, ConventionLegacy)
			if err != nil {
				return false
			}
			standard, err := Evaluate(n-1, ConventionStandard)
			if err != nil {
				return false
			}
			return legacy.Value.Cmp(standard.Value) == 0
		},
		gen.UInt64Range(3, 94),
	))

	properties.TestingRun(t)
}

// TestBigRecurrence_PropertyBased verifies F(n) = F(n-1) + F(n-2) on the
// arbitrary-precision path well past the 64-bit range.
func TestBigRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("standard F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			values := make([]*big.Int, 3)
			for i := range values {
				res, err := EvaluateBig(context.Background(), n-uint64(i), ConventionStandard, nil)
				if err != nil {
					return false
				}
				values[i] = res.Value
			}
			sum := new(big.Int).Add(values[1], values[2])
			return values[0].Cmp(sum) == 0
		},
		gen.UInt64Range(2, 2000),
	))

	properties.TestingRun(t)
}
