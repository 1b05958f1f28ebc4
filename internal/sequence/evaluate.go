package sequence

import (
	"context"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/chapter3/internal/errors"
)

// ProgressFunc receives the fraction of loop iterations completed, in [0, 1].
type ProgressFunc func(progress float64)

// progressStride is how many big-number steps run between context checks
// and progress reports.
const progressStride = 1 << 12

// Result is the outcome of evaluating one position.
type Result struct {
	// Requested is the position the user asked for.
	Requested uint64
	// Reported is the position printed back; it differs from Requested only
	// for n = 0 under ConventionLegacy.
	Reported uint64
	// Value is the accumulator's final Current slot.
	Value *big.Int
	// Iterations is the number of window advances performed.
	Iterations uint64
	// Convention is the convention the result was computed under.
	Convention Convention
}

// Evaluate computes position n in 64-bit arithmetic. A value that does not
// fit is reported as an OverflowError naming the position, never wrapped.
func Evaluate(n uint64, c Convention) (Result, error) {
	res := Result{Requested: n, Reported: ReportedPosition(n, c), Convention: c}
	if n == 0 {
		res.Value = new(big.Int)
		return res, nil
	}

	w := NewWindow(c)
	iterations := Iterations(n, c)
	for i := uint64(0); i < iterations; i++ {
		if err := w.Advance(); err != nil {
			return res, apperrors.OverflowError{
				Value: fmt.Sprintf("the value at position %d", n),
				Bits:  64,
				Hint:  "rerun with --big for arbitrary precision",
			}
		}
	}

	res.Value = new(big.Int).SetUint64(w.Current)
	res.Iterations = iterations
	return res, nil
}

// EvaluateBig computes position n with arbitrary precision. It honours ctx
// cancellation and reports progress through the optional callback.
func EvaluateBig(ctx context.Context, n uint64, c Convention, progress ProgressFunc) (Result, error) {
	res := Result{Requested: n, Reported: ReportedPosition(n, c), Convention: c}
	report := func(p float64) {
		if progress != nil {
			progress(p)
		}
	}
	if n == 0 {
		res.Value = new(big.Int)
		report(1)
		return res, nil
	}

	w := NewBigWindow(c)
	iterations := Iterations(n, c)
	for i := uint64(0); i < iterations; i++ {
		if i%progressStride == 0 {
			if err := ctx.Err(); err != nil {
				return res, apperrors.WrapError(err, "evaluating position %d", n)
			}
			report(float64(i) / float64(iterations))
		}
		w.Advance()
	}
	report(1)

	res.Value = w.Current
	res.Iterations = iterations
	return res, nil
}
