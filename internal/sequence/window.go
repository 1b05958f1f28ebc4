package sequence

import (
	"fmt"
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/chapter3/internal/errors"
)

// Window is the rolling accumulator over the recurrence. After every
// successful Advance, Current equals the previous OneBack plus the previous
// TwoBack, and the window has moved exactly one position.
type Window struct {
	TwoBack uint64
	OneBack uint64
	Current uint64
}

// NewWindow returns the starting window for a convention. Both start from
// F(0)=0 and F(1)=1; the standard convention also seeds Current with F(1) so
// that zero steps report position 1 correctly.
func NewWindow(c Convention) Window {
	w := Window{TwoBack: 0, OneBack: 1}
	if c == ConventionStandard {
		w.Current = 1
	}
	return w
}

// Advance moves the window one position. If the sum does not fit in 64 bits
// it returns an OverflowError and leaves the window untouched.
func (w *Window) Advance() error {
	sum, carry := bits.Add64(w.OneBack, w.TwoBack, 0)
	if carry != 0 {
		return apperrors.OverflowError{Value: "next sequence value", Bits: 64}
	}
	w.Current = sum
	w.TwoBack = w.OneBack
	w.OneBack = sum
	return nil
}

// BigWindow is the arbitrary-precision counterpart of Window.
type BigWindow struct {
	TwoBack *big.Int
	OneBack *big.Int
	Current *big.Int
}

// NewBigWindow returns the starting window for a convention.
func NewBigWindow(c Convention) *BigWindow {
	w := NewWindow(c)
	return &BigWindow{
		TwoBack: new(big.Int).SetUint64(w.TwoBack),
		OneBack: new(big.Int).SetUint64(w.OneBack),
		Current: new(big.Int).SetUint64(w.Current),
	}
}

// Advance moves the window one position. The three slots rotate so no
// allocation happens once the numbers stop growing in word count.
func (w *BigWindow) Advance() {
	next := w.TwoBack
	next.Add(w.OneBack, w.TwoBack)
	w.TwoBack = w.OneBack
	w.OneBack = next
	w.Current.Set(next)
}

// String implements fmt.Stringer for debugging output.
func (w Window) String() string {
	return fmt.Sprintf("(%d, %d, %d)", w.TwoBack, w.OneBack, w.Current)
}
