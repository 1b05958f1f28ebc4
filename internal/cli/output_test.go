package cli

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/agbru/chapter3/internal/sequence"
	"github.com/agbru/chapter3/internal/temperature"
	"github.com/agbru/chapter3/internal/ui"
)

func TestFormatSequenceResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    uint64
		c    sequence.Convention
		want string
	}{
		{"legacy ten", 10, sequence.ConventionLegacy, "The fibonacci number at position 10 is 34"},
		{"legacy zero keeps the literal position 1", 0, sequence.ConventionLegacy, "The fibonacci number at position 1 is 0"},
		{"legacy one", 1, sequence.ConventionLegacy, "The fibonacci number at position 1 is 0"},
		{"standard zero", 0, sequence.ConventionStandard, "The fibonacci number at position 0 is 0"},
		{"standard ten", 10, sequence.ConventionStandard, "The fibonacci number at position 10 is 55"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := sequence.Evaluate(tt.n, tt.c)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got := FormatSequenceResult(res); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplaySequenceResult_BigValue(t *testing.T) {
	t.Parallel()
	value, _ := new(big.Int).SetString("354224848179261915075", 10)
	var buf bytes.Buffer
	DisplaySequenceResult(&buf, sequence.Result{Requested: 100, Reported: 100, Value: value}, ui.PlainTheme())

	want := "The fibonacci number at position 100 is 354224848179261915075\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatConversion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		target temperature.Unit
		value  float64
		want   string
	}{
		{temperature.Fahrenheit, 0, "0 C is 32 in F"},
		{temperature.Celsius, 32, "32 F is 0 in C"},
		{temperature.Celsius, 100, "100 F is 37.77777777777778 in C"},
	}

	for _, tt := range tests {

		tt := tt
		conv, err := temperature.Convert(tt.target, tt.value)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if got := FormatConversion(conv); got != tt.want {
			t.Errorf("FormatConversion(%s, %v) = %q, want %q", tt.target, tt.value, got, tt.want)
		}
	}
}

func TestDisplayInvalidSelector(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayInvalidSelector(&buf, ui.PlainTheme())
	if buf.String() != "That is not a valid input\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestDisplayRetryNotice(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayRetryNotice(&buf, errors.New("bad value"), ui.PlainTheme())
	if !strings.HasPrefix(buf.String(), "Invalid input: bad value") {
		t.Errorf("got %q", buf.String())
	}
}
