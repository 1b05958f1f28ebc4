package temperature

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		target Unit
		value  float64
		want   float64
		from   Unit
	}{
		{"freezing to F", Fahrenheit, 0, 32, Celsius},
		{"boiling to F", Fahrenheit, 100, 212, Celsius},
		{"freezing to C", Celsius, 32, 0, Fahrenheit},
		{"boiling to C", Celsius, 212, 100, Fahrenheit},
		{"crossover to F", Fahrenheit, -40, -40, Celsius},
		{"crossover to C", Celsius, -40, -40, Fahrenheit},
		{"repeating fraction", Celsius, 100, 340.0 / 9.0, Fahrenheit},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			conv, err := Convert(tt.target, tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if conv.Result != tt.want {
				t.Errorf("Convert(%s, %v).Result = %v, want %v", tt.target, tt.value, conv.Result, tt.want)
			}
			if conv.From != tt.from || conv.To != tt.target || conv.Input != tt.value {
				t.Errorf("Convert(%s, %v) = %+v", tt.target, tt.value, conv)
			}
		})
	}
}

func TestConvert_InvalidTarget(t *testing.T) {
	t.Parallel()
	if _, err := Convert(Unit("K"), 0); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestConvert_NoRangeValidation(t *testing.T) {
	t.Parallel()
	conv, err := Convert(Fahrenheit, math.Inf(-1))
	if err != nil || !math.IsInf(conv.Result, -1) {
		t.Errorf("Convert(F, -Inf) = %v, %v", conv.Result, err)
	}
	conv, err = Convert(Celsius, math.NaN())
	if err != nil || !math.IsNaN(conv.Result) {
		t.Errorf("Convert(C, NaN) = %v, %v", conv.Result, err)
	}
	conv, err = Convert(Fahrenheit, -1e300)
	if err != nil || conv.Result >= 0 {
		t.Errorf("Convert(F, -1e300) = %v, %v", conv.Result, err)
	}
}

func TestConvert_NearFloat64Limit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		target Unit
		value  float64
		want   float64
	}{
		{"huge Fahrenheit to C", Celsius, 1e308, 5.555555555555556e307},
		{"huge negative Fahrenheit to C", Celsius, -1e308, -5.555555555555556e307},
		{"largest Fahrenheit to C", Celsius, math.MaxFloat64, math.MaxFloat64 / 9 * 5},
		{"huge Celsius to F", Fahrenheit, 9e307, 1.62e308},
		{"huge negative Celsius to F", Fahrenheit, -9e307, -1.62e308},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			conv, err := Convert(tt.target, tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.IsInf(conv.Result, 0) || math.Abs(conv.Result-tt.want) > 1e-12*math.Abs(tt.want) {
				t.Errorf("Convert(%s, %v).Result = %v, want about %v", tt.target, tt.value, conv.Result, tt.want)
			}
		})
	}
}

func TestConvert_FallbackKeepsOrdinaryDigits(t *testing.T) {
	t.Parallel()
	if got := ToCelsius(100); got != 340.0/9.0 {
		t.Errorf("ToCelsius(100) = %v, want %v", got, 340.0/9.0)
	}
	if got := ToFahrenheit(37.5); got != 99.5 {
		t.Errorf("ToFahrenheit(37.5) = %v, want 99.5", got)
	}
}

func TestParseSelector(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"C", Celsius, false},
		{"F", Fahrenheit, false},
		{"  F\n", Fahrenheit, false},
		{"c", "", true},
		{"f", "", true},
		{"X", "", true},
		{"", "", true},
		{"CF", "", true},
	}

	for _, tt := range tests {

		tt := tt
		got, err := ParseSelector(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSelector(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("ParseSelector(%q) should return ErrInvalidSelector, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSelector(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
