// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predictor

import (
	"errors"
	"testing"

	"github.com/pdiddy/pace-engine/pkg/types"
)

func input(vo2 float64, gender string, age int) types.PredictionInput {
	return types.PredictionInput{
		VO2Max: vo2,
		Gender: types.ParseGender(gender),
		Age:    age,
	}
}

func TestPredictKnownTimes(t *testing.T) {
	tests := []struct {
		name   string
		vo2    float64
		gender string
		age    int
		want   string
	}{
		{"reference runner", 58, "male", 30, "00:22:45"},
		{"female multiplier", 58, "female", 30, "00:24:12"},
		{"age decline at 40", 58, "male", 40, "00:23:27"},
		{"uppercase gender", 58, "FEMALE", 30, "00:24:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Predict(input(tt.vo2, tt.gender, tt.age))
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got.Display != tt.want {
				t.Errorf("Display = %q, want %q", got.Display, tt.want)
			}
		})
	}
}

func TestPredictUnknownGenderIsNeutral(t *testing.T) {
	male, err := Predict(input(58, "male", 30))
	if err != nil {
		t.Fatal(err)
	}
	other, err := Predict(input(58, "other", 30))
	if err != nil {
		t.Fatal(err)
	}
	if male.Display != other.Display {
		t.Errorf("unknown gender = %q, want same as male %q", other.Display, male.Display)
	}
}

func TestPredictAgeBoundary(t *testing.T) {
	// The age adjustment only kicks in strictly above 30.
	at30, err := Predict(input(58, "male", 30))
	if err != nil {
		t.Fatal(err)
	}
	at31, err := Predict(input(58, "male", 31))
	if err != nil {
		t.Fatal(err)
	}
	if at30.Seconds == at31.Seconds {
		t.Errorf("age 30 and 31 produced identical times (%f), expected the 31 case slower", at30.Seconds)
	}
	if at30.Seconds != baseTimeSeconds {
		t.Errorf("age 30 seconds = %f, want unadjusted base %f", at30.Seconds, baseTimeSeconds)
	}
}

func TestPredictAgeFactorFloor(t *testing.T) {
	// Past the floor, additional years change nothing.
	at200, err := Predict(input(58, "male", 200))
	if err != nil {
		t.Fatal(err)
	}
	at300, err := Predict(input(58, "male", 300))
	if err != nil {
		t.Fatal(err)
	}
	if at200.Display != at300.Display || at200.Seconds != at300.Seconds {
		t.Errorf("age 200 = %v, age 300 = %v, want identical (floor clamp)", at200, at300)
	}
}

func TestPredictIdempotent(t *testing.T) {
	in := input(47.5, "female", 52)
	first, err := Predict(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Predict(in)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestPredictDegenerate(t *testing.T) {
	for _, vo2 := range []float64{0, -12.5} {
		_, err := Predict(input(vo2, "male", 30))
		var degenerate *DegenerateComputationError
		if !errors.As(err, &degenerate) {
			t.Errorf("Predict(vo2=%g) error = %v, want DegenerateComputationError", vo2, err)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"base time", 1365, "00:22:45"},
		{"hour rollover", 3725, "01:02:05"},
		{"three digit hours", 360000, "100:00:00"},
		// Seconds round per-field and do not carry into minutes.
		{"rounds to sixty without carry", 119.6, "00:01:60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.seconds); got != tt.want {
				t.Errorf("formatDuration(%g) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
