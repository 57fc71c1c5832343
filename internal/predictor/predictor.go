// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predictor estimates a runner's 5K race time from VO2 max,
// gender, and age. The model scales VO2 max by a gender multiplier and an
// age-decline factor, then extrapolates from a reference effort: a runner
// with a VO2 max of 58 is taken to finish 5K in 1365 seconds.
package predictor

import (
	"fmt"
	"math"

	"github.com/pdiddy/pace-engine/pkg/types"
)

const (
	// vo2At5KPace is the reference VO2 max for the base finishing time.
	vo2At5KPace = 58.0

	// baseTimeSeconds is the 5K finishing time at the reference VO2 max.
	baseTimeSeconds = 1365.0

	// femaleMultiplier scales VO2 max for female runners.
	femaleMultiplier = 0.94

	// ageDeclineRate is the per-year VO2 decline applied beyond age 30.
	ageDeclineRate = 0.003

	// ageFactorFloor caps the cumulative age decline.
	ageFactorFloor = 0.85
)

// DegenerateComputationError reports inputs whose adjusted VO2 max is zero
// or negative, which would otherwise divide the base time by a non-positive
// number and produce a nonsense duration.
type DegenerateComputationError struct {
	AdjustedVO2 float64
}

func (e *DegenerateComputationError) Error() string {
	return fmt.Sprintf("degenerate computation: adjusted VO2 max %g is not positive", e.AdjustedVO2)
}

// Predict computes the estimated 5K time for one validated input. It is a
// pure function: no I/O, no shared state, safe for concurrent callers.
//
// Inputs whose adjusted VO2 max comes out non-positive (VO2 max of zero or
// below) return a *DegenerateComputationError rather than formatting an
// infinite or negative duration.
func Predict(in types.PredictionInput) (types.PredictionResult, error) {
	adjusted := adjustedVO2(in)
	if adjusted <= 0 || math.IsNaN(adjusted) {
		return types.PredictionResult{}, &DegenerateComputationError{AdjustedVO2: adjusted}
	}

	seconds := baseTimeSeconds * (vo2At5KPace / adjusted)
	return types.PredictionResult{
		Seconds: seconds,
		Display: formatDuration(seconds),
	}, nil
}

// adjustedVO2 applies the gender multiplier and, beyond age 30, the age
// decline factor. Age 30 and below is left untouched.
func adjustedVO2(in types.PredictionInput) float64 {
	adjusted := in.VO2Max
	if in.Gender == types.GenderFemale {
		adjusted *= femaleMultiplier
	}
	if in.Age > 30 {
		factor := 1 - float64(in.Age-30)*ageDeclineRate
		if factor < ageFactorFloor {
			factor = ageFactorFloor
		}
		adjusted *= factor
	}
	return adjusted
}

// formatDuration renders seconds as HH:MM:SS. Each field is decomposed
// independently: the seconds field is rounded on its own and can show 60
// without carrying into minutes. Established output format; callers depend
// on it, so the no-carry behavior stays.
func formatDuration(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Round(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
