// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pace-engine: the
// predictor's input and result value types and the adapter configuration.
package types

import "strings"

// Gender selects the gender multiplier applied to VO2 max.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	// GenderNeutral covers any unrecognized gender value. It carries no
	// performance adjustment (multiplier 1.0), same as male.
	GenderNeutral Gender = "neutral"
)

// ParseGender maps a raw gender string to a Gender variant. Matching is
// case-insensitive and surrounding whitespace is ignored. Unrecognized
// non-empty values map to GenderNeutral rather than failing; the empty
// string is the adapter's problem and is rejected there, not here.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderNeutral
	}
}

// PredictionInput holds one validated prediction request. Instances are
// produced by adapter validation (internal/form) so the predictor can
// assume the fields are well-formed: VO2Max finite, Age non-negative.
type PredictionInput struct {
	// VO2Max is the runner's maximal oxygen uptake in ml/kg/min.
	VO2Max float64 `json:"vo2_max" yaml:"vo2_max"`

	// Gender selects the gender multiplier.
	Gender Gender `json:"gender" yaml:"gender"`

	// Age is the runner's age in whole years.
	Age int `json:"age" yaml:"age"`
}

// PredictionResult holds one computed 5K time estimate.
type PredictionResult struct {
	// Seconds is the raw predicted race duration.
	Seconds float64 `json:"seconds" yaml:"seconds"`

	// Display is the duration formatted as HH:MM:SS. Hours widen past two
	// digits when needed; the field is never truncated.
	Display string `json:"display" yaml:"display"`
}
