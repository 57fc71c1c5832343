// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form validates raw adapter input and produces typed
// PredictionInputs. Both presentation adapters (CLI and web UI) funnel
// user-entered strings through ParseInput so the predictor itself never
// sees malformed values.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/pace-engine/pkg/types"
)

// InvalidInputError reports a single field that failed validation. The
// adapter recovers locally: it shows a message and never invokes the
// predictor.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseInput validates the three raw input strings and assembles a
// PredictionInput. VO2 max must parse as a finite number, age as a
// non-negative integer, and gender must be non-empty. The first failing
// field is reported; positivity of VO2 max is the predictor's concern,
// not a parse error.
func ParseInput(vo2Raw, genderRaw, ageRaw string) (types.PredictionInput, error) {
	vo2Raw = strings.TrimSpace(vo2Raw)
	if vo2Raw == "" {
		return types.PredictionInput{}, &InvalidInputError{Field: "vo2_max", Reason: "value is required"}
	}
	vo2, err := strconv.ParseFloat(vo2Raw, 64)
	if err != nil {
		return types.PredictionInput{}, &InvalidInputError{Field: "vo2_max", Reason: fmt.Sprintf("%q is not a number", vo2Raw)}
	}
	if math.IsNaN(vo2) || math.IsInf(vo2, 0) {
		return types.PredictionInput{}, &InvalidInputError{Field: "vo2_max", Reason: "value must be finite"}
	}

	genderRaw = strings.TrimSpace(genderRaw)
	if genderRaw == "" {
		return types.PredictionInput{}, &InvalidInputError{Field: "gender", Reason: "value is required"}
	}

	ageRaw = strings.TrimSpace(ageRaw)
	if ageRaw == "" {
		return types.PredictionInput{}, &InvalidInputError{Field: "age", Reason: "value is required"}
	}
	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		return types.PredictionInput{}, &InvalidInputError{Field: "age", Reason: fmt.Sprintf("%q is not a whole number", ageRaw)}
	}
	if age < 0 {
		return types.PredictionInput{}, &InvalidInputError{Field: "age", Reason: "value must not be negative"}
	}

	return types.PredictionInput{
		VO2Max: vo2,
		Gender: types.ParseGender(genderRaw),
		Age:    age,
	}, nil
}
