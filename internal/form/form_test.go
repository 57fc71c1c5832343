// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pace-engine/pkg/types"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		vo2       string
		gender    string
		age       string
		want      types.PredictionInput
		wantField string
	}{
		{
			name: "valid input",
			vo2:  "58", gender: "male", age: "30",
			want: types.PredictionInput{VO2Max: 58, Gender: types.GenderMale, Age: 30},
		},
		{
			name: "trims whitespace and normalizes case",
			vo2:  " 52.3 ", gender: " Female ", age: " 27 ",
			want: types.PredictionInput{VO2Max: 52.3, Gender: types.GenderFemale, Age: 27},
		},
		{
			name: "unknown gender maps to neutral",
			vo2:  "58", gender: "nonbinary", age: "30",
			want: types.PredictionInput{VO2Max: 58, Gender: types.GenderNeutral, Age: 30},
		},
		{
			name: "zero vo2 parses; degeneracy is not a parse error",
			vo2:  "0", gender: "male", age: "30",
			want: types.PredictionInput{VO2Max: 0, Gender: types.GenderMale, Age: 30},
		},
		{
			name: "empty vo2",
			vo2:  "", gender: "male", age: "30",
			wantField: "vo2_max",
		},
		{
			name: "non-numeric vo2",
			vo2:  "fast", gender: "male", age: "30",
			wantField: "vo2_max",
		},
		{
			name: "infinite vo2",
			vo2:  "+Inf", gender: "male", age: "30",
			wantField: "vo2_max",
		},
		{
			name: "empty gender",
			vo2:  "58", gender: "  ", age: "30",
			wantField: "gender",
		},
		{
			name: "empty age",
			vo2:  "58", gender: "male", age: "",
			wantField: "age",
		},
		{
			name: "fractional age",
			vo2:  "58", gender: "male", age: "30.5",
			wantField: "age",
		},
		{
			name: "negative age",
			vo2:  "58", gender: "male", age: "-1",
			wantField: "age",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.vo2, tt.gender, tt.age)
			if tt.wantField != "" {
				var invalid *InvalidInputError
				require.True(t, errors.As(err, &invalid), "error = %v, want InvalidInputError", err)
				assert.Equal(t, tt.wantField, invalid.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
