package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleDecimal_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", `24.5`, "24.5"},
		{"quoted number", `"24.50"`, "24.5"},
		{"integer", `10`, "10"},
		{"garbage string", `"abc"`, "0"},
		{"empty string", `""`, "0"},
		{"null", `null`, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleDecimal
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f.Decimal.String())
		})
	}
}

func TestFlexibleInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain number", `7`, 7},
		{"quoted number", `"7"`, 7},
		{"fractional truncates", `7.9`, 7},
		{"garbage string", `"lots"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f.Int())
		})
	}
}

func TestFlexibleDecimal_InStruct(t *testing.T) {
	var payload struct {
		Price FlexibleDecimal `json:"price"`
		Stock FlexibleInt     `json:"stock"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":"oops","stock":"3"}`), &payload))
	assert.True(t, payload.Price.Decimal.IsZero())
	assert.Equal(t, 3, payload.Stock.Int())
}
