package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/flownorm/internal/model"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "decimal", raw: "0.4", want: 0.4},
		{name: "surrounding blanks", raw: " 1.75 \n", want: 1.75},
		{name: "integer", raw: "3", want: 3},
		{name: "empty", raw: "", wantErr: true},
		{name: "word", raw: "wide", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-0.4", wantErr: true},
		{name: "not a number", raw: "NaN", wantErr: true},
		{name: "infinite", raw: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePositive(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		raw     string
		want    m.Policy
		wantErr bool
	}{
		{raw: "MAX", want: m.PolicyMax},
		{raw: "max", want: m.PolicyMax},
		{raw: " Min ", want: m.PolicyMin},
		{raw: "avg", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePolicy(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPolicy)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
