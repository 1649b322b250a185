package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMobile(t *testing.T) {
	assert.NoError(t, ValidateMobile("9876543210"))
	assert.NoError(t, ValidateMobile("0000000000"))

	for _, mobile := range []string{"", "12345", "98765432101", "98765-4321", "+919876543", "９８７６５４３２１０"} {
		err := ValidateMobile(mobile)
		require.Error(t, err, mobile)
		assert.Equal(t, ReasonInvalidMobile, ReasonOf(err))
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int64
		ok    bool
	}{
		{"float", float64(10), 10, true},
		{"int", 30, 30, true},
		{"int64", int64(40), 40, true},
		{"json number", json.Number("50"), 50, true},
		{"fraction", 10.5, 0, false},
		{"below minimum", float64(9), 0, false},
		{"zero", float64(0), 0, false},
		{"negative", float64(-20), 0, false},
		{"string", "10", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"bad json number", json.Number("ten"), 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"too large for minor units", float64(math.MaxInt64), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAmount(tt.value, 10)
			if !tt.ok {
				require.Error(t, err)
				assert.Equal(t, ReasonInvalidAmount, ReasonOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireFields(t *testing.T) {
	assert.NoError(t, RequireFields([2]string{"name", "Asha"}))

	err := RequireFields([2]string{"name", "Asha"}, [2]string{"address", " \t"})
	require.Error(t, err)
	assert.Equal(t, ReasonMissingField, ReasonOf(err))
	assert.Equal(t, "address is required", GetAppError(err).Message)
}

func TestValidateCustomer(t *testing.T) {
	assert.NoError(t, ValidateCustomer("Asha", "9876543210", "12 MG Road"))
	assert.Equal(t, ReasonMissingField, ReasonOf(ValidateCustomer("", "9876543210", "12 MG Road")))
	assert.Equal(t, ReasonMissingField, ReasonOf(ValidateCustomer("Asha", "", "12 MG Road")))
	assert.Equal(t, ReasonInvalidMobile, ReasonOf(ValidateCustomer("Asha", "12345", "12 MG Road")))
}
