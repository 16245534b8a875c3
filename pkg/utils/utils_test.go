package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *time.Time
		expectedErr bool
	}{
		{
			name:     "Data válida - deve retornar meia-noite em UTC",
			input:    "2024-03-10",
			expected: func() *time.Time { d := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC); return &d }(),
		},
		{
			name:  "Texto vazio - deve retornar nil",
			input: "",
		},
		{
			name:        "Formato inválido - deve retornar erro",
			input:       "10/03/2024",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1071.43, RoundWithTwoDecimalPlace(1071.428571))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.333))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 0.0, SafeDivide(5, 0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]{6}$", id)
}
