package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCEP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"CEP com hífen", "74000-000", "74000000"},
		{"CEP sem zero à esquerda", "1310100", "01310100"},
		{"CEP já normalizado", "01310100", "01310100"},
		{"CEP com espaços", " 01310 100 ", "01310100"},
		{"Sem dígitos vira tudo zero", "abc", "00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCEP(tt.input))
		})
	}
}

func TestIsValidCEP(t *testing.T) {
	assert.True(t, IsValidCEP("01310100"))
	assert.True(t, IsValidCEP("74000000"))

	assert.False(t, IsValidCEP("0131010"))
	assert.False(t, IsValidCEP("013101000"))
	assert.False(t, IsValidCEP("00000000"))
	assert.False(t, IsValidCEP("0131010a"))
}
