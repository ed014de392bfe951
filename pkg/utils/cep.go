package utils

import "strings"

// NormalizeCEP remove tudo que não é dígito e completa com zeros à
// esquerda até 8 posições ("1310100" -> "01310100")
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) > 8 {
		digits = digits[:8]
	}

	return strings.Repeat("0", 8-len(digits)) + digits
}

// IsValidCEP verifica a forma básica de um CEP já normalizado:
// 8 dígitos e não pode ser tudo zero
func IsValidCEP(cep string) bool {
	if len(cep) != 8 {
		return false
	}

	allZero := true
	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			allZero = false
		}
	}

	return !allZero
}
