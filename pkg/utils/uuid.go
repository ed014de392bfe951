package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto e legível, usado como chave de
// registro e como referência de cotação
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
