package validating

import "errors"

var (
	ErrTableNotFound = errors.New("tabela de preços não encontrada")
)
