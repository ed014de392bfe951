package quoting

import (
	"errors"
	"fmt"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// Tipos de erros de cotação personalizados
var (
	// Erros de validação da requisição
	ErrInvalidDestination = errors.New("CEP de destino inválido")
	ErrInvalidWeight      = errors.New("peso inválido")
	ErrInvalidQuantity    = errors.New("quantidade inválida")

	// Erros de negócio
	ErrWeightExceeded     = errors.New("peso acima do limite transportável")
	ErrDimensionsExceeded = errors.New("dimensões acima do limite da transportadora")
	ErrAmbiguousTier      = errors.New("mais de uma faixa de peso cobre o peso informado")

	// Erros internos
	ErrGenerateReference = errors.New("erro ao gerar a referência da cotação")
)

// NoCoverageError indica que nenhuma fonte ativa cobre o destino ou o
// peso pedido. Quando a zona foi identificada mas a faixa de peso não,
// carrega as faixas disponíveis para orientar o usuário final.
type NoCoverageError struct {
	PostalCode      string
	ZoneLabel       string
	AvailableRanges []domain.WeightRange
}

// Error implementa a interface error
func (e *NoCoverageError) Error() string {
	if e.ZoneLabel != "" {
		return fmt.Sprintf("sem cobertura de peso para o CEP %s (zona %s)", e.PostalCode, e.ZoneLabel)
	}
	return fmt.Sprintf("sem cobertura para o CEP %s", e.PostalCode)
}

// IsNoCoverage verifica se o erro é de ausência de cobertura
func IsNoCoverage(err error) bool {
	var target *NoCoverageError
	return errors.As(err, &target)
}

// IsRequestError verifica se o erro veio de parâmetros inválidos do usuário
func IsRequestError(err error) bool {
	return errors.Is(err, ErrInvalidDestination) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidQuantity)
}
