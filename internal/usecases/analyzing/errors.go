package analyzing

import "github.com/pkg/errors"

var (
	ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidDays      = errors.New("quantidade de dias inválida")
	ErrInvalidLimit     = errors.New("limite inválido")
	ErrCompanyNotFound  = errors.New("empresa não encontrada")
	ErrUserNotFound     = errors.New("usuário não encontrado")
)

// IsValidationError indica se o erro foi causado por parâmetros inválidos da requisição
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrInvalidLimit)
}

// IsNotFoundError indica se o erro se refere a um recurso inexistente
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCompanyNotFound) || errors.Is(err, ErrUserNotFound)
}
